package utils

import (
	"customerRenewal/domain"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// DecodeFeatureRecord reads one JSON feature record. Unknown keys, missing
// attributes and out-of-range values are all rejected.
func DecodeFeatureRecord(r io.Reader, validate *validator.Validate) (domain.FeatureRecord, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var in domain.FeatureRecordInput
	if err := dec.Decode(&in); err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("failed to parse record: %w", err)
	}
	if dec.More() {
		return domain.FeatureRecord{}, fmt.Errorf("failed to parse record: unexpected data after record")
	}
	if err := validate.Struct(&in); err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("invalid record: %w", err)
	}

	return in.Record(), nil
}
