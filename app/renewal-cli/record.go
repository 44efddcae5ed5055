package main

import (
	"bytes"
	"customerRenewal/domain"
	"customerRenewal/pkg/utils"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// readRecord loads and validates one feature record. "-" reads stdin.
func readRecord(path string, stdin io.Reader) (domain.FeatureRecord, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	return utils.DecodeFeatureRecord(bytes.NewReader(data), validate)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
