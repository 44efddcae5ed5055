package predictor

import (
	"bytes"
	"context"
	"customerRenewal/domain"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pobyzaarif/goshortcute"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	AuthSchemeBearer = "bearer"
	AuthSchemeBasic  = "basic"

	defaultTimeout = 10 * time.Second

	// error bodies are only kept for diagnosis
	maxBodyBytes = 1 << 20
)

type PredictorConfig struct {
	EndpointURL   string
	Token         string
	AuthScheme    string
	BasicUsername string
	BasicPassword string
	Timeout       time.Duration
	ContactID     int
}

// PredictorRepository calls the hosted renewal classifier.
type PredictorRepository struct {
	predictorConfig PredictorConfig
	client          *http.Client
}

func NewPredictorRepository(cfg PredictorConfig) *PredictorRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = AuthSchemeBearer
	}

	return &PredictorRepository{
		predictorConfig: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type invocationRecord struct {
	ContactID int `json:"contact_id"`
	domain.FeatureRecord
}

type payloadInvocation struct {
	DataframeRecords []invocationRecord `json:"dataframe_records"`
}

type predictionResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}

// Predict returns the classifier's verdict (0 or 1) for the record.
func (r *PredictorRepository) Predict(ctx context.Context, record domain.FeatureRecord) (int, error) {
	payload := payloadInvocation{
		DataframeRecords: []invocationRecord{
			{ContactID: r.predictorConfig.ContactID, FeatureRecord: record},
		},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.predictorConfig.EndpointURL, bytes.NewReader(payloadByte))
	if err != nil {
		return 0, &domain.TransportError{Message: "failed to build request", Cause: err}
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	r.authorize(req)

	res, err := r.client.Do(req)
	if err != nil {
		return 0, &domain.TransportError{Message: "request did not complete", Cause: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return 0, &domain.TransportError{StatusCode: res.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, &domain.TransportError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("classifier returned negative response: %s", strings.TrimSpace(string(body))),
		}
	}

	return parseVerdict(body)
}

func (r *PredictorRepository) authorize(req *http.Request) {
	switch r.predictorConfig.AuthScheme {
	case AuthSchemeBasic:
		buildBasicAuth := goshortcute.StringtoBase64Encode(r.predictorConfig.BasicUsername + ":" + r.predictorConfig.BasicPassword)
		req.Header.Add("Authorization", "Basic "+buildBasicAuth)
	default:
		if r.predictorConfig.Token != "" {
			req.Header.Add("Authorization", "Bearer "+r.predictorConfig.Token)
		}
	}
}

func parseVerdict(body []byte) (int, error) {
	var resp predictionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, &domain.ResponseFormatError{Message: "response is not a predictions object", RawPayload: string(body), Cause: err}
	}

	if len(resp.Predictions) == 0 {
		return 0, &domain.ResponseFormatError{Message: "predictions array is missing or empty", RawPayload: string(body)}
	}

	first := bytes.TrimSpace(resp.Predictions[0])
	if bytes.Equal(first, []byte("null")) {
		return 0, &domain.ResponseFormatError{Message: "first prediction is null", RawPayload: string(body)}
	}

	var v float64
	if err := json.Unmarshal(first, &v); err != nil {
		return 0, &domain.ResponseFormatError{Message: "first prediction is not a number", RawPayload: string(body), Cause: err}
	}

	if v != domain.VerdictUnlikely && v != domain.VerdictLikely {
		return 0, &domain.ResponseFormatError{Message: fmt.Sprintf("first prediction %v is not 0 or 1", v), RawPayload: string(body)}
	}

	return int(v), nil
}
