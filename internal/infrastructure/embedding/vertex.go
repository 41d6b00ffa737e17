// Package embedding talks to the external multimodal embedding model. The
// model is an opaque collaborator: this package only marshals an image into
// a prediction request and a vector out of the response.
package embedding

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

const (
	defaultModel     = "multimodalembedding@001"
	defaultDimension = 1408
	requestTimeout   = 30 * time.Second
)

// Config holds the Vertex AI prediction endpoint settings.
type Config struct {
	Project  string
	Location string
	// Token is the bearer token used to authorise prediction calls.
	Token string
	// Endpoint overrides the computed URL; used in tests.
	Endpoint string
}

// VertexEmbedder generates image embeddings via the Vertex AI multimodal
// embedding model.
type VertexEmbedder struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     zerolog.Logger
}

func NewVertexEmbedder(cfg Config, logger zerolog.Logger) *VertexEmbedder {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(
			"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
			cfg.Location, cfg.Project, cfg.Location, defaultModel,
		)
	}
	return &VertexEmbedder{
		httpClient: &http.Client{Timeout: requestTimeout},
		endpoint:   endpoint,
		token:      cfg.Token,
		logger:     logger,
	}
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Image predictImage `json:"image"`
}

type predictImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

type predictParameters struct {
	Dimension int `json:"dimension"`
}

type predictResponse struct {
	Predictions []struct {
		ImageEmbedding []float32 `json:"imageEmbedding"`
	} `json:"predictions"`
}

// Embed sends the image to the prediction endpoint and returns its vector.
// All transport and upstream failures are reported as
// domain.ErrEmbeddingUnavailable.
func (e *VertexEmbedder) Embed(ctx context.Context, image []byte) ([]float32, error) {
	payload, err := json.Marshal(predictRequest{
		Instances: []predictInstance{
			{Image: predictImage{BytesBase64Encoded: base64.StdEncoding.EncodeToString(image)}},
		},
		Parameters: predictParameters{Dimension: defaultDimension},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		e.logger.Error().Int("status", resp.StatusCode).Bytes("body", body).Msg("embedding request rejected")
		return nil, fmt.Errorf("%w: status %d", domain.ErrEmbeddingUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrEmbeddingUnavailable, err)
	}
	if len(out.Predictions) == 0 || len(out.Predictions[0].ImageEmbedding) == 0 {
		return nil, fmt.Errorf("%w: empty prediction", domain.ErrEmbeddingUnavailable)
	}

	return out.Predictions[0].ImageEmbedding, nil
}
