// Package similarity is the HTTP client of the external semantic similarity
// service and the wire contract it shares with the local endpoint.
package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
)

// Endpoint paths on the similarity service.
const (
	Path       = "/ml/skills/enhanced-match"
	HealthPath = "/health"
)

const maxResponseBytes = 1 << 20

// Request is the enhanced match request body.
type Request struct {
	UserSkills          []string `json:"user_skills"`
	RequiredSkills      []string `json:"required_skills"`
	SimilarityThreshold float64  `json:"similarity_threshold"`
}

// Response is the enhanced match response body.
type Response struct {
	ExactMatchScore      float64             `json:"exact_match_score"`
	SimilarityMatchScore float64             `json:"similarity_match_score"`
	OverallScore         float64             `json:"overall_score"`
	MatchedSkills        []string            `json:"matched_skills"`
	SimilarSkills        []match.SimilarPair `json:"similar_skills"`
}

// Outcome converts the wire response.
func (r *Response) Outcome() match.Outcome {
	return match.Outcome{
		ExactScore:      r.ExactMatchScore,
		SimilarityScore: r.SimilarityMatchScore,
		OverallScore:    r.OverallScore,
		MatchedSkills:   r.MatchedSkills,
		SimilarSkills:   r.SimilarSkills,
	}
}

// FromOutcome builds the wire response for an outcome.
func FromOutcome(o *match.Outcome) Response {
	matched := o.MatchedSkills
	if matched == nil {
		matched = []string{}
	}
	similar := o.SimilarSkills
	if similar == nil {
		similar = []match.SimilarPair{}
	}
	return Response{
		ExactMatchScore:      o.ExactScore,
		SimilarityMatchScore: o.SimilarityScore,
		OverallScore:         o.OverallScore,
		MatchedSkills:        matched,
		SimilarSkills:        similar,
	}
}

// Client calls the similarity service. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	schema  *gojsonschema.Schema
	apiKey  string
}

// NewClient creates a client for baseURL with a hard request timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	if err != nil {
		return nil, fmt.Errorf("compile similarity schema: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		schema:  schema,
	}, nil
}

// WithAPIKey sends key as a bearer token on every call.
func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = key
	return c
}

// EnhancedMatch implements matching.SimilarityClient.
func (c *Client) EnhancedMatch(
	ctx context.Context, user, required []string, threshold float64,
) (match.Outcome, error) {
	start := time.Now()
	out, status, err := c.call(ctx, Request{UserSkills: user, RequiredSkills: required, SimilarityThreshold: threshold})
	metrics.SimilarityRequestDuration.Observe(time.Since(start).Seconds())
	metrics.SimilarityRequestsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	if err != nil {
		return match.Outcome{}, domain.NewSimilarityError(status, err)
	}
	return out, nil
}

// HealthCheck reports whether the service answers its health endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewSimilarityError(0, fmt.Errorf("get %s: %w", HealthPath, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NewSimilarityError(resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}

func (c *Client) call(ctx context.Context, body Request) (match.Outcome, int, error) {
	if body.UserSkills == nil {
		body.UserSkills = []string{}
	}
	if body.RequiredSkills == nil {
		body.RequiredSkills = []string{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return match.Outcome{}, 0, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+Path, bytes.NewReader(payload))
	if err != nil {
		return match.Outcome{}, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return match.Outcome{}, 0, fmt.Errorf("post %s: %w", Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return match.Outcome{}, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return match.Outcome{}, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	parsed, err := c.decode(raw)
	if err != nil {
		return match.Outcome{}, resp.StatusCode, err
	}
	return parsed.Outcome(), resp.StatusCode, nil
}

// decode validates raw against the response schema before unmarshalling.
func (c *Client) decode(raw []byte) (Response, error) {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Response{}, fmt.Errorf("parse response: %v: %w", err, domain.ErrMalformedResponse)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return Response{}, fmt.Errorf("%s: %w", strings.Join(msgs, "; "), domain.ErrMalformedResponse)
	}
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return Response{}, fmt.Errorf("decode response: %v: %w", err, domain.ErrMalformedResponse)
	}
	return out, nil
}

func outcomeLabel(err error) string {
	var netErr interface{ Timeout() bool }
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	default:
		return "error"
	}
}
