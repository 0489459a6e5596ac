package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/promchat/internal/errors"
	"github.com/diogo/promchat/internal/models"
)

// askRequest is the body sent to the answer service
type askRequest struct {
	Question string `json:"question"`
}

// Ask sends one question and returns the parsed answer.
// Transport failures, non-2xx replies and unusable bodies are all errors;
// missing fields in a well-formed body are not.
func (c *Client) Ask(ctx context.Context, question string) (*models.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apierrors.ErrEmptyQuestion
	}

	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With().
		Str("request_id", requestID).
		Str("endpoint", c.endpoint).
		Logger()
	log.Debug().Int("question_bytes", len(question)).Msg("sending question")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := apierrors.NewNetworkError(c.endpoint, err)
		log.Warn().
			Err(err).
			Str("error_kind", apierrors.Kind(netErr)).
			Dur("duration", time.Since(start)).
			Msg("request failed")
		return nil, netErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("failed to read response")
		return nil, apierrors.NewNetworkError(c.endpoint, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apierrors.NewAPIError(resp.StatusCode, c.endpoint, errorDetail(data))
		log.Warn().
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("answer service returned an error status")
		return nil, apiErr
	}

	answer, err := ParseAnswer(data)
	if err != nil {
		log.Warn().
			Err(err).
			Str("error_kind", apierrors.Kind(err)).
			Int("status", resp.StatusCode).
			Msg("unusable response body")
		return nil, err
	}

	log.Info().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Bool("has_answer", answer.Answer != "").
		Bool("has_promql", answer.PromQL != "").
		Bool("has_result", answer.HasResult()).
		Msg("answer received")

	return answer, nil
}

// ParseAnswer extracts the optional answer, promql and result fields
// from a response body. The body must be a JSON object.
func ParseAnswer(data []byte) (*models.Answer, error) {
	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("response body is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apierrors.NewParseError("response body is not a JSON object")
	}

	answer := &models.Answer{
		Answer: stringField(root, "answer"),
		PromQL: stringField(root, "promql"),
	}

	if result := root.Get("result"); result.Exists() {
		answer.Result = json.RawMessage(result.Raw)
	}

	return answer, nil
}

// stringField returns the text of a field, treating null as absent
func stringField(root gjson.Result, name string) string {
	v := root.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

// errorDetail pulls a readable message out of an error response body.
// FastAPI services put it in "detail", either as a string or a list of
// validation errors.
func errorDetail(data []byte) string {
	if gjson.ValidBytes(data) {
		detail := gjson.GetBytes(data, "detail")
		switch {
		case detail.Type == gjson.String:
			return detail.String()
		case detail.IsArray():
			if msg := detail.Get("0.msg"); msg.Exists() {
				return msg.String()
			}
		}
	}

	text := strings.TrimSpace(string(data))
	if runes := []rune(text); len(runes) > 200 {
		text = string(runes[:200]) + "..."
	}
	return text
}
