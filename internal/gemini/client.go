package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/unclip12/focusflow/internal/logger"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

func New(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		model:      model,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type responseSchema struct {
	Type  string          `json:"type"`
	Items *responseSchema `json:"items,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateChecklist asks the model for a short actionable checklist for one
// study sitting. The response is requested as a strict JSON array of strings.
func (c *Client) GenerateChecklist(ctx context.Context, topic string, durationMinutes int) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("gemini").WithField("topic", topic)

	prompt := fmt.Sprintf(`Create a concise, actionable study checklist for the topic: %q.
The study session is %d minutes long.
Return strictly a JSON array of strings.`, topic, durationMinutes)

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: responseSchema{
				Type:  "ARRAY",
				Items: &responseSchema{Type: "STRING"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, c.model)
	log.Debug("requesting checklist from model %s", c.model)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to call generateContent: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("generateContent response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("generateContent failed: status=%d, body=%s", resp.StatusCode, string(errBody))
		return nil, fmt.Errorf("generateContent status %d: %s", resp.StatusCode, string(errBody))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode generateContent response: %v", err)
		return nil, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generateContent returned no candidates")
	}

	var items []string
	if err := json.Unmarshal([]byte(out.Candidates[0].Content.Parts[0].Text), &items); err != nil {
		log.Error("model did not return a JSON string array: %v", err)
		return nil, err
	}

	log.Info("generated %d checklist items", len(items))
	return items, nil
}
