// Package genai calls the generative language API: it builds the analysis
// prompt, issues a single generateContent request, and turns the model's
// loosely structured reply into a validated dataset.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/validate"
)

// Configuration errors, surfaced before any network I/O.
var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrMissingModel  = errors.New("missing model name")
	ErrNoSources     = errors.New("no source URLs provided")
)

// Client issues analysis requests against the generative language API.
// One request is issued per call; there is no retry, backoff, or streaming.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient builds a client from the config. The API key is read from
// GEMINI_API_KEY.
func NewClient(cfg *models.Config) *Client {
	return &Client{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   cfg.Model,
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
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
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   any     `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze runs one full analysis: prompt construction, model call, fence
// stripping, JSON parse, and schema validation. It returns a fully typed
// dataset or one error from the taxonomy: configuration, transport,
// malformed response, or validation.
func (c *Client) Analyze(ctx context.Context, opts models.ScrapeOptions) (*models.ScrapedData, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if c.model == "" {
		return nil, ErrMissingModel
	}
	if len(opts.URLs) == 0 {
		return nil, ErrNoSources
	}

	raw, err := c.generate(ctx, BuildPrompt(opts))
	if err != nil {
		return nil, err
	}

	data, err := decodeDataset(raw)
	if err != nil {
		return nil, err
	}

	if opts.MaxResults > 0 {
		truncateDataset(data, opts.MaxResults)
	}
	return data, nil
}

// generate performs the single generateContent call and returns the text of
// the first candidate.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.baseURL, "/"), c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to analyze: model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to analyze: reading model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to analyze: model API returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to decode model API response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("failed to analyze: model returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// decodeDataset strips an optional markdown code fence, parses the JSON,
// and validates it into a typed dataset.
func decodeDataset(text string) (*models.ScrapedData, error) {
	cleaned := StripCodeFence(text)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("model returned content that is not valid JSON: %w", err)
	}

	data, err := validate.ScrapedData(parsed)
	if err != nil {
		return nil, fmt.Errorf("data validation failed: the model returned data in an unexpected format: %w", err)
	}
	return data, nil
}

// StripCodeFence removes a surrounding ```json ... ``` markdown fence, which
// the model sometimes wraps its JSON in despite the mime-type hint.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// truncateDataset enforces the max-results cap locally; the prompt hint is
// advisory and the model routinely overshoots it.
func truncateDataset(data *models.ScrapedData, max int) {
	if len(data.Products) > max {
		log.Debug("truncating products to max results", "have", len(data.Products), "max", max)
		data.Products = data.Products[:max]
	}
	if len(data.QAItems) > max {
		log.Debug("truncating qa items to max results", "have", len(data.QAItems), "max", max)
		data.QAItems = data.QAItems[:max]
	}
}
