package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/opsecfreak/webintel/models"
)

func TestBuildPrompt(t *testing.T) {
	opts := models.ScrapeOptions{
		URLs:       []string{"https://shop.example.com", "https://forum.example.com"},
		Topic:      "drone batteries",
		MaxResults: 10,
		CrawlDepth: 2,
	}

	prompt := BuildPrompt(opts)

	for _, want := range []string{
		"- https://shop.example.com",
		"- https://forum.example.com",
		`"drone batteries"`,
		"depth of 2 pages",
		"approximately 10 of the most relevant products",
		"Cross-Reference Data",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_OptionalPartsOmitted(t *testing.T) {
	prompt := BuildPrompt(models.ScrapeOptions{URLs: []string{"https://a.example.com"}})

	for _, absent := range []string{"IMPORTANT", "depth of", "approximately"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("prompt contains %q despite unset option", absent)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// newTestClient points a client at a stub model API.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("GEMINI_API_KEY", "test-key")
	return NewClient(&models.Config{
		Model:          "gemini-2.5-flash",
		APIBaseURL:     srv.URL,
		RequestTimeout: 5 * time.Second,
	})
}

func modelReply(t *testing.T, text string) []byte {
	t.Helper()
	reply := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	out, err := json.Marshal(reply)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

const datasetJSON = `{
	"products": [
		{"name": "Battery B", "price": "$150", "partNumber": "B-100", "description": "d", "url": "u", "mentions": []},
		{"name": "Battery A", "price": "$50", "partNumber": "", "description": "d", "url": "u", "mentions": []}
	],
	"qaItems": [
		{"question": "q1", "answerSummary": "a", "threadUrl": "u", "relatedProducts": []},
		{"question": "q2", "answerSummary": "a", "threadUrl": "u", "relatedProducts": []}
	]
}`

func TestAnalyze_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(modelReply(t, "```json\n"+datasetJSON+"\n```"))
	})

	data, err := client.Analyze(context.Background(), models.ScrapeOptions{
		URLs: []string{"https://shop.example.com"},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key param = %q", gotKey)
	}
	if gotBody.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("mime type hint = %q", gotBody.GenerationConfig.ResponseMimeType)
	}
	if gotBody.GenerationConfig.ResponseSchema == nil {
		t.Error("response schema hint not sent")
	}
	if len(data.Products) != 2 || len(data.QAItems) != 2 {
		t.Errorf("dataset = %d products, %d qaItems", len(data.Products), len(data.QAItems))
	}
	if data.Products[0].ID == "" {
		t.Error("validated products must carry minted IDs")
	}
}

func TestAnalyze_MaxResultsTruncates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, datasetJSON))
	})

	data, err := client.Analyze(context.Background(), models.ScrapeOptions{
		URLs:       []string{"https://shop.example.com"},
		MaxResults: 1,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(data.Products) != 1 || len(data.QAItems) != 1 {
		t.Errorf("truncation failed: %d products, %d qaItems",
			len(data.Products), len(data.QAItems))
	}
}

func TestAnalyze_ConfigurationErrors(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	client := NewClient(models.DefaultConfig())
	_, err := client.Analyze(context.Background(), models.ScrapeOptions{URLs: []string{"u"}})
	if err != ErrMissingAPIKey {
		t.Errorf("missing key error = %v, want ErrMissingAPIKey", err)
	}

	t.Setenv("GEMINI_API_KEY", "k")
	client = NewClient(models.DefaultConfig())
	_, err = client.Analyze(context.Background(), models.ScrapeOptions{})
	if err != ErrNoSources {
		t.Errorf("no sources error = %v, want ErrNoSources", err)
	}
}

func TestAnalyze_TransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Analyze(context.Background(), models.ScrapeOptions{URLs: []string{"u"}})
	if err == nil || !strings.Contains(err.Error(), "failed to analyze") {
		t.Errorf("transport error = %v, want 'failed to analyze' message", err)
	}
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, "sorry, I could not comply"))
	})

	_, err := client.Analyze(context.Background(), models.ScrapeOptions{URLs: []string{"u"}})
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("malformed response error = %v", err)
	}
}

func TestAnalyze_ValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, `{"products": [{"name": 42}], "qaItems": []}`))
	})

	_, err := client.Analyze(context.Background(), models.ScrapeOptions{URLs: []string{"u"}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "data validation failed") {
		t.Errorf("error %q lacks validation prefix", msg)
	}
	if !strings.Contains(msg, "products[0]") {
		t.Errorf("error %q does not name the offending path", msg)
	}
	if strings.Contains(msg, "failed to analyze") {
		t.Errorf("validation error %q must be distinguishable from transport errors", msg)
	}
}

func TestAnalyze_SingleRequestNoRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), models.ScrapeOptions{URLs: []string{"u"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("model called %d times, want exactly 1 (no retries)", calls)
	}
}

func TestAnalyze_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, "{}")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Analyze(ctx, models.ScrapeOptions{URLs: []string{"u"}})
	if err == nil {
		t.Fatal("expected context deadline error")
	}
}
