package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/opsecfreak/webintel/models"
)

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Battery B", "Battery B"},
		{"comma", "small, light", `"small, light"`},
		{"quote", `the "best" one`, `"the ""best"" one"`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"comma and quote", `fits "X", mostly`, `"fits ""X"", mostly"`},
		{"numeric-looking", "1299.99", "1299.99"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeField(tt.input); got != tt.want {
				t.Errorf("escapeField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProductCSV_RoundTripsEscapedField(t *testing.T) {
	original := `A compact pack, rated "excellent" by users`
	products := []models.Product{{
		Name:        "Battery B",
		Price:       "$150",
		PartNumber:  "B-100",
		Description: original,
		URL:         "https://shop.example.com/b-100",
		Mentions: []models.ForumMention{
			{ThreadTitle: "t", Summary: "fits Model X", URL: "u"},
			{ThreadTitle: "t2", Summary: "runs hot", URL: "u2"},
		},
	}}

	out := ProductCSV(products)

	// Re-split with the standard delimited-text rules; the description must
	// come back exactly.
	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	row := records[1]
	if row[3] != original {
		t.Errorf("description round trip = %q, want %q", row[3], original)
	}
	if row[5] != "2" {
		t.Errorf("mention count = %q, want 2", row[5])
	}
	if row[6] != "fits Model X; runs hot" {
		t.Errorf("joined summaries = %q", row[6])
	}
}

func TestQACSV(t *testing.T) {
	items := []models.QAItem{{
		Question:        "Best battery?",
		AnswerSummary:   "B-100, by consensus",
		ThreadURL:       "https://forum.example.com/t/1",
		RelatedProducts: []string{"B-100", "Battery B"},
	}}

	out := QACSV(items)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Question,Answer Summary,Thread URL,Related Products" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "B-100; Battery B") {
		t.Errorf("related products not joined: %q", lines[1])
	}
	// The answer summary contains a comma, so it must be quoted.
	if !strings.Contains(lines[1], `"B-100, by consensus"`) {
		t.Errorf("comma field not quoted: %q", lines[1])
	}
}

func TestFullReportCSV_Placeholders(t *testing.T) {
	out := FullReportCSV(&models.ScrapedData{})
	if !strings.Contains(out, "--- Products ---") || !strings.Contains(out, "--- Q&A Items ---") {
		t.Errorf("section headers missing:\n%s", out)
	}
	if !strings.Contains(out, "No products found.") || !strings.Contains(out, "No Q&A items found.") {
		t.Errorf("placeholders missing:\n%s", out)
	}
}

func TestPartsListCSV(t *testing.T) {
	products := []models.Product{
		{Name: "Battery A", PartNumber: ""},
		{Name: "Battery B", PartNumber: "B-100"},
		{Name: "Antenna", PartNumber: "   "},
	}

	out := PartsListCSV(products)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), out)
	}
	if lines[1] != "Battery B,B-100" {
		t.Errorf("parts row = %q", lines[1])
	}

	empty := PartsListCSV([]models.Product{{Name: "Battery A"}})
	if !strings.Contains(empty, "No products with part numbers found in the selection.") {
		t.Errorf("placeholder row missing:\n%s", empty)
	}
}

func TestMentionsCSV(t *testing.T) {
	products := []models.Product{
		{Name: "Battery B", Mentions: []models.ForumMention{
			{ThreadTitle: "B-100 on Model X?", Summary: "fits", URL: "u1"},
			{ThreadTitle: "Lifespan", Summary: "two seasons", URL: "u2"},
		}},
		{Name: "Antenna"},
	}

	out := MentionsCSV(products)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}

	empty := MentionsCSV([]models.Product{{Name: "Antenna"}})
	if !strings.Contains(empty, "No forum mentions found in the selection.") {
		t.Errorf("placeholder row missing:\n%s", empty)
	}
}
