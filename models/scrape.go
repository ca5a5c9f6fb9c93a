// Package models defines the shared data structures for analysis results
// and runtime configuration.
package models

import "strings"

// ForumMention is one forum thread referencing a product. Immutable once
// validated; owned by exactly one Product.
type ForumMention struct {
	ThreadTitle string `json:"threadTitle"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
}

// Product is a single product or part extracted from the product sources.
// Price is a free-form display string (possibly empty), not a number.
// PartNumber may be empty, meaning "unknown".
type Product struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Price       string         `json:"price"`
	PartNumber  string         `json:"partNumber"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Mentions    []ForumMention `json:"mentions"`
}

// HasPartNumber reports whether the product carries a usable part number.
// Whitespace-only part numbers count as absent.
func (p Product) HasPartNumber() bool {
	return strings.TrimSpace(p.PartNumber) != ""
}

// QAItem is a question/answer pair extracted from the forum sources.
// RelatedProducts holds free-text product names or part numbers as written
// in the source; there is no foreign-key relationship to Product.
type QAItem struct {
	ID              string   `json:"id,omitempty"`
	Question        string   `json:"question"`
	AnswerSummary   string   `json:"answerSummary"`
	ThreadURL       string   `json:"threadUrl"`
	RelatedProducts []string `json:"relatedProducts"`
}

// ScrapedData is the root result of one analysis request. It is created
// fresh per request, immutable after validation, and replaced wholesale by
// the next request.
type ScrapedData struct {
	Products []Product `json:"products"`
	QAItems  []QAItem  `json:"qaItems"`
}

// IsEmpty reports whether the dataset contains no products and no Q&A items.
func (d *ScrapedData) IsEmpty() bool {
	return len(d.Products) == 0 && len(d.QAItems) == 0
}
