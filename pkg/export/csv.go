// Package export renders a dataset (or a derived subset) into portable
// delimited-text and standalone HTML documents, and defines the file
// delivery contract.
package export

import (
	"strconv"
	"strings"

	"github.com/opsecfreak/webintel/models"
)

// Media types for the two export formats.
const (
	MediaTypeCSV  = "text/csv;charset=utf-8;"
	MediaTypeHTML = "text/html;charset=utf-8;"
)

// escapeField applies the delimited-text quoting rule uniformly to every
// field: wrap in quotes iff the value contains a delimiter, quote or
// newline, doubling internal quotes.
func escapeField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

func csvRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, ",")
}

// ProductCSV renders the product table. Mention summaries are concatenated
// with "; " into the final column.
func ProductCSV(products []models.Product) string {
	if len(products) == 0 {
		return ""
	}

	rows := make([]string, 0, len(products)+1)
	rows = append(rows, csvRow([]string{
		"Name", "Price", "Part Number", "Description", "URL",
		"Mention Count", "Mention Summaries",
	}))

	for _, p := range products {
		summaries := make([]string, len(p.Mentions))
		for i, m := range p.Mentions {
			summaries[i] = m.Summary
		}
		rows = append(rows, csvRow([]string{
			p.Name,
			p.Price,
			p.PartNumber,
			p.Description,
			p.URL,
			strconv.Itoa(len(p.Mentions)),
			strings.Join(summaries, "; "),
		}))
	}

	return strings.Join(rows, "\n")
}

// QACSV renders the Q&A table with related products joined by "; ".
func QACSV(items []models.QAItem) string {
	if len(items) == 0 {
		return ""
	}

	rows := make([]string, 0, len(items)+1)
	rows = append(rows, csvRow([]string{
		"Question", "Answer Summary", "Thread URL", "Related Products",
	}))

	for _, qa := range items {
		rows = append(rows, csvRow([]string{
			qa.Question,
			qa.AnswerSummary,
			qa.ThreadURL,
			strings.Join(qa.RelatedProducts, "; "),
		}))
	}

	return strings.Join(rows, "\n")
}

// FullReportCSV renders both tables under section header lines, with
// placeholders when a section is empty.
func FullReportCSV(data *models.ScrapedData) string {
	var b strings.Builder

	b.WriteString("--- Products ---\n")
	if csv := ProductCSV(data.Products); csv != "" {
		b.WriteString(csv)
	} else {
		b.WriteString("No products found.\n")
	}

	b.WriteString("\n\n--- Q&A Items ---\n")
	if csv := QACSV(data.QAItems); csv != "" {
		b.WriteString(csv)
	} else {
		b.WriteString("No Q&A items found.\n")
	}

	return b.String()
}

// PartsListCSV emits Name + Part Number pairs for products with a non-empty
// part number, with an explicit placeholder row when none qualify.
func PartsListCSV(products []models.Product) string {
	header := csvRow([]string{"Product Name", "Part Number"})

	rows := []string{header}
	for _, p := range products {
		if !p.HasPartNumber() {
			continue
		}
		rows = append(rows, csvRow([]string{p.Name, p.PartNumber}))
	}

	if len(rows) == 1 {
		return header + "\nNo products with part numbers found in the selection."
	}
	return strings.Join(rows, "\n")
}

// MentionsCSV emits one row per (product, mention) pair.
func MentionsCSV(products []models.Product) string {
	header := csvRow([]string{
		"Product Name", "Mention Thread Title", "Mention Summary", "Mention URL",
	})

	rows := []string{header}
	for _, p := range products {
		for _, m := range p.Mentions {
			rows = append(rows, csvRow([]string{p.Name, m.ThreadTitle, m.Summary, m.URL}))
		}
	}

	if len(rows) == 1 {
		return header + "\nNo forum mentions found in the selection."
	}
	return strings.Join(rows, "\n")
}

