package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/opsecfreak/webintel/models"
)

// The exported HTML must stay openable as a standalone file, so all styling
// is inlined and no external resources are referenced.
const htmlStyles = `
<style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; background-color: #111827; color: #e5e7eb; margin: 0; padding: 2rem; }
    .container { max-width: 1000px; margin: auto; }
    h1, h2, h3 { color: #67e8f9; border-bottom: 2px solid #374151; padding-bottom: 0.5rem; }
    h1 { font-size: 2.5rem; }
    h2 { font-size: 2rem; margin-top: 3rem; }
    .card { background-color: #1f2937; border: 1px solid #374151; border-radius: 8px; padding: 1.5rem; margin-bottom: 1.5rem; }
    .card h3 { font-size: 1.5rem; margin-top: 0; border: none; }
    .card a { color: #22d3ee; text-decoration: none; }
    .card a:hover { text-decoration: underline; }
    .tag { display: inline-block; background-color: #374151; color: #9ca3af; padding: 0.25rem 0.75rem; border-radius: 12px; font-size: 0.8rem; margin-right: 0.5rem; }
    .price { font-size: 1.2rem; font-weight: bold; color: #4ade80; }
    .mentions { border-top: 1px solid #374151; margin-top: 1rem; padding-top: 1rem; }
    .mention { background-color: #374151; padding: 1rem; border-radius: 6px; margin-top: 0.5rem; }
    .mention p { margin: 0 0 0.5rem 0; }
</style>
`

var reportFuncs = template.FuncMap{
	"styles": func() template.HTML { return template.HTML(htmlStyles) },
	"displayOr": func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return s
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    {{styles}}
</head>
<body>
    <div class="container">
        <h1>{{.Heading}}</h1>
{{- if .ShowProductSection}}
        <h2>Products ({{len .Products}})</h2>
{{- end}}
{{- range .Products}}
        <div class="card">
            <h3>{{.Name}}</h3>
            <div><span class="price">{{displayOr .Price "N/A"}}</span> <span class="tag">Part #: {{displayOr .PartNumber "N/A"}}</span></div>
            <p>{{.Description}}</p>
            {{- if .URL}}
            <a href="{{.URL}}" target="_blank">View Product Page</a>
            {{- end}}
            {{- if .Mentions}}
            <div class="mentions">
                <h4>Forum Intelligence:</h4>
                {{- range .Mentions}}
                <div class="mention">
                    <p>"<em>{{.Summary}}</em>"</p>
                    <a href="{{.URL}}" target="_blank">{{.ThreadTitle}}</a>
                </div>
                {{- end}}
            </div>
            {{- end}}
        </div>
{{- end}}
{{- if and .ShowProductSection (not .Products)}}
        <p>No products found.</p>
{{- end}}
{{- if .ShowQASection}}
        <h2>Q&amp;A Items ({{len .QAItems}})</h2>
{{- end}}
{{- range .QAItems}}
        <div class="card">
            <h3>Question: "{{.Question}}"</h3>
            <p><strong>Answer Summary:</strong> {{.AnswerSummary}}</p>
            {{- if .RelatedProducts}}
            <div>
                <strong>Related Products:</strong>
                {{- range .RelatedProducts}}
                <span class="tag">{{.}}</span>
                {{- end}}
            </div>
            {{- end}}
            {{- if .ThreadURL}}
            <p><a href="{{.ThreadURL}}" target="_blank">View Forum Thread</a></p>
            {{- end}}
        </div>
{{- end}}
{{- if and .ShowQASection (not .QAItems)}}
        <p>No Q&amp;A items found.</p>
{{- end}}
    </div>
</body>
</html>
`))

type reportPage struct {
	Title              string
	Heading            string
	ShowProductSection bool
	ShowQASection      bool
	Products           []models.Product
	QAItems            []models.QAItem
}

func renderReport(page reportPage) (string, error) {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, page); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return b.String(), nil
}

// FullReportHTML renders the whole dataset as a standalone styled document.
func FullReportHTML(data *models.ScrapedData) (string, error) {
	return renderReport(reportPage{
		Title:              "Web Data Intelligence Report",
		Heading:            "Web Data Intelligence Report",
		ShowProductSection: true,
		ShowQASection:      true,
		Products:           data.Products,
		QAItems:            data.QAItems,
	})
}

// ProductHTML renders a single product as its own document.
func ProductHTML(p models.Product) (string, error) {
	return renderReport(reportPage{
		Title:    "Product: " + p.Name,
		Heading:  "Product Details",
		Products: []models.Product{p},
	})
}

// QAHTML renders a single Q&A item as its own document.
func QAHTML(qa models.QAItem) (string, error) {
	title := qa.Question
	if runes := []rune(title); len(runes) > 50 {
		title = string(runes[:50]) + "..."
	}
	return renderReport(reportPage{
		Title:   "Q&A: " + title,
		Heading: "Q&A Details",
		QAItems: []models.QAItem{qa},
	})
}
