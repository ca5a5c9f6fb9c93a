package genai

import (
	"fmt"
	"strings"

	"github.com/opsecfreak/webintel/models"
)

// BuildPrompt assembles the analysis instruction for one request. The
// model does all crawling and cross-referencing; everything we control
// about that work lives in this text.
func BuildPrompt(opts models.ScrapeOptions) string {
	var urlsList string
	if len(opts.URLs) > 0 {
		lines := make([]string, len(opts.URLs))
		for i, u := range opts.URLs {
			lines[i] = "- " + u
		}
		urlsList = strings.Join(lines, "\n")
	} else {
		urlsList = "None provided."
	}

	var b strings.Builder
	b.WriteString(`Act as an expert data scraper and analyst. Perform a targeted analysis of the websites in the Data Sources list.

**Data Sources:**
`)
	b.WriteString(urlsList)
	b.WriteString(`

Follow this three-step process:

1. **Analyze All Sources:** Deeply crawl every Data Sources URL.

2. **Extract Key Information:** Identify and extract two distinct kinds of information from any of the sites:
   - **Product/Part Data:** From e-commerce pages, product listings, or parts catalogs, extract for each individual product or part: the product/part name, the price, the part number (or SKU / manufacturer part number - this is a critical field; if a page lists multiple parts, emit each as a separate product entry), a brief description, and the direct URL to the product page.
   - **Q&A/Discussion Data:** From forum threads, community Q&A sections, or support pages, extract for each relevant discussion: the primary question asked, a concise summary of the most helpful answer or general consensus, the URL to the thread, and a list of specific products (by name or part number) mentioned.

3. **Cross-Reference Data (CRITICAL STEP):** For each product, search all gathered discussion data for mentions of it by name or part number. Summarize the context of each mention and link the summary plus the source thread URL to the product.

**Rules for Extraction:**
- Scour every provided URL for both product and Q&A data; a single URL may contain both.
- Ignore advertisements, navigation menus, footers, sidebars, and boilerplate.
- If a price or part number is unavailable, leave the field as an empty string.
- Synthesize; answer summaries are distillations, not copies.
`)

	if opts.Topic != "" {
		fmt.Fprintf(&b, "\n- **IMPORTANT**: Focus the analysis on content related to this topic: %q. Prioritize pages and threads matching it.\n", opts.Topic)
	}
	if opts.CrawlDepth > 0 {
		fmt.Fprintf(&b, "- Limit the crawl to a depth of %d pages from each starting URL. Depth 1 means the initial page plus directly linked pages.\n", opts.CrawlDepth)
	}
	if opts.MaxResults > 0 {
		fmt.Fprintf(&b, "- Limit output to approximately %d of the most relevant products and %d of the most relevant Q&A items.\n", opts.MaxResults, opts.MaxResults)
	}

	b.WriteString("\nReturn the final, cross-referenced data in the specified JSON format.")
	return b.String()
}
