package models

// ScrapeOptions holds the user-supplied inputs for one analysis request.
// Topic, MaxResults and CrawlDepth are optional; zero values mean "unset".
type ScrapeOptions struct {
	// URLs are the data sources, order-preserving.
	URLs []string
	// Topic narrows the analysis to content matching these keywords.
	Topic string
	// MaxResults caps products and Q&A items. The cap is embedded in the
	// prompt as a hint and additionally enforced by truncation after
	// validation.
	MaxResults int
	// CrawlDepth limits link-hops from each source URL. Advisory only:
	// it is embedded in the prompt and never verified locally.
	CrawlDepth int
}
