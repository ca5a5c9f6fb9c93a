// Package query derives filtered, sorted views over a validated dataset.
// Every operation is a pure function of (data, criteria): source slices are
// never mutated and results are freshly allocated. Recomputation happens on
// every criteria change, so results are memoized per (dataset, criteria).
package query

// Product sort keys.
const (
	SortProductName           = "name"
	SortProductPrice          = "price"
	SortProductPartNumberFirst = "partnumber"
)

// Q&A sort keys.
const (
	SortQAQuestion     = "question"
	SortQARelatedCount = "related"
)

// ProductCriteria selects and orders products. All filter conditions
// combine with logical AND. Nil price bounds mean "unset".
type ProductCriteria struct {
	// Search matches case-insensitively against name, part number and
	// description.
	Search string `json:"search,omitempty"`
	// MinPrice/MaxPrice bound the parsed numeric price.
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	// ExcludeUnpriced drops products with no parseable price whenever a
	// price bound is active. Without it, unpriced products pass price
	// filtering unconditionally.
	ExcludeUnpriced bool `json:"excludeUnpriced,omitempty"`
	// HasPartNumber drops products whose part number is empty or
	// whitespace-only.
	HasPartNumber bool `json:"hasPartNumber,omitempty"`
	// SortKey is one of the SortProduct* constants; empty preserves input
	// order.
	SortKey    string `json:"sortKey,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

// IsZero reports whether no filtering or sorting is requested.
func (c ProductCriteria) IsZero() bool {
	return c.Search == "" && c.MinPrice == nil && c.MaxPrice == nil &&
		!c.ExcludeUnpriced && !c.HasPartNumber && c.SortKey == ""
}

// QACriteria selects and orders Q&A items. Both filter conditions combine
// with logical AND.
type QACriteria struct {
	// Search matches case-insensitively against question, answer summary,
	// or any related-product tag (ANY-match across the three).
	Search string `json:"search,omitempty"`
	// RelatedProduct narrows to items where at least one related-product
	// string contains this substring, case-insensitively.
	RelatedProduct string `json:"relatedProduct,omitempty"`
	// SortKey is one of the SortQA* constants; empty preserves input order.
	SortKey    string `json:"sortKey,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

// IsZero reports whether no filtering or sorting is requested.
func (c QACriteria) IsZero() bool {
	return c.Search == "" && c.RelatedProduct == "" && c.SortKey == ""
}

// Criteria bundles the product and Q&A criteria for a whole-dataset view.
type Criteria struct {
	Products ProductCriteria `json:"products"`
	QA       QACriteria      `json:"qa"`
}
