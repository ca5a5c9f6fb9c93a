// Package summary computes headline statistics over a validated dataset.
package summary

import (
	"sort"
	"strings"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/price"
)

// TopKeywordCount is how many related-product keywords the summary surfaces.
const TopKeywordCount = 3

// Stats are the headline numbers shown after an analysis.
type Stats struct {
	ProductCount int      `json:"productCount"`
	QACount      int      `json:"qaCount"`
	PricedCount  int      `json:"pricedCount"`
	AveragePrice float64  `json:"averagePrice"`
	TopKeywords  []string `json:"topKeywords"`
}

// Compute derives the stats for a dataset. AveragePrice covers only
// products whose price parses; it is 0 when none do.
func Compute(data *models.ScrapedData) Stats {
	stats := Stats{
		ProductCount: len(data.Products),
		QACount:      len(data.QAItems),
		TopKeywords:  []string{},
	}

	var sum float64
	for _, p := range data.Products {
		if v, ok := price.Parse(p.Price); ok {
			sum += v
			stats.PricedCount++
		}
	}
	if stats.PricedCount > 0 {
		stats.AveragePrice = sum / float64(stats.PricedCount)
	}

	stats.TopKeywords = topKeywords(data.QAItems, TopKeywordCount)
	return stats
}

// topKeywords counts related-product tags across all Q&A items and returns
// the n most frequent, ties broken alphabetically for stable output.
func topKeywords(items []models.QAItem, n int) []string {
	counts := make(map[string]int)
	for _, qa := range items {
		for _, name := range qa.RelatedProducts {
			keyword := strings.TrimSpace(name)
			if keyword != "" {
				counts[keyword]++
			}
		}
	}

	type kv struct {
		Key   string
		Value int
	}
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < limit {
		limit = len(ss)
	}
	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = ss[i].Key
	}
	return keywords
}
