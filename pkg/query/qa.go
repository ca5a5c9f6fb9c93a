package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/opsecfreak/webintel/models"
)

// FilterQA returns the Q&A items matching the criteria, in input order.
// The input slice is never modified.
func FilterQA(items []models.QAItem, c QACriteria) []models.QAItem {
	out := make([]models.QAItem, 0, len(items))
	search := strings.ToLower(c.Search)
	related := strings.ToLower(c.RelatedProduct)

	for _, qa := range items {
		if search != "" && !qaMatchesSearch(qa, search) {
			continue
		}
		if related != "" && !anyContains(qa.RelatedProducts, related) {
			continue
		}
		out = append(out, qa)
	}
	return out
}

func qaMatchesSearch(qa models.QAItem, search string) bool {
	return strings.Contains(strings.ToLower(qa.Question), search) ||
		strings.Contains(strings.ToLower(qa.AnswerSummary), search) ||
		anyContains(qa.RelatedProducts, search)
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// SortQA returns a sorted copy of items per the criteria's sort key: by
// question text (locale order) or by count of related products.
func SortQA(items []models.QAItem, c QACriteria) []models.QAItem {
	out := make([]models.QAItem, len(items))
	copy(out, items)

	switch c.SortKey {
	case SortQAQuestion:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := coll.CompareString(out[i].Question, out[j].Question)
			if c.Descending {
				return cmp > 0
			}
			return cmp < 0
		})

	case SortQARelatedCount:
		sort.SliceStable(out, func(i, j int) bool {
			if c.Descending {
				return len(out[i].RelatedProducts) > len(out[j].RelatedProducts)
			}
			return len(out[i].RelatedProducts) < len(out[j].RelatedProducts)
		})
	}

	return out
}

// QA applies filtering then sorting in one pass over the criteria.
func QA(items []models.QAItem, c QACriteria) []models.QAItem {
	return SortQA(FilterQA(items, c), c)
}

// View derives a complete filtered/sorted dataset. The result is a fresh
// ScrapedData; the source is untouched.
func View(data *models.ScrapedData, c Criteria) *models.ScrapedData {
	return &models.ScrapedData{
		Products: Products(data.Products, c.Products),
		QAItems:  QA(data.QAItems, c.QA),
	}
}
