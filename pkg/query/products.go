package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/price"
)

// FilterProducts returns the products matching the criteria, in input order.
// The input slice is never modified.
func FilterProducts(products []models.Product, c ProductCriteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	search := strings.ToLower(c.Search)

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.PartNumber), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		if !passesPriceBounds(p, c) {
			continue
		}

		if c.HasPartNumber && !p.HasPartNumber() {
			continue
		}

		out = append(out, p)
	}
	return out
}

func passesPriceBounds(p models.Product, c ProductCriteria) bool {
	boundActive := c.MinPrice != nil || c.MaxPrice != nil
	v, ok := price.Parse(p.Price)
	if !ok {
		// No parseable price: excluded only when a bound is active and the
		// caller opted in; otherwise price filtering never rejects it.
		return !(boundActive && c.ExcludeUnpriced)
	}
	if c.MinPrice != nil && v < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && v > *c.MaxPrice {
		return false
	}
	return true
}

// SortProducts returns a sorted copy of products per the criteria's sort key.
// Price sorting always places products with no parseable price after all
// priced ones, regardless of direction. An unknown or empty key returns an
// unsorted copy.
func SortProducts(products []models.Product, c ProductCriteria) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch c.SortKey {
	case SortProductName:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := coll.CompareString(out[i].Name, out[j].Name)
			if c.Descending {
				return cmp > 0
			}
			return cmp < 0
		})

	case SortProductPrice:
		sort.SliceStable(out, func(i, j int) bool {
			vi, oki := price.Parse(out[i].Price)
			vj, okj := price.Parse(out[j].Price)
			if oki != okj {
				return oki // unpriced items sink to the end either way
			}
			if !oki {
				return false
			}
			if c.Descending {
				return vi > vj
			}
			return vi < vj
		})

	case SortProductPartNumberFirst:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			hi, hj := out[i].HasPartNumber(), out[j].HasPartNumber()
			if hi != hj {
				return hi
			}
			return coll.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}

// Products applies filtering then sorting in one pass over the criteria.
func Products(products []models.Product, c ProductCriteria) []models.Product {
	return SortProducts(FilterProducts(products, c), c)
}
