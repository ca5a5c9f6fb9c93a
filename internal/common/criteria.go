package common

import (
	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/pkg/query"
)

// CriteriaFlags are the shared filter/sort flags for query and export.
var CriteriaFlags = []cli.Flag{
	&cli.StringFlag{Name: "search", Usage: "case-insensitive product search over name, part number, description"},
	&cli.Float64Flag{Name: "min-price", Usage: "minimum parsed price"},
	&cli.Float64Flag{Name: "max-price", Usage: "maximum parsed price"},
	&cli.BoolFlag{Name: "exclude-unpriced", Usage: "drop products with no parseable price when a price bound is set"},
	&cli.BoolFlag{Name: "has-part-number", Usage: "only products with a non-empty part number"},
	&cli.StringFlag{Name: "sort", Usage: "product sort key: name, price, partnumber"},
	&cli.BoolFlag{Name: "desc", Usage: "sort products descending"},
	&cli.StringFlag{Name: "qa-search", Usage: "case-insensitive Q&A search over question, answer, related products"},
	&cli.StringFlag{Name: "related-product", Usage: "only Q&A items tagged with this product"},
	&cli.StringFlag{Name: "qa-sort", Usage: "Q&A sort key: question, related"},
	&cli.BoolFlag{Name: "qa-desc", Usage: "sort Q&A items descending"},
}

// CriteriaFromFlags builds the view criteria from the shared flags.
func CriteriaFromFlags(c *cli.Context) query.Criteria {
	criteria := query.Criteria{
		Products: query.ProductCriteria{
			Search:          c.String("search"),
			ExcludeUnpriced: c.Bool("exclude-unpriced"),
			HasPartNumber:   c.Bool("has-part-number"),
			SortKey:         c.String("sort"),
			Descending:      c.Bool("desc"),
		},
		QA: query.QACriteria{
			Search:         c.String("qa-search"),
			RelatedProduct: c.String("related-product"),
			SortKey:        c.String("qa-sort"),
			Descending:     c.Bool("qa-desc"),
		},
	}
	if c.IsSet("min-price") {
		v := c.Float64("min-price")
		criteria.Products.MinPrice = &v
	}
	if c.IsSet("max-price") {
		v := c.Float64("max-price")
		criteria.Products.MaxPrice = &v
	}
	return criteria
}
