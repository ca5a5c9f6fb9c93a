package genai

// responseSchema is the JSON schema hint sent with every request. It only
// nudges the model toward the right shape; pkg/validate is the actual
// contract enforcement point.
var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"products": map[string]any{
			"type":        "ARRAY",
			"description": "Products found on the product data source sites.",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":        map[string]any{"type": "STRING", "description": "Full name of the product or part."},
					"price":       map[string]any{"type": "STRING", "description": "Price as a display string, e.g. '$99.99'."},
					"partNumber":  map[string]any{"type": "STRING", "description": "Manufacturer part number, SKU, or other unique identifier."},
					"description": map[string]any{"type": "STRING", "description": "Brief description of the product."},
					"url":         map[string]any{"type": "STRING", "description": "Direct URL to the product page."},
					"mentions": map[string]any{
						"type":        "ARRAY",
						"description": "Forum threads from the forum sources mentioning this product.",
						"items": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"threadTitle": map[string]any{"type": "STRING"},
								"summary":     map[string]any{"type": "STRING", "description": "User experience or compatibility context."},
								"url":         map[string]any{"type": "STRING"},
							},
						},
					},
				},
			},
		},
		"qaItems": map[string]any{
			"type":        "ARRAY",
			"description": "Question and answer pairs from the forum sources.",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"question":      map[string]any{"type": "STRING"},
					"answerSummary": map[string]any{"type": "STRING", "description": "Summary of the most helpful answer."},
					"threadUrl":     map[string]any{"type": "STRING"},
					"relatedProducts": map[string]any{
						"type":        "ARRAY",
						"description": "Product names or part numbers discussed in the thread.",
						"items":       map[string]any{"type": "STRING"},
					},
				},
			},
		},
	},
}
