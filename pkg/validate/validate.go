// Package validate converts the untrusted JSON value returned by the model
// into a fully-typed ScrapedData. Validation is structural and exhaustive:
// every field is checked for its exact primitive type, nothing is coerced or
// defaulted, and the first failure aborts the whole validation so downstream
// code never sees a partially valid dataset.
package validate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/opsecfreak/webintel/models"
)

// ValidationError reports a structural failure at a specific path inside
// the model response, e.g. "products[3].mentions[1].url must be a string".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Path, e.Reason)
}

func errAt(path, reason string) error {
	return &ValidationError{Path: path, Reason: reason}
}

// ScrapedData validates an arbitrary parsed-JSON value against the result
// shape. On success every string field is present and typed, every slice is
// non-nil, and each product and Q&A item carries a synthetic ID (minted here
// when the input has none). On failure the returned error names the exact
// offending path.
func ScrapedData(v any) (*models.ScrapedData, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, errAt("response", "is not an object")
	}

	rawProducts, ok := root["products"].([]any)
	if !ok {
		return nil, errAt("products", "must be an array")
	}
	rawQA, ok := root["qaItems"].([]any)
	if !ok {
		return nil, errAt("qaItems", "must be an array")
	}

	data := &models.ScrapedData{
		Products: make([]models.Product, 0, len(rawProducts)),
		QAItems:  make([]models.QAItem, 0, len(rawQA)),
	}

	for i, raw := range rawProducts {
		p, err := product(fmt.Sprintf("products[%d]", i), raw)
		if err != nil {
			return nil, fmt.Errorf("item-level validation failed: %w", err)
		}
		data.Products = append(data.Products, p)
	}

	for i, raw := range rawQA {
		qa, err := qaItem(fmt.Sprintf("qaItems[%d]", i), raw)
		if err != nil {
			return nil, fmt.Errorf("item-level validation failed: %w", err)
		}
		data.QAItems = append(data.QAItems, qa)
	}

	return data, nil
}

func product(path string, v any) (models.Product, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.Product{}, errAt(path, "is not a valid object")
	}

	p := models.Product{ID: uuid.NewString()}
	var err error

	if id, ok := obj["id"].(string); ok && id != "" {
		p.ID = id
	}
	if p.Name, err = stringField(path, obj, "name"); err != nil {
		return models.Product{}, err
	}
	if p.Price, err = stringField(path, obj, "price"); err != nil {
		return models.Product{}, err
	}
	if p.PartNumber, err = stringField(path, obj, "partNumber"); err != nil {
		return models.Product{}, err
	}
	if p.Description, err = stringField(path, obj, "description"); err != nil {
		return models.Product{}, err
	}
	if p.URL, err = stringField(path, obj, "url"); err != nil {
		return models.Product{}, err
	}

	rawMentions, ok := obj["mentions"].([]any)
	if !ok {
		return models.Product{}, errAt(path+".mentions", "must be an array")
	}
	p.Mentions = make([]models.ForumMention, 0, len(rawMentions))
	for i, raw := range rawMentions {
		m, err := mention(fmt.Sprintf("%s.mentions[%d]", path, i), raw)
		if err != nil {
			return models.Product{}, err
		}
		p.Mentions = append(p.Mentions, m)
	}

	return p, nil
}

func mention(path string, v any) (models.ForumMention, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.ForumMention{}, errAt(path, "is not a valid object")
	}

	var m models.ForumMention
	var err error
	if m.ThreadTitle, err = stringField(path, obj, "threadTitle"); err != nil {
		return models.ForumMention{}, err
	}
	if m.Summary, err = stringField(path, obj, "summary"); err != nil {
		return models.ForumMention{}, err
	}
	if m.URL, err = stringField(path, obj, "url"); err != nil {
		return models.ForumMention{}, err
	}
	return m, nil
}

func qaItem(path string, v any) (models.QAItem, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.QAItem{}, errAt(path, "is not a valid object")
	}

	qa := models.QAItem{ID: uuid.NewString()}
	var err error

	if id, ok := obj["id"].(string); ok && id != "" {
		qa.ID = id
	}
	if qa.Question, err = stringField(path, obj, "question"); err != nil {
		return models.QAItem{}, err
	}
	if qa.AnswerSummary, err = stringField(path, obj, "answerSummary"); err != nil {
		return models.QAItem{}, err
	}
	if qa.ThreadURL, err = stringField(path, obj, "threadUrl"); err != nil {
		return models.QAItem{}, err
	}

	rawRelated, ok := obj["relatedProducts"].([]any)
	if !ok {
		return models.QAItem{}, errAt(path+".relatedProducts", "must be an array")
	}
	qa.RelatedProducts = make([]string, 0, len(rawRelated))
	for i, raw := range rawRelated {
		s, ok := raw.(string)
		if !ok {
			return models.QAItem{}, errAt(
				fmt.Sprintf("%s.relatedProducts[%d]", path, i), "must be a string")
		}
		qa.RelatedProducts = append(qa.RelatedProducts, s)
	}

	return qa, nil
}

func stringField(path string, obj map[string]any, key string) (string, error) {
	s, ok := obj[key].(string)
	if !ok {
		return "", errAt(path+"."+key, "must be a string")
	}
	return s, nil
}
