package query

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/opsecfreak/webintel/models"
)

// Memo caches derived views for a single dataset, keyed by a structural
// hash of the criteria. A dataset is replaced wholesale on every analysis
// request, so the memo is bound to one dataset and discarded with it.
type Memo struct {
	data *models.ScrapedData

	mu    sync.Mutex
	views map[string]*models.ScrapedData
}

// NewMemo creates a memoizing view deriver over data.
func NewMemo(data *models.ScrapedData) *Memo {
	return &Memo{
		data:  data,
		views: make(map[string]*models.ScrapedData),
	}
}

// Data returns the underlying source dataset.
func (m *Memo) Data() *models.ScrapedData {
	return m.data
}

// key generates a SHA256 hash of the criteria's canonical JSON encoding.
func key(c Criteria) string {
	encoded, err := json.Marshal(c)
	if err != nil {
		// Criteria is a plain value type; Marshal cannot fail on it.
		return fmt.Sprintf("%+v", c)
	}
	hash := sha256.Sum256(encoded)
	return fmt.Sprintf("%x", hash)
}

// View returns the derived view for the criteria, computing it at most once
// per distinct criteria value. Callers must treat the result as read-only.
func (m *Memo) View(c Criteria) *models.ScrapedData {
	k := key(c)

	m.mu.Lock()
	defer m.mu.Unlock()

	if view, ok := m.views[k]; ok {
		return view
	}
	view := View(m.data, c)
	m.views[k] = view
	return view
}
