// Package estimate parses acquireEstimate responses into Estimates whose
// lines are ordered by their natural line-item number.
package estimate

import "encoding/json"

type Line struct {
	LineItem    string `json:"line_item"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	LineID      string `json:"line_id"`
}

type Estimate struct {
	ID           string
	StatusReason string
	// Name is nil when the estimate carries no name.
	Name *string

	lines map[string]*Line
	keys  []string
}

// Lines returns the lines in natural order of their line-item numbers.
func (e *Estimate) Lines() []*Line {
	out := make([]*Line, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, e.lines[k])
	}
	return out
}

func (e *Estimate) LineItems() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

func (e *Estimate) Line(lineItem string) (*Line, bool) {
	l, ok := e.lines[lineItem]
	return l, ok
}

func (e *Estimate) Len() int {
	return len(e.keys)
}

func (e *Estimate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           string  `json:"estimate_id"`
		StatusReason string  `json:"status_reason"`
		Name         *string `json:"estimate_name"`
		Lines        []*Line `json:"lines"`
	}{
		ID:           e.ID,
		StatusReason: e.StatusReason,
		Name:         e.Name,
		Lines:        e.Lines(),
	})
}
