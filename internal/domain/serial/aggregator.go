// Package serial collects serial numbers for a sales order from the paginated
// getSerialNumbers responses.
package serial

import (
	"context"
	"fmt"
)

const resultSuccess = "SUCCESS"

// FetchError is reported when a page comes back with a non-success result.
type FetchError struct {
	Code    string
	Message string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s:%s", e.Code, e.Message)
}

// PageFetcher fetches one page of serial data. Pages start at 1.
type PageFetcher interface {
	SerialPage(ctx context.Context, salesOrder string, page int) (*Page, error)
}

// Record is everything known about one serial line number.
type Record struct {
	LineNumber string
	SKU        string
	Quantity   string
	Shipset    string
	Serials    []string
}

// Records maps serial line numbers to records and remembers first-seen order.
type Records struct {
	byLine map[string]*Record
	order  []string
}

func NewRecords() *Records {
	return &Records{byLine: make(map[string]*Record)}
}

func (r *Records) Len() int {
	return len(r.order)
}

// LineNumbers returns the line numbers in the order they were first seen.
func (r *Records) LineNumbers() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Records) Get(lineNumber string) (*Record, bool) {
	rec, ok := r.byLine[lineNumber]
	return rec, ok
}

func (r *Records) put(rec *Record) {
	if _, ok := r.byLine[rec.LineNumber]; !ok {
		r.order = append(r.order, rec.LineNumber)
	}
	r.byLine[rec.LineNumber] = rec
}

// Aggregator accumulates pages. The page count is fixed by the first page added.
type Aggregator struct {
	records    *Records
	pages      int
	totalPages int
}

func NewAggregator() *Aggregator {
	return &Aggregator{records: NewRecords()}
}

// Add merges one page. SKU, quantity and shipset come from the first
// occurrence of a line number; serials of later occurrences are appended.
func (a *Aggregator) Add(p *Page) error {
	if p == nil {
		return &FetchError{Message: "empty serial number response"}
	}
	if !p.Header.Succeeded() {
		return &FetchError{Code: p.Header.ErrorCode.Value, Message: p.Header.Message.Value}
	}

	if a.pages == 0 {
		a.totalPages = p.Header.Pages()
	}
	a.pages++

	for _, line := range p.Details.Lines {
		number := line.LineNumber.Value
		if rec, ok := a.records.Get(number); ok {
			rec.Serials = append(rec.Serials, line.serials()...)
			continue
		}
		a.records.put(&Record{
			LineNumber: number,
			SKU:        line.PartNumber.Value,
			Quantity:   line.Quantity.Value,
			Shipset:    line.ShipSetNumber.Value,
			Serials:    line.serials(),
		})
	}
	return nil
}

// TotalPages is the page count reported by the first page.
func (a *Aggregator) TotalPages() int {
	return a.totalPages
}

func (a *Aggregator) Records() *Records {
	return a.records
}

// Collect fetches pages 1..N for salesOrder, N being the total reported by
// page 1, and returns the accumulated records. Any failed page aborts.
func Collect(ctx context.Context, fetcher PageFetcher, salesOrder string) (*Records, error) {
	agg := NewAggregator()
	for page := 1; ; page++ {
		p, err := fetcher.SerialPage(ctx, salesOrder, page)
		if err != nil {
			return nil, fmt.Errorf("fetch serial page %d: %w", page, err)
		}
		if err := agg.Add(p); err != nil {
			return nil, err
		}
		if page >= agg.TotalPages() {
			break
		}
	}
	return agg.Records(), nil
}
