package serial

import (
	"strconv"
	"strings"

	"ccw_query/internal/domain/document"
)

// Page is one page of a getSerialNumbers response.
type Page struct {
	Header  ResponseHeader `json:"responseHeader"`
	Details Details        `json:"serialDetails"`
}

type ResponseHeader struct {
	Result     string        `json:"result"`
	ErrorCode  document.Text `json:"errorCode"`
	Message    document.Text `json:"message"`
	TotalPages document.Text `json:"totalPages"`
}

// Pages returns the reported page count, 0 when missing or malformed.
func (h ResponseHeader) Pages() int {
	n, err := strconv.Atoi(strings.TrimSpace(h.TotalPages.Value))
	if err != nil {
		return 0
	}
	return n
}

func (h ResponseHeader) Succeeded() bool {
	return strings.EqualFold(strings.TrimSpace(h.Result), resultSuccess)
}

type Details struct {
	Lines document.Many[Line] `json:"lines"`
}

type Line struct {
	LineNumber    document.Text        `json:"lineNumber"`
	PartNumber    document.Text        `json:"partNumber"`
	Quantity      document.Text        `json:"quantity"`
	ShipSetNumber document.Text        `json:"shipSetNumber"`
	SerialNumbers document.Many[Entry] `json:"serialNumbers"`
}

type Entry struct {
	SerialNumber document.Text `json:"serialNumber"`
}

// serials returns the serial numbers of the line, skipping entries that carry none.
func (l Line) serials() []string {
	out := make([]string, 0, len(l.SerialNumbers))
	for _, e := range l.SerialNumbers {
		if !e.SerialNumber.Valid {
			continue
		}
		out = append(out, e.SerialNumber.Value)
	}
	return out
}
