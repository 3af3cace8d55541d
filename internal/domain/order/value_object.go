package order

import "regexp"

// Sentinels written in place of fields that could not be extracted.
const (
	UnknownValue     = "unknown/error"
	ShipDateNotFound = "not found"
)

const (
	StatusClosed = "Closed"

	typeOrderName      = "OrderName"
	typePhone          = "Phone"
	typeShipmentDate   = "ShipmentDate"
	typeTrackingNumber = "Tracking Number"
	typeTrackingURL    = "Tracking URL"
)

var (
	topLevelPattern   = regexp.MustCompile(`^\d+\.0$`)
	linePrefixPattern = regexp.MustCompile(`^\d+\.`)
)

// IsTopLevel reports whether a line number has the form N.0.
func IsTopLevel(lineNumber string) bool {
	return topLevelPattern.MatchString(lineNumber)
}

// linePrefix returns the leading "N." of a line number, or "" when there is none.
func linePrefix(lineNumber string) string {
	return linePrefixPattern.FindString(lineNumber)
}
