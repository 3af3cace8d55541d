package estimate

import "fmt"

// EstimateError means the estimate lookup came back with an explicit failure
// message.
type EstimateError struct {
	EstimateID  string
	Description string
}

func (e *EstimateError) Error() string {
	if e.EstimateID == "" {
		return fmt.Sprintf("error retrieving estimate: %s", e.Description)
	}
	return fmt.Sprintf("error retrieving estimate %s: %s", e.EstimateID, e.Description)
}
