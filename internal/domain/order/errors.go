package order

import "fmt"

// QueryError means the order lookup came back with an explicit failure message.
type QueryError struct {
	Description string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("order query failed: %s", e.Description)
}
