package ccw

import "fmt"

const maxErrorBody = 512

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		return fmt.Sprintf("ccw api status %d", e.StatusCode)
	}
	return fmt.Sprintf("ccw api status %d: %s", e.StatusCode, body)
}
