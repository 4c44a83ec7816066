package domain

import "fmt"

// RawResponse is what a transport hands back for a completed exchange.
// Keep it generic so the domain does not depend on net/http types.
type RawResponse struct {
	Status int
	Body   []byte
}

// ResponseError is attached as the cause of ServerError and ClientError
// results so diagnostics can see what the remote side answered.
type ResponseError struct {
	URL    string
	Status int
	Body   []byte
}

func (e *ResponseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unexpected status %d from %s", e.Status, e.URL)
}
