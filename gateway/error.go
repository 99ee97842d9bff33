package gateway

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/cairn/content"
)

var (
	ErrNotValid        = errors.New("not valid")
	ErrServiceNotFound = errors.New("service not found")
)

// StatusFor maps an error returned by a Service to the status code reported to the client.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, content.ErrAccessDenied):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
