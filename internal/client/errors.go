package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/opeller/authgate/models"
)

// APIError is a non-2xx answer from the server, decoded from the
// uniform error envelope when possible.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse
}

func (e *APIError) Error() string {
	if len(e.Response.Errors) > 0 {
		return fmt.Sprintf("%s: %s", e.Response.Title, strings.Join(e.Response.Errors, "; "))
	}
	if e.Response.Title != "" {
		return e.Response.Title
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// mapAPIError converts a response into an *APIError, or nil for 2xx.
// Bodies that are not the envelope still produce a usable error with
// the status code.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	_ = json.Unmarshal(resp.Body(), &apiErr.Response)

	return apiErr
}
