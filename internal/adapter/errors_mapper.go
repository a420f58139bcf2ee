package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// remoteError is the error body returned by the GitHub REST API.
type remoteError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := remoteMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrUnauthorized, message)
	case http.StatusForbidden:
		// primary rate limit exhaustion is reported as 403
		if resp.Header().Get("X-RateLimit-Remaining") == "0" {
			return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrRateLimited, message)
		}
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrConflict, message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrValidationFailed, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrRateLimited, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrInternalServerError, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrRemoteService, ErrBadGateway, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteService, resp.StatusCode(), message)
	}
}

// remoteMessage extracts the human-readable message of a failed response:
// the "message" field of a JSON error body, else the raw body, else the
// status text.
func remoteMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var remoteErr remoteError
	if err := json.Unmarshal([]byte(body), &remoteErr); err == nil && remoteErr.Message != "" {
		return remoteErr.Message
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
