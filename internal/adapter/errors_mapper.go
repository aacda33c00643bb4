package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a *StatusError otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return statusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func statusError(code int, body string) error {
	var sentinel error

	switch code {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return &StatusError{StatusCode: code, Body: fmt.Sprintf("http %d: %s", code, body)}
	}

	return &StatusError{StatusCode: code, Body: body, err: sentinel}
}
