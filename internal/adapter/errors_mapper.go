package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns anything but 200 OK into a status error. The endpoints
// used by the client treat every other status, including other 2xx codes,
// as a failure.
func mapHTTPError(resp *resty.Response) error {
	return mapStatusError(resp.StatusCode(), resp.Body())
}

// mapStatusError is mapHTTPError for responses whose body was not buffered
// by resty.
func mapStatusError(status int, rawBody []byte) error {
	if status == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(rawBody))
	if body == "" {
		body = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}
