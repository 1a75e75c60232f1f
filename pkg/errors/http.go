package errors

import (
	"errors"
	"net/http"
)

// StatusCode returns the HTTP status code for an error.
// It maps error codes to appropriate HTTP status codes.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.StatusCode != 0 {
		return serviceErr.StatusCode
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return codeToHTTPStatus(customErr.Code())
	}

	if errors.Is(err, ErrCacheUnavailable) || errors.Is(err, ErrServiceUnavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func codeToHTTPStatus(code string) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeServiceUnavailable, CodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTPError writes err as a plain-text response with the status
// selected by StatusCode.
func WriteHTTPError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	msg := http.StatusText(status)
	if err != nil {
		msg = GetErrorMessage(err)
	}
	http.Error(w, msg, status)
}
