package errors

import "errors"

// IsCacheUnavailable checks if an error indicates that no handle to the
// named cache could be obtained.
func IsCacheUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var cacheErr *CacheUnavailableError
	return errors.As(err, &cacheErr) || errors.Is(err, ErrCacheUnavailable)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Code()
	}

	switch {
	case IsCacheUnavailable(err):
		return CodeCacheUnavailable
	case errors.Is(err, ErrServiceUnavailable):
		return CodeServiceUnavailable
	default:
		return CodeInternal
	}
}

// GetErrorMessage extracts a human-readable message from an error.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Message()
	}

	return err.Error()
}
