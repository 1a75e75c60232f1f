package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCacheUnavailableError(t *testing.T) {
	tests := []struct {
		name          string
		cache         string
		cause         error
		expectedError string
	}{
		{
			name:          "without cause",
			cache:         "greeting-cache",
			expectedError: "cache 'greeting-cache' is not available",
		},
		{
			name:          "with cause",
			cache:         "sessions",
			cause:         errors.New("dial tcp: connection refused"),
			expectedError: "cache 'sessions' is not available: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCacheUnavailableError(tt.cache, tt.cause)
			if err.Error() != tt.expectedError {
				t.Errorf("Expected error %q, got %q", tt.expectedError, err.Error())
			}
			if err.Code() != CodeCacheUnavailable {
				t.Errorf("Expected code %q, got %q", CodeCacheUnavailable, err.Code())
			}
			if err.Cache != tt.cache {
				t.Errorf("Expected cache %q, got %q", tt.cache, err.Cache)
			}
			if !errors.Is(err, ErrCacheUnavailable) {
				t.Error("Expected errors.Is(err, ErrCacheUnavailable)")
			}
			if !errors.Is(err, ErrServiceUnavailable) {
				t.Error("Expected errors.Is(err, ErrServiceUnavailable)")
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Error("Expected cause to be reachable with errors.Is")
			}
		})
	}
}

func TestServiceError(t *testing.T) {
	err := NewServiceError("olric", "", 503, nil)

	if err.Message() != "olric service error" {
		t.Errorf("Expected default message, got %q", err.Message())
	}
	if err.Service != "olric" {
		t.Errorf("Expected service %q, got %q", "olric", err.Service)
	}
	if err.Code() != CodeServiceUnavailable {
		t.Errorf("Expected code %q, got %q", CodeServiceUnavailable, err.Code())
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Expected nil")
		}
	})

	t.Run("plain error", func(t *testing.T) {
		base := errors.New("eof")
		err := Wrap(base, "failed to open dmap")

		var internal *InternalError
		if !errors.As(err, &internal) {
			t.Fatalf("Expected InternalError, got %T", err)
		}
		if !strings.Contains(err.Error(), "failed to open dmap") || !strings.Contains(err.Error(), "eof") {
			t.Errorf("Unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("Expected base error in chain")
		}
	})

	t.Run("typed error keeps code", func(t *testing.T) {
		base := NewCacheUnavailableError("c", nil)
		err := Wrap(base, "put failed")

		if GetErrorCode(err) != CodeCacheUnavailable {
			t.Errorf("Expected code %q, got %q", CodeCacheUnavailable, GetErrorCode(err))
		}
		if !IsCacheUnavailable(err) {
			t.Error("Expected wrapped error to remain cache unavailable")
		}
	})
}
