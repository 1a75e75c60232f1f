//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

// EnvGatewayURL points the suite at a running gateway.
const EnvGatewayURL = "CACHEGATE_E2E_URL"

// GetGatewayURL returns the base URL of the gateway under test
func GetGatewayURL() string {
	if u := strings.TrimSpace(os.Getenv(EnvGatewayURL)); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	return "http://localhost:8080"
}

// SkipIfMissingGateway skips the test if the gateway is not accessible
func SkipIfMissingGateway(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if !IsGatewayReady(ctx) {
		t.Skipf("gateway not accessible at %s; tests skipped", GetGatewayURL())
	}
}

// IsGatewayReady checks if the gateway answers the greeting route
func IsGatewayReady(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, GetGatewayURL()+"/hello", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// NewHTTPClient creates an HTTP client for gateway requests
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Get issues GET against the gateway path built from segments, each
// path-escaped, and returns the body and status.
func Get(ctx context.Context, segments ...string) (string, int, error) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u := GetGatewayURL() + "/" + strings.Join(escaped, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := NewHTTPClient(0).Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), resp.StatusCode, nil
}

// GenerateUniqueID generates a unique identifier for test resources
func GenerateUniqueID(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), rand.Intn(10000))
}

// GenerateKey generates a unique cache key
func GenerateKey() string {
	return GenerateUniqueID("e2e_key")
}
