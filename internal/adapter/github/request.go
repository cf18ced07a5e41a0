package github

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	acceptHeader    = "application/vnd.github.v3+json"
	userAgentHeader = "orgrepos"
)

// newRequest builds github api request.
// If token is not empty, it's attached as a bearer credential. Otherwise request is anonymous.
func newRequest(ctx context.Context, method string, url string, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgentHeader)
	if token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}

	return req, nil
}
