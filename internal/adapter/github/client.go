package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/sirupsen/logrus"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github organization members and their repositories.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	l         logrus.FieldLogger

	perPage         int
	pageConcurrency int
	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string, l logrus.FieldLogger) *Client {
	c := Client{
		doer:      doer,
		address:   strings.TrimSuffix(address, "/"),
		authToken: authToken,
		l:         l,

		perPage:         30,
		pageConcurrency: 4,
		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// OrgMembers returns all members of given organization.
// Pages are fetched one by one, in order.
func (c *Client) OrgMembers(ctx context.Context, org string) ([]app.Member, error) {
	if org == "" {
		return nil, app.InvalidRequestError("organization cannot be empty")
	}

	resp, err := collectSequential[memberResponse](ctx, c, "/orgs/"+url.PathEscape(org)+"/members")
	if err != nil {
		return nil, err
	}
	c.l.Debugf("loaded %d members of %s", len(resp), org)

	return membersResponse(resp).ToMembers(), nil
}

// UserRepositories returns all repositories of given user.
// Pages are fetched concurrently. If any page fails, no repositories are returned.
func (c *Client) UserRepositories(ctx context.Context, login string) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("user login cannot be empty")
	}

	resp, err := collectConcurrent[repositoryResponse](ctx, c, "/users/"+url.PathEscape(login)+"/repos")
	if err != nil {
		return nil, err
	}
	c.l.Debugf("loaded %d repositories of %s", len(resp), login)

	return repositoriesResponse(resp).ToRepositories(), nil
}

// lastPage probes resource with HEAD request and returns its page count.
// Resource without Link header fits on a single page.
func (c *Client) lastPage(ctx context.Context, path string) (int, error) {
	u, err := c.pageURL(path, 0)
	if err != nil {
		return 0, err
	}
	req, err := newRequest(ctx, http.MethodHead, u, c.authToken)
	if err != nil {
		return 0, err
	}

	_, header, err := c.makeRequest(req, 0)
	if err != nil {
		return 0, fmt.Errorf("resolving page count of %s: %w", path, err)
	}

	links := header.Values("Link")
	if len(links) == 0 {
		return 1, nil
	}

	return parseLastPage(strings.Join(links, ", "))
}

// fetchPage returns single page of given resource, decoded as list of T.
func fetchPage[T record](ctx context.Context, c *Client, path string, page int) ([]T, error) {
	u, err := c.pageURL(path, page)
	if err != nil {
		return nil, err
	}
	req, err := newRequest(ctx, http.MethodGet, u, c.authToken)
	if err != nil {
		return nil, err
	}

	body, _, err := c.makeRequest(req, c.responseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d of %s: %w", page, path, err)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &app.DecodeError{Err: fmt.Errorf("page %d of %s: %w", page, path, err)}
	}
	if items == nil {
		return nil, &app.DecodeError{Err: fmt.Errorf("page %d of %s: expected json array", page, path)}
	}
	for i, item := range items {
		if err := item.validate(); err != nil {
			return nil, &app.DecodeError{Err: fmt.Errorf("page %d of %s, item %d: %w", page, path, i, err)}
		}
	}

	return items, nil
}

func (c *Client) pageURL(path string, page int) (string, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = v.Encode()

	return u.String(), nil
}

// makeRequest executes request and returns its body, up to maxBytes, and headers.
// Non 2xx responses result with app.HTTPStatusError.
func (c *Client) makeRequest(req *http.Request, maxBytes int) ([]byte, http.Header, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, resp.Header, &app.HTTPStatusError{
			StatusCode:  resp.StatusCode,
			URL:         req.URL.String(),
			RateLimited: c.checkRateLimitExceeded(&resp.Header),
		}
	}
	if maxBytes <= 0 {
		return nil, resp.Header, nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, resp.Header, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, resp.Header, &app.DecodeError{Err: errors.New("response body too large")}
	}

	return b, resp.Header, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
