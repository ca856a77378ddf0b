package flickr

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// PublicFeedURL is the endpoint of the public photos feed.
const PublicFeedURL = "https://api.flickr.com/services/feeds/photos_public.gne"

// Client fetches photo feeds over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client for baseURL with the given request timeout.
// An empty baseURL uses PublicFeedURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = PublicFeedURL
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Fetch downloads the feed for tags. Transport failures wrap
// errors.ErrNoConnectivity.
func (c *Client) Fetch(ctx context.Context, tags []string) (*Feed, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.New("flickr.Fetch", errors.KindConfig, fmt.Errorf("invalid feed url: %w", err))
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("nojsoncallback", "1")
	if len(tags) > 0 {
		q.Set("tags", strings.Join(tags, ","))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectivity(err) {
			return nil, errors.New("flickr.Fetch", errors.KindNetwork, fmt.Errorf("%w: %v", errors.ErrNoConnectivity, err))
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("flickr.Fetch", errors.KindNetwork, fmt.Errorf("fetch failed: %s returned %s", u.Redacted(), resp.Status))
	}

	return DecodeFeed(resp.Body)
}

// isConnectivity reports whether err means the network could not be
// reached, as opposed to a cancelled request.
func isConnectivity(err error) bool {
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if stderrors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
