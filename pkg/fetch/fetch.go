// Package fetch retrieves page metadata for bookmarks.
package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/arthur-debert/marks/pkg/errors"
)

// DefaultTimeout bounds a title fetch end to end
const DefaultTimeout = 10 * time.Second

// Fetcher retrieves page titles over HTTP
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the default timeout
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithClient creates a Fetcher using the given HTTP client
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Title fetches the page at url and returns the text of its <title>
// element, whitespace-collapsed. An unreachable page, an error status
// or a missing title all fail with FETCH_FAILED.
func (f *Fetcher) Title(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetchFailed, "invalid url %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetchFailed, "failed to fetch %s", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Newf(errors.ErrFetchFailed, "fetching %s returned status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetchFailed, "failed to parse %s", url)
	}

	title := strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	if title == "" {
		return "", errors.Newf(errors.ErrFetchFailed, "%s has no title", url)
	}
	return title, nil
}
