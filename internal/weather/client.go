package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// DefaultBaseURL is the XML feed endpoint queried when nothing overrides it.
const DefaultBaseURL = "https://www.google.com/ig/api"

// Client handles the HTTP+XML exchange with the weather feed.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a feed client. WEATHER_BASE_URL overrides the
// endpoint, mainly to point lookups at a fixture server.
func NewClient() *Client {
	baseURL := os.Getenv("WEATHER_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := os.Getenv("WEATHER_USER_AGENT")
	if userAgent == "" {
		userAgent = "gweather/1.0"
	}

	return &Client{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// BuildQuery assembles the request URL for a location. The location is
// trimmed and form-encoded along with the language code and the fixed
// charset parameters. An empty location still yields a well-formed URL;
// the feed's answer for it fails validation downstream.
func (c *Client) BuildQuery(location string, s Settings) string {
	params := url.Values{}
	params.Set("weather", strings.TrimSpace(location))
	params.Set("hl", s.Language)
	params.Set("ie", "utf-8")
	params.Set("oe", "utf-8")
	return c.BaseURL + "?" + params.Encode()
}

// FetchDocument issues a single GET for the prepared URL and parses the
// body into an element tree. Transport errors, non-2xx statuses, and
// unparseable bodies all come back as *FetchError; there is deliberately
// no finer distinction at this stage. No retries.
func (c *Client) FetchDocument(ctx context.Context, requestURL string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "text/xml")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: requestURL, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}
	if doc.Root() == nil {
		return nil, &FetchError{URL: requestURL, Err: fmt.Errorf("response body has no document element")}
	}
	return doc, nil
}
