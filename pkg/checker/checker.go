package checker

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"commsctl/pkg/catalog"

	"github.com/PuerkitoBio/goquery"
)

// LinkStatus holds the outcome of probing a single catalog URL
type LinkStatus struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	PageTitle  string `json:"page_title,omitempty"`
	Err        string `json:"error,omitempty"`
}

// OK reports whether the link resolved with a 200
func (s *LinkStatus) OK() bool {
	return s != nil && s.Err == "" && s.StatusCode == http.StatusOK
}

// Result is the link-check outcome for one lecture entry
type Result struct {
	Lecture   string      `json:"lecture"`
	Slides    *LinkStatus `json:"slides,omitempty"`
	Notebook  *LinkStatus `json:"notebook,omitempty"`
	CheckedAt time.Time   `json:"checked_at"`
}

// OK reports whether every link the entry carries resolved.
func (r Result) OK() bool {
	if r.Slides != nil && !r.Slides.OK() {
		return false
	}
	if r.Notebook != nil && !r.Notebook.OK() {
		return false
	}
	return true
}

// Client probes the catalog's slide-view and notebook URLs
type Client struct {
	httpClient *http.Client

	// NoCache bypasses the on-disk result cache when set
	NoCache bool
}

// NewClient creates a new link checker client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CheckEntry probes the entry's links, serving a recent cached result when
// available. The slide view gets its HTML title extracted so a 200 that is
// actually an error page ("404: Not Found" etc.) is still visible.
func (c *Client) CheckEntry(e catalog.LectureEntry) Result {
	if !c.NoCache {
		if cached, ok := readCache(e); ok {
			return cached
		}
	}

	result := Result{
		Lecture:   e.Title,
		CheckedAt: time.Now(),
	}

	if e.SlidesURL != "" {
		result.Slides = c.checkURL(e.SlidesURL, true)
	}
	if e.NotebookURL != "" {
		result.Notebook = c.checkURL(e.NotebookURL, false)
	}

	writeCache(e, result)

	return result
}

// checkURL fetches the URL and optionally extracts the HTML page title
func (c *Client) checkURL(rawURL string, wantTitle bool) *LinkStatus {
	status := &LinkStatus{URL: rawURL}

	resp, err := c.getWithRetries(rawURL)
	if err != nil {
		status.Err = err.Error()
		return status
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode

	if wantTitle && resp.StatusCode == http.StatusOK {
		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err == nil {
			status.PageTitle = strings.TrimSpace(doc.Find("title").First().Text())
		}
	}

	return status
}

// getWithRetries attempts an HTTP GET request up to 3 times for 502/503/504 responses
func (c *Client) getWithRetries(reqURL string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		// nbviewer occasionally rejects default Go user agents
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

		resp, lastErr = c.httpClient.Do(req)

		if lastErr == nil && (resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if attempt < 2 {
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
		}
	}

	return nil, fmt.Errorf("request failed after 3 attempts: %w", lastErr)
}
