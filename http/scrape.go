package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/crawl"
	"github.com/gin-gonic/gin"
)

// scrapeRequest is the body of POST /scrape. Either URL or URLs is set;
// URL wins when both are present.
type scrapeRequest struct {
	URL      string   `json:"url"`
	URLs     []string `json:"urls"`
	MaxPages *int     `json:"max_pages"`
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleScrape(c *gin.Context) {
	var body scrapeRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, mailscout.Errorf(mailscout.EINVALID, "invalid JSON body"))
		return
	}

	reqs, err := body.crawlRequests()
	if err != nil {
		writeError(c, err)
		return
	}

	// A single url yields an object; a urls list yields an array.
	if body.URL != "" {
		result, err := s.crawls.Crawl(c.Request.Context(), reqs[0])
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	results, err := crawl.CrawlAll(c.Request.Context(), s.crawls, reqs, s.config.Concurrency)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// crawlRequests converts the body into validated crawl requests.
func (r *scrapeRequest) crawlRequests() ([]mailscout.CrawlRequest, error) {
	var maxPages int
	if r.MaxPages != nil {
		if *r.MaxPages < 1 {
			return nil, mailscout.Errorf(mailscout.EINVALID, "max_pages must be positive")
		}
		maxPages = *r.MaxPages
	}

	urls := r.URLs
	if r.URL != "" {
		urls = []string{r.URL}
	}
	if len(urls) == 0 {
		return nil, mailscout.Errorf(mailscout.EINVALID, "url missing")
	}

	reqs := make([]mailscout.CrawlRequest, 0, len(urls))
	for _, u := range urls {
		req := mailscout.CrawlRequest{StartURL: u, MaxPages: maxPages}
		if err := req.Validate(); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// writeError renders err as {"error": message} with a status matching its
// application code. Internal errors are recorded on the context so the
// access log carries them, and hidden from the client.
func writeError(c *gin.Context, err error) {
	code, message := mailscout.ErrorCode(err), mailscout.ErrorMessage(err)
	if code == mailscout.EINTERNAL {
		_ = c.Error(err)
	}
	c.JSON(ErrorStatusCode(code), errorResponse{Error: message})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	mailscout.EINVALID:      http.StatusBadRequest,
	mailscout.EUNAUTHORIZED: http.StatusUnauthorized,
	mailscout.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
