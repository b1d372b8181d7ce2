// Package testutil provides an in-process stand-in for the remote news API.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"social-news-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// rawResponse overrides an endpoint with a fixed status and body.
type rawResponse struct {
	status      int
	body        string
	contentType string
}

// NewsAPI serves GET /api/news and POST /api/link from memory.
type NewsAPI struct {
	mu          sync.Mutex
	news        []models.Link
	newsRaw     *rawResponse
	linkRaw     *rawResponse
	submissions []models.Link
	contentType string

	server *httptest.Server
}

// NewNewsAPI starts a fake news server that is shut down with the test.
func NewNewsAPI(t testing.TB, news ...models.Link) *NewsAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &NewsAPI{news: news}
	api.server = httptest.NewServer(api.Router())
	t.Cleanup(api.server.Close)
	return api
}

// URL is the base URL of the fake server.
func (a *NewsAPI) URL() string {
	return a.server.URL
}

// Router builds the gin engine serving both endpoints.
func (a *NewsAPI) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/news", func(c *gin.Context) {
		a.mu.Lock()
		raw, news := a.newsRaw, append([]models.Link{}, a.news...)
		a.mu.Unlock()

		if raw != nil {
			c.Data(raw.status, raw.contentType, []byte(raw.body))
			return
		}
		c.JSON(http.StatusOK, news)
	})

	r.POST("/api/link", func(c *gin.Context) {
		link := models.Link{
			Title:  c.PostForm("title"),
			URL:    c.PostForm("url"),
			Author: c.PostForm("author"),
		}

		a.mu.Lock()
		a.submissions = append(a.submissions, link)
		a.contentType = c.ContentType()
		raw := a.linkRaw
		if raw == nil {
			a.news = append([]models.Link{link}, a.news...)
		}
		a.mu.Unlock()

		if raw != nil {
			c.Data(raw.status, raw.contentType, []byte(raw.body))
			return
		}
		c.JSON(http.StatusCreated, link)
	})

	return r
}

// FailNews makes GET /api/news answer with status and body.
func (a *NewsAPI) FailNews(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.newsRaw = &rawResponse{status: status, body: body, contentType: "text/html"}
}

// FailSubmit makes POST /api/link answer with status and body.
func (a *NewsAPI) FailSubmit(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.linkRaw = &rawResponse{status: status, body: body, contentType: "text/plain"}
}

// RespondSubmit makes POST /api/link answer with a fixed JSON body.
func (a *NewsAPI) RespondSubmit(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.linkRaw = &rawResponse{status: status, body: body, contentType: "application/json"}
}

// Submissions returns every link posted so far.
func (a *NewsAPI) Submissions() []models.Link {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Link(nil), a.submissions...)
}

// LastContentType is the Content-Type (without parameters) of the last POST.
func (a *NewsAPI) LastContentType() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.contentType
}

// Close stops the server early, e.g. to simulate an unreachable host.
func (a *NewsAPI) Close() {
	a.server.Close()
}
