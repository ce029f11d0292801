package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type countingSink struct {
	n atomic.Int32
}

func (s *countingSink) Activity() { s.n.Add(1) }

func newActivityRouter(sink ActivitySink, skip ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Activity(sink, skip...))
	r.GET("/claims", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/forbidden", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	})
	r.POST("/session/stay", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestActivityRecordedPerRequest(t *testing.T) {
	sink := &countingSink{}
	r := newActivityRouter(sink)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/claims", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int32(3), sink.n.Load())
}

func TestActivityRecordedEvenWhenHandlerAborts(t *testing.T) {
	sink := &countingSink{}
	r := newActivityRouter(sink)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forbidden", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int32(1), sink.n.Load(), "an aborted request still counts as activity")
}

func TestActivitySkipsExcludedPaths(t *testing.T) {
	sink := &countingSink{}
	r := newActivityRouter(sink, "/session/stay")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/stay", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(0), sink.n.Load(), "session endpoints never count as activity")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/claims", nil))
	assert.Equal(t, int32(1), sink.n.Load())
}
