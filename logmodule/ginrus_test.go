package logmodule

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGinrus(t *testing.T) {
	var buf bytes.Buffer
	out := log.StandardLogger().Out
	log.SetOutput(&buf)
	defer log.SetOutput(out)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Ginrus("API"))
	router.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ok?type=deaths", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "path=/ok")
	assert.Contains(t, buf.String(), "query=\"type=deaths\"")

	buf.Reset()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "boom")
}
