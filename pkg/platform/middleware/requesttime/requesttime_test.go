package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"residents/pkg/requestcontext"
)

func TestMiddlewareSetsRequestTime(t *testing.T) {
	var seen time.Time
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Now(r.Context())
	}))

	before := time.Now().UTC()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, seen.IsZero())
	assert.False(t, seen.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, seen.Location())
}
