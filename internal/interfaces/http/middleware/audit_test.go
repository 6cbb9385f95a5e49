package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediticket/internal/domain/audit"
)

type mockAuditRepository struct {
	entries chan *audit.Entry
	err     error
}

func (m *mockAuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	m.entries <- e
	return m.err
}

func TestAudit_WritesEntryAfterResponse(t *testing.T) {
	repo := &mockAuditRepository{entries: make(chan *audit.Entry, 1)}

	engine := gin.New()
	engine.Use(Audit(repo, noopLogger{}))
	engine.GET("/tickets/onbeantwoord", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/onbeantwoord", nil)
	req.Header.Set("User-Agent", "test-agent")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case entry := <-repo.entries:
		assert.Equal(t, "/tickets/onbeantwoord", entry.Path())
		assert.Equal(t, http.MethodGet, entry.Method())
		assert.Equal(t, "test-agent", entry.UserAgent())
		require.False(t, entry.OccurredAt().IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("expected an audit entry")
	}
}

func TestAudit_WriteFailureDoesNotAffectResponse(t *testing.T) {
	repo := &mockAuditRepository{
		entries: make(chan *audit.Entry, 1),
		err:     errors.New("table locked"),
	}

	engine := gin.New()
	engine.Use(Audit(repo, noopLogger{}))
	engine.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	<-repo.entries
}
