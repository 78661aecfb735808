// cmd/api/testutils_test.go
// Shared helpers for the handler tests. Handlers are exercised through the
// real router and middleware chain, with the database replaced by sqlmock so
// no running PostgreSQL instance is needed.
package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nvasquez-dev/hubs-api/internal/data"
)

// errSentinelDB stands in for an arbitrary database failure. Tests assert its
// text never appears in a response body.
var errSentinelDB = errors.New("pq: connection refused (sentinel)")

// newTestApplication returns an applicationDependencies wired to a sqlmock
// database, plus the mock handle for setting expectations. The logger
// discards output and the rate limiter is disabled so tests only measure
// handler behavior.
func newTestApplication(t *testing.T) (*applicationDependencies, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("creating sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	app := &applicationDependencies{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.NewModels(db),
	}
	app.config.environment = "testing"

	return app, mock
}

// doRequest routes the given request through the full middleware + router
// stack and returns the recorded response.
func doRequest(app *applicationDependencies, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	r := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, r)
	return rr
}

// checkExpectations fails the test if any sqlmock expectation went unmet.
func checkExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

// assertStatus fails the test if the recorded status differs from want.
func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Errorf("got status %d; want %d (body: %s)", rr.Code, want, rr.Body.String())
	}
}
