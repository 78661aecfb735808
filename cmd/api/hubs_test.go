// cmd/api/hubs_test.go
package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nvasquez-dev/hubs-api/internal/data"
)

var hubColumns = []string{"hub_id", "name", "created_at", "updated_at"}

func TestShowHub(t *testing.T) {
	app, mock := newTestApplication(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(hubColumns).AddRow(int64(3), "General", now, now))

	rr := doRequest(app, http.MethodGet, "/api/hubs/3", "")

	assertStatus(t, rr, http.StatusOK)

	var hub data.Hub
	if err := json.Unmarshal(rr.Body.Bytes(), &hub); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if hub.ID != 3 {
		t.Errorf("got hub_id %d; want 3", hub.ID)
	}
	if hub.Name != "General" {
		t.Errorf("got name %q; want %q", hub.Name, "General")
	}

	checkExpectations(t, mock)
}

func TestShowHubNotFound(t *testing.T) {
	app, mock := newTestApplication(t)

	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(hubColumns))

	rr := doRequest(app, http.MethodGet, "/api/hubs/999", "")

	assertStatus(t, rr, http.StatusNotFound)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if body.Message != "Hub not found" {
		t.Errorf("got message %q; want %q", body.Message, "Hub not found")
	}

	checkExpectations(t, mock)
}

func TestShowHubInvalidID(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := doRequest(app, http.MethodGet, "/api/hubs/abc", "")

	assertStatus(t, rr, http.StatusBadRequest)
}

func TestListHubs(t *testing.T) {
	app, mock := newTestApplication(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WillReturnRows(sqlmock.NewRows(hubColumns).
			AddRow(int64(1), "General", now, now).
			AddRow(int64(2), "Random", now, now))

	rr := doRequest(app, http.MethodGet, "/api/hubs", "")

	assertStatus(t, rr, http.StatusOK)

	// The collection endpoint responds with a bare JSON array.
	var hubs []data.Hub
	if err := json.Unmarshal(rr.Body.Bytes(), &hubs); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if len(hubs) != 2 {
		t.Errorf("got %d hubs; want 2", len(hubs))
	}

	checkExpectations(t, mock)
}

func TestListHubsBadPagination(t *testing.T) {
	app, _ := newTestApplication(t)

	// Out-of-range pagination must be rejected without a database call.
	rr := doRequest(app, http.MethodGet, "/api/hubs?page=0", "")

	assertStatus(t, rr, http.StatusUnprocessableEntity)
}

func TestCreateHub(t *testing.T) {
	app, mock := newTestApplication(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO hubs").
		WithArgs("General").
		WillReturnRows(sqlmock.NewRows([]string{"hub_id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	rr := doRequest(app, http.MethodPost, "/api/hubs", `{"name": "General"}`)

	assertStatus(t, rr, http.StatusCreated)

	var hub data.Hub
	if err := json.Unmarshal(rr.Body.Bytes(), &hub); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if hub.ID != 1 {
		t.Errorf("got hub_id %d; want 1", hub.ID)
	}

	checkExpectations(t, mock)
}

func TestCreateHubValidation(t *testing.T) {
	app, mock := newTestApplication(t)

	// A missing name must be rejected before any database call; no
	// expectations are registered, so a query here would fail the test.
	rr := doRequest(app, http.MethodPost, "/api/hubs", `{"name": ""}`)

	assertStatus(t, rr, http.StatusUnprocessableEntity)
	checkExpectations(t, mock)
}

func TestCreateHubMalformedBody(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := doRequest(app, http.MethodPost, "/api/hubs", `{"name": `)

	assertStatus(t, rr, http.StatusBadRequest)
}

func TestUpdateHub(t *testing.T) {
	app, mock := newTestApplication(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(hubColumns).AddRow(int64(1), "General", now, now))
	mock.ExpectQuery("UPDATE hubs").
		WithArgs("Renamed", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	rr := doRequest(app, http.MethodPut, "/api/hubs/1", `{"name": "Renamed"}`)

	assertStatus(t, rr, http.StatusOK)

	var hub data.Hub
	if err := json.Unmarshal(rr.Body.Bytes(), &hub); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if hub.Name != "Renamed" {
		t.Errorf("got name %q; want %q", hub.Name, "Renamed")
	}

	checkExpectations(t, mock)
}

func TestUpdateHubNotFound(t *testing.T) {
	app, mock := newTestApplication(t)

	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(hubColumns))

	rr := doRequest(app, http.MethodPut, "/api/hubs/42", `{"name": "Renamed"}`)

	assertStatus(t, rr, http.StatusNotFound)
	checkExpectations(t, mock)
}

func TestDeleteHub(t *testing.T) {
	app, mock := newTestApplication(t)

	mock.ExpectExec("DELETE FROM hubs").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rr := doRequest(app, http.MethodDelete, "/api/hubs/1", "")

	assertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "hub successfully deleted") {
		t.Errorf("confirmation message missing from body: %s", rr.Body.String())
	}

	checkExpectations(t, mock)
}

func TestDeleteHubNotFound(t *testing.T) {
	app, mock := newTestApplication(t)

	mock.ExpectExec("DELETE FROM hubs").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rr := doRequest(app, http.MethodDelete, "/api/hubs/42", "")

	assertStatus(t, rr, http.StatusNotFound)
	checkExpectations(t, mock)
}

func TestShowHubDatabaseErrorIsNotLeaked(t *testing.T) {
	app, mock := newTestApplication(t)

	mock.ExpectQuery("SELECT (.+) FROM hubs").
		WithArgs(int64(1)).
		WillReturnError(errSentinelDB)

	rr := doRequest(app, http.MethodGet, "/api/hubs/1", "")

	assertStatus(t, rr, http.StatusInternalServerError)
	if strings.Contains(rr.Body.String(), errSentinelDB.Error()) {
		t.Errorf("raw database error leaked into response body: %s", rr.Body.String())
	}

	checkExpectations(t, mock)
}

// TestAliasPrefixesAreIdentical verifies that the same route group bound to
// two URL prefixes produces byte-identical responses for the same method and
// suffix path.
func TestAliasPrefixesAreIdentical(t *testing.T) {
	app, mock := newTestApplication(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM hubs").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(hubColumns).AddRow(int64(3), "General", created, created))
	}

	first := doRequest(app, http.MethodGet, "/api/hubs/3", "")
	second := doRequest(app, http.MethodGet, "/hubs/3", "")

	assertStatus(t, first, http.StatusOK)
	assertStatus(t, second, http.StatusOK)

	if first.Body.String() != second.Body.String() {
		t.Errorf("alias prefixes returned different bodies:\n%s\n---\n%s",
			first.Body.String(), second.Body.String())
	}

	checkExpectations(t, mock)
}
