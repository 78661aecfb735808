// cmd/api/routes_test.go
package main

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestWelcomeRoute(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := doRequest(app, http.MethodGet, "/", "")

	assertStatus(t, rr, http.StatusOK)

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response body: %v", err)
	}
	if body["message"] == "" {
		t.Errorf("welcome body missing message field: %s", rr.Body.String())
	}
	if body["environment"] != "testing" {
		t.Errorf("got environment %q; want %q", body["environment"], "testing")
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := doRequest(app, http.MethodGet, "/api/nonexistent", "")

	assertStatus(t, rr, http.StatusNotFound)

	// The fallback must be JSON, not httprouter's default plain text.
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got Content-Type %q; want application/json", ct)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := doRequest(app, http.MethodDelete, "/api/messages/1", "")

	assertStatus(t, rr, http.StatusMethodNotAllowed)
}
