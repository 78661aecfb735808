// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Alias prefixes per route group. A request to any alias produces exactly the
// same response as the same method and suffix path on the other alias.
var (
	hubPrefixes     = []string{"/api/hubs", "/hubs"}
	messagePrefixes = []string{"/api/messages", "/messages"}
	adopterPrefixes = []string{"/api/adopters", "/adopters"}
	dogPrefixes     = []string{"/api/dogs", "/dogs"}
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the recoverPanic and rateLimit middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → router
//
// Endpoints per hub prefix (/api/hubs and /hubs):
//
//	GET    {p}               – list hubs (name filter, pagination, sorting)
//	POST   {p}               – create a new hub
//	GET    {p}/:id           – retrieve a single hub by ID
//	PUT    {p}/:id           – partially update an existing hub
//	DELETE {p}/:id           – delete a hub by ID
//	GET    {p}/:id/messages  – list the messages posted to a hub
//	POST   {p}/:id/messages  – post a new message to a hub
//
// Message IDs are globally unique, so messages are also reachable directly:
//
//	GET /api/messages/:id (and /messages/:id)
//
// The adopter/dog groups mirror the hub/message shape, except that the three
// adopter write endpoints are declared but unimplemented placeholders.
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Static welcome response for the root path.
	router.HandlerFunc(http.MethodGet, "/", app.welcomeHandler)

	// Hub routes, registered once per alias prefix.
	for _, p := range hubPrefixes {
		router.HandlerFunc(http.MethodGet, p, app.listHubsHandler)
		router.HandlerFunc(http.MethodPost, p, app.createHubHandler)
		router.HandlerFunc(http.MethodGet, p+"/:id", app.showHubHandler)
		router.HandlerFunc(http.MethodPut, p+"/:id", app.updateHubHandler)
		router.HandlerFunc(http.MethodDelete, p+"/:id", app.deleteHubHandler)
		router.HandlerFunc(http.MethodGet, p+"/:id/messages", app.listHubMessagesHandler)
		router.HandlerFunc(http.MethodPost, p+"/:id/messages", app.createHubMessageHandler)
	}

	for _, p := range messagePrefixes {
		router.HandlerFunc(http.MethodGet, p+"/:id", app.showMessageHandler)
	}

	// Adopter routes. The create/update/delete handlers are placeholders that
	// always answer 400 {"implemented": false}.
	for _, p := range adopterPrefixes {
		router.HandlerFunc(http.MethodGet, p, app.listAdoptersHandler)
		router.HandlerFunc(http.MethodPost, p, app.createAdopterHandler)
		router.HandlerFunc(http.MethodGet, p+"/:id", app.showAdopterHandler)
		router.HandlerFunc(http.MethodPut, p+"/:id", app.updateAdopterHandler)
		router.HandlerFunc(http.MethodDelete, p+"/:id", app.deleteAdopterHandler)
		router.HandlerFunc(http.MethodGet, p+"/:id/dogs", app.listAdopterDogsHandler)
		router.HandlerFunc(http.MethodPost, p+"/:id/dogs", app.createAdopterDogHandler)
	}

	for _, p := range dogPrefixes {
		router.HandlerFunc(http.MethodGet, p+"/:id", app.showDogHandler)
	}

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from rateLimit and router alike.
	return app.recoverPanic(app.rateLimit(router))
}

// welcomeHandler handles GET / with a static JSON body identifying the service.
func (app *applicationDependencies) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{
		"message":     "Welcome to the Hubs API",
		"environment": app.config.environment,
		"version":     appVersion,
	}

	err := app.writeJSON(w, http.StatusOK, body, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
