// cmd/api/messages.go
// This file contains the HTTP request handlers for the messages resource:
// the nested listing/creation endpoints under a hub, plus the direct lookup
// endpoint that relies on message IDs being globally unique.
package main

import (
	"errors"
	"net/http"

	"github.com/nvasquez-dev/hubs-api/internal/data"
	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// listHubMessagesHandler handles GET /api/hubs/:id/messages.
// It fetches the messages belonging to the hub in the :id URL parameter.
// A hub with no messages produces a 404 on this route group; the adopter/dog
// group answers 200 for the same case.
func (app *applicationDependencies) listHubMessagesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	messages, err := app.models.Messages.GetAllForHub(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(messages) == 0 {
		app.errorResponse(w, r, http.StatusNotFound, "No messages found for this hub")
		return
	}

	err = app.writeJSON(w, http.StatusOK, messages, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createHubMessageHandler handles POST /api/hubs/:id/messages.
// It reads a JSON body containing the message details, forces the hub_id to
// the :id from the URL path (overriding any value supplied in the body), and
// inserts the record in a single database round trip. The hub's existence is
// not pre-checked; a violated foreign key surfaces as a 500.
func (app *applicationDependencies) createHubMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input data.CreateMessageInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The URL path is authoritative for the parent reference; input.HubID is
	// deliberately discarded.
	message := &data.Message{
		HubID: id,
		From:  input.From,
		Text:  input.Text,
	}

	v := validator.New()
	data.ValidateMessage(v, message)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Messages.Insert(message)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, message, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showMessageHandler handles GET /api/messages/:id.
// Message IDs are globally unique, so the lookup needs no hub context.
// Responds 404 if no message with that ID exists.
func (app *applicationDependencies) showMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	message, err := app.models.Messages.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Message")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, message, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
