// cmd/api/hubs.go
// This file contains the HTTP request handlers for the hubs resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and database models.
package main

import (
	"errors"
	"net/http"

	"github.com/nvasquez-dev/hubs-api/internal/data"
	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// listHubsHandler handles GET /api/hubs.
// It reads the optional name filter plus pagination and sorting parameters
// from the query string and responds with a JSON array of matching hubs.
func (app *applicationDependencies) listHubsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	name := app.readString(qs, "name", "")

	filters := data.Filters{
		Page:         app.readInt(qs, "page", 1),
		PageSize:     app.readInt(qs, "page_size", 100),
		Sort:         app.readString(qs, "sort", "hub_id"),
		SortSafeList: []string{"hub_id", "name", "created_at", "-hub_id", "-name", "-created_at"},
	}

	// Reject out-of-range pagination values before touching the database.
	v := validator.New()
	v.Check(filters.Page > 0, "page", "must be a positive integer")
	v.Check(filters.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(filters.PageSize > 0, "page_size", "must be a positive integer")
	v.Check(filters.PageSize <= 1000, "page_size", "must be a maximum of 1000")
	v.Check(validator.In(filters.Sort, filters.SortSafeList...), "sort", "invalid sort value")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	hubs, err := app.models.Hubs.GetAll(name, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, hubs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createHubHandler handles POST /api/hubs.
// It reads a JSON body containing the new hub's details, validates it, inserts
// a record into the database, and responds with the created hub (including its
// database-assigned ID and timestamps) and a 201 Created status.
func (app *applicationDependencies) createHubHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateHubInput

	// Decode the incoming JSON body into our input struct using the safe readJSON helper.
	// readJSON enforces a 1MB limit, rejects unknown fields, and ensures a single value.
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hub := &data.Hub{
		Name: input.Name,
	}

	// Validate before the insert so malformed input never reaches the database.
	v := validator.New()
	data.ValidateHub(v, hub)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// Persist the hub to the database.
	// Insert() also writes the auto-generated ID and timestamps back into hub.
	err = app.models.Hubs.Insert(hub)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Respond with the fully-populated hub and a 201 Created status.
	err = app.writeJSON(w, http.StatusCreated, hub, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showHubHandler handles GET /api/hubs/:id.
// It parses the :id URL parameter and fetches the matching hub.
// Responds 404 if no hub with that ID exists.
func (app *applicationDependencies) showHubHandler(w http.ResponseWriter, r *http.Request) {
	// readIDParam extracts and validates the :id URL parameter.
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hub, err := app.models.Hubs.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Hub")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, hub, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateHubHandler handles PUT /api/hubs/:id.
// It reads a partial JSON body (UpdateHubInput), fetches the existing hub,
// applies only the non-nil fields from the input, and saves the changes.
// Responds 404 if the hub does not exist.
func (app *applicationDependencies) updateHubHandler(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the :id URL parameter.
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hub, err := app.models.Hubs.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Hub")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Decode the partial update fields from the request body.
	var input data.UpdateHubInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Apply only the fields that were actually provided in the request body.
	// Each field is a pointer; nil means "not provided, leave as-is".
	if input.Name != nil {
		hub.Name = *input.Name
	}

	v := validator.New()
	data.ValidateHub(v, hub)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// Persist the updated hub back to the database.
	err = app.models.Hubs.Update(hub)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			// The hub was deleted between the fetch and the update.
			app.resourceNotFoundResponse(w, r, "Hub")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Respond with the updated hub.
	err = app.writeJSON(w, http.StatusOK, hub, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteHubHandler handles DELETE /api/hubs/:id.
// It parses the :id URL parameter, deletes the matching record from the database,
// and responds with a confirmation message.
// Responds 404 if no hub with that ID exists.
func (app *applicationDependencies) deleteHubHandler(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the :id URL parameter.
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Delete the hub from the database.
	err = app.models.Hubs.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Hub")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Respond with a success message.
	err = app.writeJSON(w, http.StatusOK, map[string]string{"message": "hub successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
