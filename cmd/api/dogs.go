// cmd/api/dogs.go
// This file contains the direct lookup handler for the dogs resource.
// Dog IDs are globally unique, so the lookup needs no adopter context.
package main

import (
	"errors"
	"net/http"

	"github.com/nvasquez-dev/hubs-api/internal/data"
)

// showDogHandler handles GET /api/dogs/:id.
// Responds 404 if no dog with that ID exists.
func (app *applicationDependencies) showDogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dog, err := app.models.Dogs.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Dog")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, dog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
