// cmd/api/adopters.go
// This file contains the HTTP request handlers for the adopters resource.
// The read endpoints are fully implemented; the three write endpoints are
// declared placeholders that always answer 400 {"implemented": false}.
package main

import (
	"errors"
	"net/http"

	"github.com/nvasquez-dev/hubs-api/internal/data"
	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// listAdoptersHandler handles GET /api/adopters.
// It fetches every adopter and responds with a JSON array.
func (app *applicationDependencies) listAdoptersHandler(w http.ResponseWriter, r *http.Request) {
	adopters, err := app.models.Adopters.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, adopters, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showAdopterHandler handles GET /api/adopters/:id.
// Responds 404 if no adopter with that ID exists.
func (app *applicationDependencies) showAdopterHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	adopter, err := app.models.Adopters.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Adopter")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, adopter, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createAdopterHandler handles POST /api/adopters.
// Declared but unimplemented; it never reaches the database.
func (app *applicationDependencies) createAdopterHandler(w http.ResponseWriter, r *http.Request) {
	app.notImplementedResponse(w, r)
}

// updateAdopterHandler handles PUT /api/adopters/:id.
// Declared but unimplemented; it never reaches the database.
func (app *applicationDependencies) updateAdopterHandler(w http.ResponseWriter, r *http.Request) {
	app.notImplementedResponse(w, r)
}

// deleteAdopterHandler handles DELETE /api/adopters/:id.
// Declared but unimplemented; it never reaches the database.
func (app *applicationDependencies) deleteAdopterHandler(w http.ResponseWriter, r *http.Request) {
	app.notImplementedResponse(w, r)
}

// listAdopterDogsHandler handles GET /api/adopters/:id/dogs.
// It fetches the dogs belonging to the adopter in the :id URL parameter.
// An adopter with no dogs produces a 200 with an empty array on this route
// group; the hub/message group answers 404 for the same case.
func (app *applicationDependencies) listAdopterDogsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dogs, err := app.models.Dogs.GetAllForAdopter(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, dogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createAdopterDogHandler handles POST /api/adopters/:id/dogs.
// It reads a JSON body containing the dog's details, forces the adopter_id to
// the :id from the URL path (overriding any value supplied in the body), and
// inserts the record in a single database round trip.
func (app *applicationDependencies) createAdopterDogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input data.CreateDogInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The URL path is authoritative for the parent reference; input.AdopterID
	// is deliberately discarded.
	dog := &data.Dog{
		AdopterID: id,
		Name:      input.Name,
		Breed:     input.Breed,
	}

	v := validator.New()
	data.ValidateDog(v, dog)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Dogs.Insert(dog)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, dog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
