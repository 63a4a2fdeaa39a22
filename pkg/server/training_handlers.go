package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/intentd/intentd/internal"
	"github.com/intentd/intentd/pkg/models"
)

var log = internal.GetLogger()

// ListTrainingDataHandler godoc
//
//	@Summary	Returns all training records
//	@Tags		training-data
//	@Produce	json
//	@Success	200	{object}	[]models.TrainingRecord
//	@Failure	500	{object}	APIError	"Internal Server Error"
//	@Router		/training-data [get]
func ListTrainingDataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := appState.TrainingStore.ListAll(r.Context())
		if err != nil {
			renderError(w, err)
			return
		}
		if err := encodeJSON(w, records); err != nil {
			renderError(w, err)
			return
		}
	}
}

// GetTrainingDataHandler godoc
//
//	@Summary	Returns a training record by ID
//	@Tags		training-data
//	@Produce	json
//	@Param		trainingDataId	path		string	true	"Training record ID"
//	@Success	200				{object}	models.TrainingRecord
//	@Failure	404				"Not Found"
//	@Failure	500				{object}	APIError	"Internal Server Error"
//	@Router		/training-data/{trainingDataId} [get]
func GetTrainingDataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trainingDataID := chi.URLParam(r, "trainingDataId")

		record, err := appState.TrainingStore.GetByID(r.Context(), trainingDataID)
		if err != nil {
			renderError(w, err)
			return
		}
		if err := encodeJSON(w, record); err != nil {
			renderError(w, err)
			return
		}
	}
}

// CreateTrainingDataHandler godoc
//
//	@Summary	Creates a training record
//	@Tags		training-data
//	@Accept		json
//	@Produce	json
//	@Param		record	body		models.TrainingRecordRequest	true	"Training record"
//	@Success	201		{object}	models.CreateTrainingRecordResponse
//	@Failure	422		{object}	APIError	"Unprocessable Entity"
//	@Failure	500		{object}	APIError	"Internal Server Error"
//	@Router		/training-data [post]
func CreateTrainingDataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.TrainingRecordRequest
		if err := decodeJSON(r, &request); err != nil {
			renderBadRequest(w, err)
			return
		}

		// Validation runs before any store I/O
		record, err := request.Validate()
		if err != nil {
			renderError(w, err)
			return
		}

		id, err := appState.TrainingStore.Create(r.Context(), record)
		if err != nil {
			renderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := encodeJSON(w, models.CreateTrainingRecordResponse{ID: id}); err != nil {
			log.Error(err)
		}
	}
}

// UpdateTrainingDataHandler godoc
//
//	@Summary		Updates a training record
//	@Description	Merge write: supplied fields overlay the stored record. Creates the record if the ID does not exist.
//	@Tags			training-data
//	@Accept			json
//	@Param			trainingDataId	path	string							true	"Training record ID"
//	@Param			record			body	models.TrainingRecordRequest	true	"Training record"
//	@Success		204				"No Content"
//	@Failure		422				{object}	APIError	"Unprocessable Entity"
//	@Failure		500				{object}	APIError	"Internal Server Error"
//	@Router			/training-data/{trainingDataId} [put]
func UpdateTrainingDataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trainingDataID := chi.URLParam(r, "trainingDataId")

		var request models.TrainingRecordRequest
		if err := decodeJSON(r, &request); err != nil {
			renderBadRequest(w, err)
			return
		}

		record, err := request.Validate()
		if err != nil {
			renderError(w, err)
			return
		}

		if err := appState.TrainingStore.Update(r.Context(), trainingDataID, record); err != nil {
			renderError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteTrainingDataHandler godoc
//
//	@Summary		Deletes a training record
//	@Description	Idempotent: deleting a nonexistent ID also returns 204.
//	@Tags			training-data
//	@Param			trainingDataId	path	string	true	"Training record ID"
//	@Success		204				"No Content"
//	@Failure		500				{object}	APIError	"Internal Server Error"
//	@Router			/training-data/{trainingDataId} [delete]
func DeleteTrainingDataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trainingDataID := chi.URLParam(r, "trainingDataId")

		if err := appState.TrainingStore.Delete(r.Context(), trainingDataID); err != nil {
			renderError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
