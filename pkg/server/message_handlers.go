package server

import (
	"net/http"

	"github.com/intentd/intentd/pkg/chat"
	"github.com/intentd/intentd/pkg/models"
)

// ClassifyMessageHandler godoc
//
//	@Summary		Classifies a chat message against the current training data
//	@Description	Rebuilds and retrains the classifier from all stored training records on every call.
//	@Tags			message
//	@Accept			json
//	@Produce		json
//	@Param			message	body		models.ClassifyMessageRequest	true	"Chat message"
//	@Success		200		{object}	models.ClassifyMessageResponse
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/message [post]
func ClassifyMessageHandler(appState *models.AppState) http.HandlerFunc {
	service := chat.NewService(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.ClassifyMessageRequest
		if err := decodeJSON(r, &request); err != nil {
			renderBadRequest(w, err)
			return
		}

		// The message itself is not validated; empty messages are the
		// engine's concern
		result, err := service.Classify(r.Context(), request.Message)
		if err != nil {
			renderError(w, err)
			return
		}

		if err := encodeJSON(w, models.ClassifyMessageResponse{Response: result}); err != nil {
			renderError(w, err)
			return
		}
	}
}
