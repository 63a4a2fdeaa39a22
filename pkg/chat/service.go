// Package chat implements the message classification pipeline: fetch the
// training data, build and train an ephemeral classifier, classify one
// message, discard the classifier.
package chat

import (
	"context"
	"fmt"

	"github.com/intentd/intentd/internal"
	"github.com/intentd/intentd/pkg/models"
)

var log = internal.GetLogger()

// Service classifies chat messages against the current training data. The
// classifier is rebuilt and retrained on every call, so results always
// reflect the latest training data. Each call pays the full fetch, build,
// and train cost; there is no cache and no coordination between concurrent
// calls.
type Service struct {
	appState *models.AppState
}

func NewService(appState *models.AppState) *Service {
	return &Service{appState: appState}
}

// Classify runs the full pipeline for one message. The message is passed to
// the engine as-is; an empty message yields the engine's None outcome.
func (s *Service) Classify(
	ctx context.Context,
	message string,
) (*models.ClassificationResult, error) {
	log.Debug("Getting training data")
	records, err := s.appState.TrainingStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch training data: %w", err)
	}

	nlpConfig := s.appState.Config.NLP
	log.Debugf("Training classifier on %d records", len(records))
	classifier := BuildClassifier(records, nlpConfig.Language, nlpConfig.ForceNER)
	log.Debug("Done training")

	return classifier.Process(message), nil
}
