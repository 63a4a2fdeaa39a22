package chat

import (
	"github.com/intentd/intentd/pkg/models"
	"github.com/intentd/intentd/pkg/nlp"
)

// BuildClassifier constructs and trains an ephemeral classifier from the
// full set of training records. Every utterance is registered as a training
// example for its record's intent and every answer as a candidate response.
// The returned classifier is fully trained; callers classify against it and
// discard it.
func BuildClassifier(
	records []models.TrainingRecord,
	language string,
	forceNER bool,
) *nlp.Classifier {
	classifier := nlp.New(language, forceNER)

	for _, record := range records {
		for _, utterance := range record.Utterances {
			classifier.AddDocument(utterance, record.Intent)
		}
		for _, answer := range record.Answers {
			classifier.AddAnswer(record.Intent, answer)
		}
	}

	classifier.Train()
	return classifier
}
