package chat

import (
	"context"
	"testing"

	"github.com/intentd/intentd/pkg/models"
	"github.com/intentd/intentd/pkg/store/memory"
	"github.com/intentd/intentd/pkg/testutils"
	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T, records []models.TrainingRecord) *Service {
	t.Helper()
	trainingStore := memory.NewTrainingStore()
	for i := range records {
		_, err := trainingStore.Create(context.Background(), &records[i])
		assert.NoError(t, err)
	}

	appState := &models.AppState{
		TrainingStore: trainingStore,
		Config:        testutils.NewTestConfig(),
	}
	return NewService(appState)
}

func TestClassifyEndToEnd(t *testing.T) {
	service := newTestService(t, testutils.TestTrainingRecords)

	result, err := service.Classify(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "greeting", result.Intent)
	assert.Equal(t, "Hello!", result.Answer)

	result, err = service.Classify(context.Background(), "bye")
	assert.NoError(t, err)
	assert.Equal(t, "farewell", result.Intent)
	assert.Equal(t, "Goodbye!", result.Answer)
}

func TestClassifyEmptyTrainingData(t *testing.T) {
	service := newTestService(t, nil)

	result, err := service.Classify(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, models.IntentNone, result.Intent)
	assert.Empty(t, result.Answer)
}

func TestClassifyEmptyMessage(t *testing.T) {
	service := newTestService(t, testutils.TestTrainingRecords)

	// An empty message is passed straight to the engine
	result, err := service.Classify(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, models.IntentNone, result.Intent)
}

// The classifier is rebuilt per call, so new training data is picked up
// immediately.
func TestClassifySeesLatestTrainingData(t *testing.T) {
	service := newTestService(t, testutils.TestTrainingRecords)

	result, err := service.Classify(context.Background(), "thanks")
	assert.NoError(t, err)
	assert.Equal(t, models.IntentNone, result.Intent)

	_, err = service.appState.TrainingStore.Create(context.Background(), &models.TrainingRecord{
		Intent:     "gratitude",
		Utterances: []string{"thanks", "thank you"},
		Answers:    []string{"You're welcome!"},
	})
	assert.NoError(t, err)

	result, err = service.Classify(context.Background(), "thanks")
	assert.NoError(t, err)
	assert.Equal(t, "gratitude", result.Intent)
}

func TestBuildClassifierTrainsAllRecords(t *testing.T) {
	classifier := BuildClassifier(testutils.TestTrainingRecords, "en", true)

	result := classifier.Process("hi")
	assert.Equal(t, "greeting", result.Intent)
	assert.Len(t, result.Classifications, 2)
}
