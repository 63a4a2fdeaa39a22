package nlp

import (
	"math"
	"testing"

	"github.com/intentd/intentd/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newTrainedClassifier() *Classifier {
	classifier := New("en", true)
	classifier.AddDocument("hi", "greeting")
	classifier.AddDocument("hello", "greeting")
	classifier.AddDocument("bye", "farewell")
	classifier.AddAnswer("greeting", "Hello!")
	classifier.AddAnswer("farewell", "Goodbye!")
	classifier.Train()
	return classifier
}

func TestProcessClassifiesKnownUtterances(t *testing.T) {
	classifier := newTrainedClassifier()

	result := classifier.Process("hello")
	assert.Equal(t, "greeting", result.Intent)
	assert.Equal(t, "Hello!", result.Answer)
	assert.Greater(t, result.Score, 0.5)

	result = classifier.Process("bye")
	assert.Equal(t, "farewell", result.Intent)
	assert.Equal(t, "Goodbye!", result.Answer)
}

func TestProcessIncludesAllClassifications(t *testing.T) {
	classifier := newTrainedClassifier()

	result := classifier.Process("hello")
	assert.Len(t, result.Classifications, 2)
	assert.Equal(t, "greeting", result.Classifications[0].Intent)

	var total float64
	for _, c := range result.Classifications {
		total += c.Score
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestProcessEmptyModelReturnsNone(t *testing.T) {
	classifier := New("en", true)
	classifier.Train()

	result := classifier.Process("hello")
	assert.Equal(t, models.IntentNone, result.Intent)
	assert.Zero(t, result.Score)
	assert.Empty(t, result.Answer)
	assert.Empty(t, result.Classifications)
}

// Utterances may tokenize to nothing ("..." is a valid utterance). A model
// trained only on such documents has an empty vocabulary and must yield the
// None outcome with finite scores, not NaN.
func TestProcessTokenlessTrainingData(t *testing.T) {
	classifier := New("en", true)
	classifier.AddDocument("...", "dots")
	classifier.AddAnswer("dots", "ok")
	classifier.Train()

	result := classifier.Process("hello")
	assert.Equal(t, models.IntentNone, result.Intent)
	assert.Zero(t, result.Score)
	assert.Empty(t, result.Answer)
	assert.Empty(t, result.Classifications)
}

// A tokenless record alongside real ones must not poison scoring.
func TestProcessTokenlessRecordAmongOthers(t *testing.T) {
	classifier := newTrainedClassifier()
	classifier.AddDocument("!!!", "punctuation")
	classifier.AddAnswer("punctuation", "ok")
	classifier.Train()

	result := classifier.Process("hello")
	assert.Equal(t, "greeting", result.Intent)
	assert.False(t, math.IsNaN(result.Score))
	for _, classification := range result.Classifications {
		assert.False(t, math.IsNaN(classification.Score))
	}
}

func TestProcessUnknownTokensReturnNone(t *testing.T) {
	classifier := newTrainedClassifier()

	result := classifier.Process("zebra quantum")
	assert.Equal(t, models.IntentNone, result.Intent)
	assert.Empty(t, result.Answer)
}

func TestProcessEmptyUtteranceReturnsNone(t *testing.T) {
	classifier := newTrainedClassifier()

	result := classifier.Process("")
	assert.Equal(t, models.IntentNone, result.Intent)
}

// The same utterance registered under one intent across multiple records is
// reinforcement, not an error.
func TestDuplicateUtterancesSameIntent(t *testing.T) {
	classifier := New("en", false)
	classifier.AddDocument("hello", "greeting")
	classifier.AddDocument("hello", "greeting")
	classifier.AddDocument("bye", "farewell")
	classifier.AddAnswer("greeting", "Hello!")
	classifier.Train()

	result := classifier.Process("hello")
	assert.Equal(t, "greeting", result.Intent)
}

// A duplicate utterance across different intents must not crash; the
// resulting ambiguity is resolved by scoring.
func TestDuplicateUtterancesAcrossIntents(t *testing.T) {
	classifier := New("en", false)
	classifier.AddDocument("hello", "greeting")
	classifier.AddDocument("hello", "farewell")
	classifier.Train()

	result := classifier.Process("hello")
	assert.Contains(t, []string{"greeting", "farewell"}, result.Intent)
}

// Classification is label-based: registration order must not change the
// winning intent.
func TestRegistrationOrderIndependence(t *testing.T) {
	forward := New("en", false)
	forward.AddDocument("hi", "greeting")
	forward.AddDocument("hello", "greeting")
	forward.AddDocument("bye", "farewell")
	forward.Train()

	reversed := New("en", false)
	reversed.AddDocument("bye", "farewell")
	reversed.AddDocument("hello", "greeting")
	reversed.AddDocument("hi", "greeting")
	reversed.Train()

	assert.Equal(t, forward.Process("hello").Intent, reversed.Process("hello").Intent)
	assert.Equal(t, forward.Process("bye").Intent, reversed.Process("bye").Intent)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Tokenize("Hello, World!"))
	assert.Equal(t, []string{"what", "s", "up"}, Tokenize("what's up?"))
	assert.Equal(t, []string{"room", "42"}, Tokenize("room 42"))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities("email me at bob@example.com or call 555 today")

	assert.Len(t, entities, 2)
	assert.Equal(t, "email", entities[0].Entity)
	assert.Equal(t, "bob@example.com", entities[0].SourceText)
	assert.Equal(t, "number", entities[1].Entity)
	assert.Equal(t, "555", entities[1].SourceText)
}

func TestExtractEntitiesURL(t *testing.T) {
	entities := ExtractEntities("see https://example.com/docs for details")

	assert.Len(t, entities, 1)
	assert.Equal(t, "url", entities[0].Entity)
}

func TestExtractEntitiesNoOverlap(t *testing.T) {
	// The digits inside the email address belong to the email entity only.
	entities := ExtractEntities("write to agent99@example.com")

	assert.Len(t, entities, 1)
	assert.Equal(t, "email", entities[0].Entity)
}

func TestExtractEntitiesNone(t *testing.T) {
	assert.Empty(t, ExtractEntities("plain words only"))
}
