// Package nlp implements the classification engine backing the chat
// pipeline: a multinomial naive Bayes intent classifier over tokenized
// utterances, with regex-based named-entity extraction.
package nlp

import (
	"math"
	"math/rand"
	"sort"

	"github.com/intentd/intentd/pkg/models"
)

type document struct {
	tokens []string
	intent string
}

type intentModel struct {
	logPrior    float64
	tokenCounts map[string]int
	totalTokens int
}

// Classifier is an ephemeral intent classifier. Register training documents
// and answers, call Train, then Process utterances against it. A Classifier
// is built for a single locale and is not safe for concurrent mutation;
// the intended lifecycle is build, train, classify, discard.
type Classifier struct {
	language string
	forceNER bool

	docs    []document
	answers map[string][]string
	// intents in first-registration order, so score ties resolve
	// deterministically
	intents []string

	trained bool
	model   map[string]*intentModel
	vocab   map[string]struct{}
}

// New creates a classifier for the given locale. When forceNER is set,
// Process also runs entity extraction over the utterance.
func New(language string, forceNER bool) *Classifier {
	return &Classifier{
		language: language,
		forceNER: forceNER,
		answers:  make(map[string][]string),
		model:    make(map[string]*intentModel),
		vocab:    make(map[string]struct{}),
	}
}

// AddDocument registers an example utterance for an intent. Registering the
// same utterance again for the same intent reinforces it; registering it
// under a different intent is allowed and leaves disambiguation to scoring.
func (c *Classifier) AddDocument(utterance, intent string) {
	if _, ok := c.model[intent]; !ok {
		c.model[intent] = &intentModel{tokenCounts: make(map[string]int)}
		c.intents = append(c.intents, intent)
	}
	c.docs = append(c.docs, document{tokens: Tokenize(utterance), intent: intent})
	c.trained = false
}

// AddAnswer registers a candidate answer for an intent.
func (c *Classifier) AddAnswer(intent, answer string) {
	c.answers[intent] = append(c.answers[intent], answer)
}

// Train fits the model to the registered documents. Blocking; the model is
// fully fitted when Train returns. Safe to call on an empty classifier.
func (c *Classifier) Train() {
	c.vocab = make(map[string]struct{})
	for intent := range c.model {
		c.model[intent].tokenCounts = make(map[string]int)
		c.model[intent].totalTokens = 0
	}

	for _, doc := range c.docs {
		m := c.model[doc.intent]
		for _, token := range doc.tokens {
			m.tokenCounts[token]++
			m.totalTokens++
			c.vocab[token] = struct{}{}
		}
	}

	totalDocs := len(c.docs)
	docCounts := make(map[string]int, len(c.model))
	for _, doc := range c.docs {
		docCounts[doc.intent]++
	}
	for intent, m := range c.model {
		m.logPrior = math.Log(float64(docCounts[intent]) / float64(totalDocs))
	}

	c.trained = true
}

// Classifications scores an utterance against every trained intent and
// returns the scores in descending order. Scores are normalized posteriors
// summing to 1. Returns an empty slice for an empty model.
func (c *Classifier) Classifications(utterance string) []models.Classification {
	// An empty vocabulary means no document produced any token (for
	// example punctuation-only utterances); there is nothing to score
	// against and the smoothed term below would divide by zero.
	if !c.trained || len(c.intents) == 0 || len(c.vocab) == 0 {
		return []models.Classification{}
	}

	tokens := Tokenize(utterance)
	vocabSize := len(c.vocab)

	logScores := make([]float64, len(c.intents))
	for i, intent := range c.intents {
		m := c.model[intent]
		score := m.logPrior
		for _, token := range tokens {
			// Laplace smoothing keeps unseen tokens from zeroing
			// out an intent
			count := m.tokenCounts[token]
			score += math.Log(float64(count+1) / float64(m.totalTokens+vocabSize))
		}
		logScores[i] = score
	}

	// Normalize in log space to avoid underflow on long utterances
	maxScore := logScores[0]
	for _, s := range logScores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	scores := make([]float64, len(logScores))
	for i, s := range logScores {
		scores[i] = math.Exp(s - maxScore)
		sum += scores[i]
	}

	classifications := make([]models.Classification, len(c.intents))
	for i, intent := range c.intents {
		classifications[i] = models.Classification{
			Intent: intent,
			Score:  scores[i] / sum,
		}
	}
	sort.SliceStable(classifications, func(i, j int) bool {
		return classifications[i].Score > classifications[j].Score
	})
	return classifications
}

// Process classifies an utterance and assembles the full engine result:
// best intent, confidence, per-intent scores, entities, and a randomly
// chosen answer for the winning intent. When the model is empty or no
// utterance token was ever seen in training, the result is the None outcome
// with no answer.
func (c *Classifier) Process(utterance string) *models.ClassificationResult {
	result := &models.ClassificationResult{
		Locale:          c.language,
		Utterance:       utterance,
		Intent:          models.IntentNone,
		Classifications: c.Classifications(utterance),
		Entities:        []models.Entity{},
	}
	if c.forceNER {
		result.Entities = ExtractEntities(utterance)
	}

	if len(result.Classifications) == 0 || !c.anyTokenKnown(utterance) {
		return result
	}

	best := result.Classifications[0]
	result.Intent = best.Intent
	result.Score = best.Score

	if answers := c.answers[best.Intent]; len(answers) > 0 {
		result.Answer = answers[rand.Intn(len(answers))] //nolint:gosec
	}
	return result
}

func (c *Classifier) anyTokenKnown(utterance string) bool {
	for _, token := range Tokenize(utterance) {
		if _, ok := c.vocab[token]; ok {
			return true
		}
	}
	return false
}
