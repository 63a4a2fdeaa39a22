package models

// Classification is one intent's normalized score for an utterance.
type Classification struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

// Entity is a named entity found in an utterance.
type Entity struct {
	Entity     string `json:"entity"`
	SourceText string `json:"sourceText"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// IntentNone is the engine outcome when no trained intent matches an
// utterance, including the empty-model case.
const IntentNone = "None"

// ClassificationResult is the raw engine output for one utterance: the best
// intent with its confidence, the full per-intent score list, any extracted
// entities, and the chosen answer. Answer is empty for the None outcome.
type ClassificationResult struct {
	Locale          string           `json:"locale"`
	Utterance       string           `json:"utterance"`
	Intent          string           `json:"intent"`
	Score           float64          `json:"score"`
	Classifications []Classification `json:"classifications"`
	Entities        []Entity         `json:"entities"`
	Answer          string           `json:"answer,omitempty"`
}

// ClassifyMessageRequest is the body of a chat message request. Message is
// intentionally not validated; an empty message is passed through to the
// engine.
type ClassifyMessageRequest struct {
	Message string `json:"message"`
}

// ClassifyMessageResponse wraps the engine result for the chat endpoint.
type ClassifyMessageResponse struct {
	Response *ClassificationResult `json:"response"`
}

// CreateTrainingRecordResponse returns the store-assigned id of a newly
// created record.
type CreateTrainingRecordResponse struct {
	ID string `json:"id"`
}
