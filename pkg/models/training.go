package models

import (
	"bytes"
	"encoding/json"
)

// TrainingRecord is a persisted intent definition: example utterances that
// should map to the intent, and candidate answers for it. ID is assigned by
// the store on create and is only present on reads; it is never stored in
// the document body.
type TrainingRecord struct {
	ID         string   `json:"id,omitempty" bson:"-" yaml:"id,omitempty"`
	Intent     string   `json:"intent" bson:"intent" yaml:"intent"`
	Utterances []string `json:"utterances" bson:"utterances" yaml:"utterances"`
	Answers    []string `json:"answers" bson:"answers" yaml:"answers"`
}

// Validation messages are part of the API contract and must not change.
const (
	ErrMissingIntent         = "Missing 'intent' prop"
	ErrMissingUtterances     = "Missing 'utterances' prop"
	ErrMissingAnswers        = "Missing 'answers' prop"
	ErrUtterancesNotArray    = "Property 'utterances' should be an array"
	ErrAnswersNotArray       = "Property 'answers' should be an array"
	ErrAtLeastOneAnswer      = "There should be at least one answer"
	ErrAtLeastOneUtterance   = "There should be at least one utterance"
)

// TrainingRecordRequest is the wire form of a record submitted for create or
// update. Utterances and Answers are kept raw so validation can distinguish
// a missing field from a wrongly-typed one.
type TrainingRecordRequest struct {
	Intent     string          `json:"intent"`
	Utterances json.RawMessage `json:"utterances"`
	Answers    json.RawMessage `json:"answers"`
}

// Validate checks the request against the training-record shape rules and
// returns the validated record. Check order is fixed: the first violated
// rule determines the message. Extra request fields are dropped. Pure
// function, no side effects.
func (r *TrainingRecordRequest) Validate() (*TrainingRecord, error) {
	if r.Intent == "" {
		return nil, NewValidationError(ErrMissingIntent)
	}
	if rawMissing(r.Utterances) {
		return nil, NewValidationError(ErrMissingUtterances)
	}
	if rawMissing(r.Answers) {
		return nil, NewValidationError(ErrMissingAnswers)
	}

	var utterances []string
	if err := json.Unmarshal(r.Utterances, &utterances); err != nil {
		return nil, NewValidationError(ErrUtterancesNotArray)
	}
	var answers []string
	if err := json.Unmarshal(r.Answers, &answers); err != nil {
		return nil, NewValidationError(ErrAnswersNotArray)
	}

	if len(answers) == 0 {
		return nil, NewValidationError(ErrAtLeastOneAnswer)
	}
	if len(utterances) == 0 {
		return nil, NewValidationError(ErrAtLeastOneUtterance)
	}

	return &TrainingRecord{
		Intent:     r.Intent,
		Utterances: utterances,
		Answers:    answers,
	}, nil
}

// rawMissing reports whether a raw JSON field counts as absent: not present
// in the body at all, or one of the falsy literals the reference API
// treated as missing.
func rawMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
