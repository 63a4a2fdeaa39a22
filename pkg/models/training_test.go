package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeRequest(t *testing.T, body string) *TrainingRecordRequest {
	t.Helper()
	var req TrainingRecordRequest
	err := json.Unmarshal([]byte(body), &req)
	assert.NoError(t, err)
	return &req
}

func TestValidateSuccess(t *testing.T) {
	req := decodeRequest(
		t,
		`{"intent":"greeting","utterances":["hi","hello"],"answers":["Hello!"],"extra":"dropped"}`,
	)

	record, err := req.Validate()
	assert.NoError(t, err)
	assert.Equal(t, "greeting", record.Intent)
	assert.Equal(t, []string{"hi", "hello"}, record.Utterances)
	assert.Equal(t, []string{"Hello!"}, record.Answers)
	assert.Empty(t, record.ID)
}

func TestValidateMissingFields(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"no intent", `{"utterances":["hi"],"answers":["yo"]}`, ErrMissingIntent},
		{"empty intent", `{"intent":"","utterances":["hi"],"answers":["yo"]}`, ErrMissingIntent},
		{"no utterances", `{"intent":"greeting","answers":["yo"]}`, ErrMissingUtterances},
		{"null utterances", `{"intent":"greeting","utterances":null,"answers":["yo"]}`, ErrMissingUtterances},
		{"no answers", `{"intent":"greeting","utterances":["hi"]}`, ErrMissingAnswers},
		{"null answers", `{"intent":"greeting","utterances":["hi"],"answers":null}`, ErrMissingAnswers},
		{"empty body", `{}`, ErrMissingIntent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := decodeRequest(t, tc.body)
			record, err := req.Validate()
			assert.Nil(t, record)
			assert.EqualError(t, err, tc.want)

			validationErr := &ValidationError{}
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

// Missing-field checks run in a fixed order: intent, then utterances, then
// answers. The first missing field wins.
func TestValidateMissingFieldOrder(t *testing.T) {
	req := decodeRequest(t, `{"answers":["yo"]}`)
	_, err := req.Validate()
	assert.EqualError(t, err, ErrMissingIntent)

	req = decodeRequest(t, `{"intent":"greeting"}`)
	_, err = req.Validate()
	assert.EqualError(t, err, ErrMissingUtterances)
}

func TestValidateNotArray(t *testing.T) {
	req := decodeRequest(t, `{"intent":"greeting","utterances":"hi","answers":["yo"]}`)
	_, err := req.Validate()
	assert.EqualError(t, err, ErrUtterancesNotArray)

	req = decodeRequest(t, `{"intent":"greeting","utterances":["hi"],"answers":"yo"}`)
	_, err = req.Validate()
	assert.EqualError(t, err, ErrAnswersNotArray)

	// Both wrong: utterances is checked first.
	req = decodeRequest(t, `{"intent":"greeting","utterances":"hi","answers":"yo"}`)
	_, err = req.Validate()
	assert.EqualError(t, err, ErrUtterancesNotArray)
}

// Presence checks precede type checks: a missing answers field is reported
// before a wrongly-typed utterances field is.
func TestValidatePresenceBeforeType(t *testing.T) {
	req := decodeRequest(t, `{"intent":"greeting","utterances":"hi"}`)
	_, err := req.Validate()
	assert.EqualError(t, err, ErrMissingAnswers)
}

func TestValidateEmptyArrays(t *testing.T) {
	req := decodeRequest(t, `{"intent":"greeting","utterances":["hi"],"answers":[]}`)
	_, err := req.Validate()
	assert.EqualError(t, err, ErrAtLeastOneAnswer)

	req = decodeRequest(t, `{"intent":"greeting","utterances":[],"answers":["yo"]}`)
	_, err = req.Validate()
	assert.EqualError(t, err, ErrAtLeastOneUtterance)

	// Both empty: the answers length check runs first.
	req = decodeRequest(t, `{"intent":"greeting","utterances":[],"answers":[]}`)
	_, err = req.Validate()
	assert.EqualError(t, err, ErrAtLeastOneAnswer)
}
