package testutils

import "github.com/intentd/intentd/pkg/models"

var TestTrainingRecords = []models.TrainingRecord{
	{
		Intent:     "greeting",
		Utterances: []string{"hi", "hello"},
		Answers:    []string{"Hello!"},
	},
	{
		Intent:     "farewell",
		Utterances: []string{"bye"},
		Answers:    []string{"Goodbye!"},
	},
}
