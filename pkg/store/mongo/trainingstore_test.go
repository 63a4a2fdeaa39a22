package mongo

import (
	"testing"

	"github.com/intentd/intentd/pkg/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMergeDocumentFullRecord(t *testing.T) {
	doc := mergeDocument(&models.TrainingRecord{
		Intent:     "greeting",
		Utterances: []string{"hi"},
		Answers:    []string{"Hello!"},
	})

	assert.Equal(t, bson.M{
		"intent":     "greeting",
		"utterances": []string{"hi"},
		"answers":    []string{"Hello!"},
	}, doc)
}

// Absent fields stay out of the $set document so a merge write never
// overwrites a stored field with a zero value.
func TestMergeDocumentPartialRecord(t *testing.T) {
	doc := mergeDocument(&models.TrainingRecord{
		Answers: []string{"Hey there!"},
	})

	assert.Equal(t, bson.M{"answers": []string{"Hey there!"}}, doc)

	doc = mergeDocument(&models.TrainingRecord{})
	assert.Empty(t, doc)
}
