package mongo

import (
	"context"
	"errors"

	"github.com/intentd/intentd/pkg/models"
	"github.com/intentd/intentd/pkg/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// trainingDoc is the stored document shape. The id is the Mongo _id; it is
// not duplicated inside the body.
type trainingDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Intent     string             `bson:"intent"`
	Utterances []string           `bson:"utterances"`
	Answers    []string           `bson:"answers"`
}

func (d *trainingDoc) toRecord() models.TrainingRecord {
	return models.TrainingRecord{
		ID:         d.ID.Hex(),
		Intent:     d.Intent,
		Utterances: d.Utterances,
		Answers:    d.Answers,
	}
}

func (s *TrainingStore) ListAll(ctx context.Context) ([]models.TrainingRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStorageError("failed to list training data", err)
	}
	defer cursor.Close(ctx)

	records := []models.TrainingRecord{}
	for cursor.Next(ctx) {
		var doc trainingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, store.NewStorageError("failed to decode training record", err)
		}
		records = append(records, doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, store.NewStorageError("training data cursor failed", err)
	}
	return records, nil
}

func (s *TrainingStore) GetByID(ctx context.Context, id string) (*models.TrainingRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot name an existing document
		return nil, models.NewNotFoundError("training record " + id)
	}

	var doc trainingDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.NewNotFoundError("training record " + id)
	}
	if err != nil {
		return nil, store.NewStorageError("failed to get training record", err)
	}

	record := doc.toRecord()
	return &record, nil
}

func (s *TrainingStore) Create(
	ctx context.Context,
	record *models.TrainingRecord,
) (string, error) {
	doc := trainingDoc{
		Intent:     record.Intent,
		Utterances: record.Utterances,
		Answers:    record.Answers,
	}
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", store.NewStorageError("failed to create training record", err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", store.NewStorageError("unexpected inserted id type", nil)
	}
	return objectID.Hex(), nil
}

func (s *TrainingStore) Update(
	ctx context.Context,
	id string,
	record *models.TrainingRecord,
) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.NewStorageError("invalid training record id", err)
	}

	// $set with upsert gives merge-write semantics: supplied fields
	// overlay the stored document, absent fields are preserved, and a
	// missing document is created.
	doc := mergeDocument(record)
	if len(doc) == 0 {
		// Nothing supplied, nothing to merge; Mongo rejects an empty $set
		return nil
	}
	update := bson.M{"$set": doc}
	_, err = s.collection.UpdateByID(ctx, objectID, update, options.Update().SetUpsert(true))
	if err != nil {
		return store.NewStorageError("failed to update training record", err)
	}
	return nil
}

// mergeDocument builds the $set document for a merge write from the
// record's supplied fields only, so an absent field never overwrites its
// stored counterpart with a zero value.
func mergeDocument(record *models.TrainingRecord) bson.M {
	doc := bson.M{}
	if record.Intent != "" {
		doc["intent"] = record.Intent
	}
	if record.Utterances != nil {
		doc["utterances"] = record.Utterances
	}
	if record.Answers != nil {
		doc["answers"] = record.Answers
	}
	return doc
}

func (s *TrainingStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing to delete; matches the idempotent contract
		return nil
	}

	_, err = s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return store.NewStorageError("failed to delete training record", err)
	}
	return nil
}
