// Package memory implements an in-memory TrainingStore. It backs the
// "memory" store type and serves as the test double for handler and
// pipeline tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/intentd/intentd/pkg/models"
	"github.com/intentd/intentd/pkg/store"
)

var _ models.TrainingStore = &TrainingStore{}

// TrainingStore keeps training records in a map guarded by a mutex. Records
// are deep-copied on the way in and out so callers cannot alias stored
// state.
type TrainingStore struct {
	mu      sync.RWMutex
	records map[string]*models.TrainingRecord
}

func NewTrainingStore() *TrainingStore {
	return &TrainingStore{
		records: make(map[string]*models.TrainingRecord),
	}
}

func (s *TrainingStore) ListAll(_ context.Context) ([]models.TrainingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	// Map iteration order is random; sort so listing order is stable
	sort.Strings(ids)

	records := make([]models.TrainingRecord, 0, len(ids))
	for _, id := range ids {
		record, err := copyRecord(s.records[id])
		if err != nil {
			return nil, err
		}
		record.ID = id
		records = append(records, *record)
	}
	return records, nil
}

func (s *TrainingStore) GetByID(_ context.Context, id string) (*models.TrainingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.records[id]
	if !ok {
		return nil, models.NewNotFoundError("training record " + id)
	}
	record, err := copyRecord(stored)
	if err != nil {
		return nil, err
	}
	record.ID = id
	return record, nil
}

func (s *TrainingStore) Create(_ context.Context, record *models.TrainingRecord) (string, error) {
	stored, err := copyRecord(record)
	if err != nil {
		return "", err
	}
	stored.ID = ""
	id := strings.ReplaceAll(uuid.New().String(), "-", "")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = stored
	return id, nil
}

func (s *TrainingStore) Update(_ context.Context, id string, record *models.TrainingRecord) error {
	incoming, err := copyRecord(record)
	if err != nil {
		return err
	}
	incoming.ID = ""

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[id]
	if !ok {
		// Merge-write creates missing documents
		s.records[id] = incoming
		return nil
	}

	// Overlay supplied fields onto the stored record, preserving the rest
	if err := mergo.Merge(existing, incoming, mergo.WithOverride); err != nil {
		return store.NewStorageError("failed to merge training record", err)
	}
	return nil
}

func (s *TrainingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Deleting a nonexistent id is a no-op
	delete(s.records, id)
	return nil
}

func (s *TrainingStore) Close(_ context.Context) error {
	return nil
}

func copyRecord(record *models.TrainingRecord) (*models.TrainingRecord, error) {
	out := &models.TrainingRecord{}
	err := copier.CopyWithOption(out, record, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, store.NewStorageError("failed to copy training record", err)
	}
	return out, nil
}
