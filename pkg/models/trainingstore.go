package models

import (
	"context"
)

// TrainingStore persists TrainingRecords. Implementations must be safe for
// concurrent use; the store handle is shared process-wide.
type TrainingStore interface {
	// ListAll returns every training record in the store, each annotated
	// with its store-assigned id. Returns an empty slice if the store is
	// empty. Ordering is whatever the store returns.
	ListAll(ctx context.Context) ([]TrainingRecord, error)
	// GetByID retrieves a single training record. Returns a NotFoundError
	// if no record exists for the given id.
	GetByID(ctx context.Context, id string) (*TrainingRecord, error)
	// Create inserts a new record and returns the store-assigned id. The
	// id is not written into the stored document body; it is derived on
	// read.
	Create(ctx context.Context, record *TrainingRecord) (string, error)
	// Update overlays the given record's fields onto the stored document.
	// Fields absent from record are preserved. Creates the document if id
	// does not exist.
	Update(ctx context.Context, id string, record *TrainingRecord) error
	// Delete removes a record. Deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id string) error
	// Close is called when the application is shutting down. This is a good
	// place to clean up any resources used by the TrainingStore
	// implementation.
	Close(ctx context.Context) error
}
