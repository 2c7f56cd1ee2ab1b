package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned by Jobs implementations when no record exists
// for the requested job id.
var ErrJobNotFound = errors.New("formpipe: job not found")

// Status is the lifecycle state of a job record.
type Status string

const (
	// StatusCreated marks a freshly registered job awaiting content.
	StatusCreated Status = "CREATED"

	// StatusProcessingStructuredData marks a job whose extraction result has
	// been produced and persisted.
	StatusProcessingStructuredData Status = "PROCESSING_STRUCTURED_DATA"

	// StatusValidating marks a job whose result has been validated; the
	// record then carries the validation outcome.
	StatusValidating Status = "VALIDATING"

	// StatusFailed marks a job whose pipeline run ended in an error.
	StatusFailed Status = "FAILED"
)

// Job is one job record. Schema, definitions and pre-filled values are
// stored as the raw documents the caller submitted; the pipeline parses them
// per run.
type Job struct {
	ID               string    `json:"job_id"`
	Status           Status    `json:"status"`
	Modality         string    `json:"modality,omitempty"`
	FormSchema       string    `json:"form_schema,omitempty"`       // JSON/YAML document
	Definitions      string    `json:"definitions,omitempty"`       // free text
	PreFilledValues  string    `json:"pre_filled_values,omitempty"` // JSON object document
	StructuredKey    string    `json:"structured_data_key,omitempty"`
	IsValid          *bool     `json:"is_valid,omitempty"`
	ValidationErrors []string  `json:"validation_errors,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewJob returns a job record with a fresh uuid and creation timestamps.
func NewJob() *Job {
	now := time.Now().UTC()
	return &Job{
		ID:        uuid.NewString(),
		Status:    StatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Jobs is the job-record store collaborator. Writes are last-write-wins per
// job id; implementations must be safe for concurrent use.
type Jobs interface {
	// Get returns the record for jobID, or an error wrapping
	// [ErrJobNotFound] when it does not exist.
	Get(ctx context.Context, jobID string) (*Job, error)

	// Put stores the record, overwriting any existing one with the same id.
	Put(ctx context.Context, job *Job) error

	// Update applies mutate to the stored record under the store's own
	// synchronization and returns the updated copy. UpdatedAt is refreshed
	// by the store.
	Update(ctx context.Context, jobID string, mutate func(*Job)) (*Job, error)
}

// Objects is the blob-store collaborator used for result payloads.
type Objects interface {
	// Put stores body under key, overwriting any existing blob.
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// Get returns the blob stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}
