package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/formpipe/formpipe/providers/store"
)

// JobStore is an in-memory, thread-safe implementation of store.Jobs.
// Records are stored and returned by value so callers can never mutate the
// store's copy through a retained pointer.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]store.Job
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]store.Job)}
}

var _ store.Jobs = (*JobStore)(nil)

// Get implements store.Jobs.
func (s *JobStore) Get(_ context.Context, jobID string) (*store.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrJobNotFound, jobID)
	}
	copied := cloneJob(job)
	return &copied, nil
}

// Put implements store.Jobs.
func (s *JobStore) Put(_ context.Context, job *store.Job) error {
	if job == nil || job.ID == "" {
		return fmt.Errorf("job must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = cloneJob(*job)
	return nil
}

// Update implements store.Jobs. The mutation runs under the store lock, so
// concurrent updates to the same job serialize (last write wins).
func (s *JobStore) Update(_ context.Context, jobID string, mutate func(*store.Job)) (*store.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrJobNotFound, jobID)
	}

	mutate(&job)
	job.UpdatedAt = time.Now().UTC()
	s.jobs[jobID] = cloneJob(job)

	copied := cloneJob(job)
	return &copied, nil
}

// cloneJob deep-copies the record's pointer and slice members.
func cloneJob(job store.Job) store.Job {
	if job.IsValid != nil {
		valid := *job.IsValid
		job.IsValid = &valid
	}
	if job.ValidationErrors != nil {
		job.ValidationErrors = append([]string(nil), job.ValidationErrors...)
	}
	return job
}

// object is one stored blob.
type object struct {
	body        []byte
	contentType string
}

// ObjectStore is an in-memory, thread-safe implementation of store.Objects.
type ObjectStore struct {
	mu    sync.RWMutex
	blobs map[string]object
}

// NewObjectStore creates an empty object store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{blobs: make(map[string]object)}
}

var _ store.Objects = (*ObjectStore)(nil)

// Put implements store.Objects.
func (s *ObjectStore) Put(_ context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("object key must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = object{
		body:        append([]byte(nil), body...),
		contentType: contentType,
	}
	return nil
}

// Get implements store.Objects.
func (s *ObjectStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("no object stored under key %s", key)
	}
	return append([]byte(nil), blob.body...), nil
}
