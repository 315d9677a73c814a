package intake

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/brokerline/docengine/docs"
)

// ErrNotFound is returned when an intake id does not exist.
var ErrNotFound = errors.New("intake not found")

// ErrDocNotRequired is returned when an upload refers to a document id
// outside the intake's required-document snapshot.
var ErrDocNotRequired = errors.New("document is not in the intake's required list")

// Store manages intake persistence and upload tracking.
type Store interface {
	// Create persists a new intake.
	Create(in *Intake) error

	// Get retrieves an intake by id.
	Get(id string) (*Intake, error)

	// List returns all intakes, newest first.
	List() ([]*Intake, error)

	// Delete removes an intake and its upload records.
	Delete(id string) error

	// MarkUploaded records that a required document has been received.
	// Marking an already-uploaded document is a no-op.
	MarkUploaded(intakeID, docID string) error

	// ClearUploaded removes an upload record.
	ClearUploaded(intakeID, docID string) error

	// UploadedDocIDs returns the uploaded document ids for an intake in
	// lexicographic order.
	UploadedDocIDs(intakeID string) ([]string, error)
}

// InMemoryStore implements Store with an in-memory map. Thread-safe.
type InMemoryStore struct {
	intakes map[string]*Intake
	uploads map[string]map[string]struct{}
	mu      sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory intake store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		intakes: make(map[string]*Intake),
		uploads: make(map[string]map[string]struct{}),
	}
}

// Create persists a new intake. The stored record is a copy, so later
// mutation of the caller's value does not alter the snapshot.
func (s *InMemoryStore) Create(in *Intake) error {
	if in.ID == "" {
		return fmt.Errorf("intake id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.intakes[in.ID]; exists {
		return fmt.Errorf("intake with ID %s already exists", in.ID)
	}

	now := time.Now()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.intakes[in.ID] = cloneIntake(in)
	s.uploads[in.ID] = make(map[string]struct{})
	return nil
}

// Get retrieves an intake by id.
func (s *InMemoryStore) Get(id string) (*Intake, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, exists := s.intakes[id]
	if !exists {
		return nil, fmt.Errorf("intake %s: %w", id, ErrNotFound)
	}
	return cloneIntake(in), nil
}

// List returns all intakes, newest first.
func (s *InMemoryStore) List() ([]*Intake, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Intake, 0, len(s.intakes))
	for _, in := range s.intakes {
		out = append(out, cloneIntake(in))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes an intake and its upload records.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.intakes[id]; !exists {
		return fmt.Errorf("intake %s: %w", id, ErrNotFound)
	}
	delete(s.intakes, id)
	delete(s.uploads, id)
	return nil
}

// MarkUploaded records that a required document has been received.
func (s *InMemoryStore) MarkUploaded(intakeID, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, exists := s.intakes[intakeID]
	if !exists {
		return fmt.Errorf("intake %s: %w", intakeID, ErrNotFound)
	}
	if !in.HasRequiredDoc(docID) {
		return fmt.Errorf("document %s: %w", docID, ErrDocNotRequired)
	}

	s.uploads[intakeID][docID] = struct{}{}
	in.UpdatedAt = time.Now()
	return nil
}

// ClearUploaded removes an upload record.
func (s *InMemoryStore) ClearUploaded(intakeID, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, exists := s.intakes[intakeID]
	if !exists {
		return fmt.Errorf("intake %s: %w", intakeID, ErrNotFound)
	}

	delete(s.uploads[intakeID], docID)
	in.UpdatedAt = time.Now()
	return nil
}

// UploadedDocIDs returns the uploaded document ids in lexicographic
// order.
func (s *InMemoryStore) UploadedDocIDs(intakeID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.intakes[intakeID]; !exists {
		return nil, fmt.Errorf("intake %s: %w", intakeID, ErrNotFound)
	}

	ids := make([]string, 0, len(s.uploads[intakeID]))
	for id := range s.uploads[intakeID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// cloneIntake copies an intake including its slices so stored snapshots
// never share memory with caller-held values.
func cloneIntake(in *Intake) *Intake {
	out := *in
	out.Tags = append([]string(nil), in.Tags...)
	out.RequiredDocs = append([]docs.DocumentRequirement(nil), in.RequiredDocs...)
	out.Answers.IncomeSources = append([]docs.IncomeSource(nil), in.Answers.IncomeSources...)
	out.Answers.OtherIncomeTypes = append([]docs.OtherIncomeType(nil), in.Answers.OtherIncomeTypes...)
	out.Answers.DownPaymentSources = append([]docs.DownPaymentSource(nil), in.Answers.DownPaymentSources...)
	out.Answers.NetWorthAccounts = append([]docs.NetWorthAccount(nil), in.Answers.NetWorthAccounts...)
	out.Answers.OtherPropertiesIsCondo = append([]bool(nil), in.Answers.OtherPropertiesIsCondo...)
	return &out
}
