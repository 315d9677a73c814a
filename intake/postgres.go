package intake

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/brokerline/docengine/docs"
)

// PostgresStore implements Store backed by PostgreSQL. Answers, tags,
// and the required-document snapshot are stored as JSONB so the record
// is persisted verbatim; uploads live in their own table keyed by
// (intake_id, doc_id).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed intake store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts a new intake.
func (s *PostgresStore) Create(in *Intake) error {
	if in.ID == "" {
		return fmt.Errorf("intake id must not be empty")
	}

	answersJSON, err := json.Marshal(in.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	tagsJSON, err := json.Marshal(in.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	docsJSON, err := json.Marshal(in.RequiredDocs)
	if err != nil {
		return fmt.Errorf("failed to marshal required docs: %w", err)
	}

	now := time.Now()
	in.CreatedAt = now
	in.UpdatedAt = now

	_, err = s.db.Exec(`
		INSERT INTO intakes (id, client_first_name, client_last_name, client_email,
			client_phone, broker_name, answers, tags, required_docs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, in.ID, in.ClientFirstName, in.ClientLastName, in.ClientEmail,
		in.ClientPhone, in.BrokerName, answersJSON, tagsJSON, docsJSON,
		in.CreatedAt, in.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert intake: %w", err)
	}

	return nil
}

// Get retrieves an intake by id.
func (s *PostgresStore) Get(id string) (*Intake, error) {
	row := s.db.QueryRow(`
		SELECT id, client_first_name, client_last_name, client_email,
			client_phone, broker_name, answers, tags, required_docs, created_at, updated_at
		FROM intakes
		WHERE id = $1
	`, id)

	in, err := scanIntake(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("intake %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get intake: %w", err)
	}

	return in, nil
}

// List returns all intakes, newest first.
func (s *PostgresStore) List() ([]*Intake, error) {
	rows, err := s.db.Query(`
		SELECT id, client_first_name, client_last_name, client_email,
			client_phone, broker_name, answers, tags, required_docs, created_at, updated_at
		FROM intakes
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list intakes: %w", err)
	}
	defer rows.Close()

	var out []*Intake
	for rows.Next() {
		in, err := scanIntake(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intake: %w", err)
		}
		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating intakes: %w", err)
	}

	return out, nil
}

// Delete removes an intake; upload rows cascade.
func (s *PostgresStore) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM intakes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete intake: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("intake %s: %w", id, ErrNotFound)
	}

	return nil
}

// MarkUploaded records that a required document has been received.
func (s *PostgresStore) MarkUploaded(intakeID, docID string) error {
	in, err := s.Get(intakeID)
	if err != nil {
		return err
	}
	if !in.HasRequiredDoc(docID) {
		return fmt.Errorf("document %s: %w", docID, ErrDocNotRequired)
	}

	_, err = s.db.Exec(`
		INSERT INTO intake_uploads (intake_id, doc_id, uploaded_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (intake_id, doc_id) DO NOTHING
	`, intakeID, docID)
	if err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}

	if _, err := s.db.Exec(`UPDATE intakes SET updated_at = NOW() WHERE id = $1`, intakeID); err != nil {
		return fmt.Errorf("failed to touch intake: %w", err)
	}

	return nil
}

// ClearUploaded removes an upload record.
func (s *PostgresStore) ClearUploaded(intakeID, docID string) error {
	if _, err := s.Get(intakeID); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		DELETE FROM intake_uploads WHERE intake_id = $1 AND doc_id = $2
	`, intakeID, docID)
	if err != nil {
		return fmt.Errorf("failed to clear upload: %w", err)
	}

	if _, err := s.db.Exec(`UPDATE intakes SET updated_at = NOW() WHERE id = $1`, intakeID); err != nil {
		return fmt.Errorf("failed to touch intake: %w", err)
	}

	return nil
}

// UploadedDocIDs returns the uploaded document ids in lexicographic
// order.
func (s *PostgresStore) UploadedDocIDs(intakeID string) ([]string, error) {
	if _, err := s.Get(intakeID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT doc_id FROM intake_uploads WHERE intake_id = $1 ORDER BY doc_id
	`, intakeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating uploads: %w", err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIntake(row rowScanner) (*Intake, error) {
	var in Intake
	var answersJSON, tagsJSON, docsJSON []byte

	err := row.Scan(&in.ID, &in.ClientFirstName, &in.ClientLastName, &in.ClientEmail,
		&in.ClientPhone, &in.BrokerName, &answersJSON, &tagsJSON, &docsJSON,
		&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(answersJSON, &in.Answers); err != nil {
		return nil, fmt.Errorf("invalid answers for intake %s: %w", in.ID, err)
	}
	if err := json.Unmarshal(tagsJSON, &in.Tags); err != nil {
		return nil, fmt.Errorf("invalid tags for intake %s: %w", in.ID, err)
	}
	if err := json.Unmarshal(docsJSON, &in.RequiredDocs); err != nil {
		return nil, fmt.Errorf("invalid required docs for intake %s: %w", in.ID, err)
	}
	if in.RequiredDocs == nil {
		in.RequiredDocs = []docs.DocumentRequirement{}
	}

	return &in, nil
}
