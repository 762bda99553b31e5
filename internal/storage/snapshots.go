package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/snapshot"
)

// Snapshot represents a saved cube state in the database.
type Snapshot struct {
	SnapshotID   string
	Name         string
	CreatedAt    time.Time
	ScrambleText *string
	Solved       bool
	State        stickercube.State
}

// Cube rebuilds the saved cube.
func (s *Snapshot) Cube() (stickercube.Cube, error) {
	return s.State.Cube()
}

// SnapshotRepository provides CRUD operations for snapshots.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create saves a state with its move history and returns the new ID.
func (r *SnapshotRepository) Create(name, scramble string, state stickercube.State) (string, error) {
	c, err := state.Cube()
	if err != nil {
		return "", err
	}
	blob, err := snapshot.MarshalCompressed(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO snapshots (snapshot_id, name, created_at, scramble_text, is_solved, state_blob)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, name, createdAt.Format(time.RFC3339), scramblePtr, c.IsSolved(), blob)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		return insertMoves(tx, id, state.Moves, 0)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Append applies moves to a saved snapshot. The state blob, solved flag and
// move rows are rewritten in one transaction so the stored history and the
// moves table stay in step. It returns the updated snapshot.
func (r *SnapshotRepository) Append(snapshotID string, moves []stickercube.Move) (*Snapshot, error) {
	for i, m := range moves {
		if !m.Axis.Valid() {
			return nil, fmt.Errorf("move %d: %w: %q", i, stickercube.ErrInvalidMove, string(m.Axis))
		}
	}

	var updated *Snapshot
	err := r.db.Transaction(func(tx *sql.Tx) error {
		s, err := scanSnapshot(tx.QueryRow(selectSnapshotSQL+"WHERE snapshot_id = ?", snapshotID))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("snapshot %q not found", snapshotID)
		}
		if err != nil {
			return fmt.Errorf("failed to get snapshot: %w", err)
		}

		c, err := s.Cube()
		if err != nil {
			return err
		}
		startIndex := len(s.State.Moves)
		history := append(append([]stickercube.Move(nil), s.State.Moves...), moves...)
		c = c.ApplyMoves(moves...)
		s.State = stickercube.NewState(c, history)
		s.Solved = c.IsSolved()

		blob, err := snapshot.MarshalCompressed(s.State)
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		if _, err := tx.Exec(`
			UPDATE snapshots SET state_blob = ?, is_solved = ? WHERE snapshot_id = ?
		`, blob, s.Solved, snapshotID); err != nil {
			return fmt.Errorf("failed to update snapshot: %w", err)
		}
		if err := insertMoves(tx, snapshotID, moves, startIndex); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

const selectSnapshotSQL = `
	SELECT snapshot_id, name, created_at, scramble_text, is_solved, state_blob
	FROM snapshots
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var s Snapshot
	var createdAtStr string
	var blob []byte

	if err := row.Scan(&s.SnapshotID, &s.Name, &createdAtStr, &s.ScrambleText, &s.Solved, &blob); err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

	state, err := snapshot.UnmarshalCompressed(blob)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.SnapshotID, err)
	}
	s.State = state

	return &s, nil
}

// Get retrieves a snapshot by ID. It returns nil when no snapshot matches.
func (r *SnapshotRepository) Get(snapshotID string) (*Snapshot, error) {
	s, err := scanSnapshot(r.db.QueryRow(selectSnapshotSQL+"WHERE snapshot_id = ?", snapshotID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return s, nil
}

// GetByName retrieves the most recent snapshot with the given name.
func (r *SnapshotRepository) GetByName(name string) (*Snapshot, error) {
	s, err := scanSnapshot(r.db.QueryRow(selectSnapshotSQL+`
		WHERE name = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent snapshot.
func (r *SnapshotRepository) GetLast() (*Snapshot, error) {
	s, err := scanSnapshot(r.db.QueryRow(selectSnapshotSQL + `
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last snapshot: %w", err)
	}
	return s, nil
}

// List retrieves recent snapshots, newest first.
func (r *SnapshotRepository) List(limit int) ([]Snapshot, error) {
	rows, err := r.db.Query(selectSnapshotSQL+`
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	return snapshots, nil
}

// Delete deletes a snapshot and its moves (cascading). It reports whether
// a snapshot was removed.
func (r *SnapshotRepository) Delete(snapshotID string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", snapshotID)
	if err != nil {
		return false, fmt.Errorf("failed to delete snapshot: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return n > 0, nil
}
