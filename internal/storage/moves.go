package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/stickercube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID     int64
	SnapshotID string
	MoveIndex  int
	Token      uint8
	Notation   string
}

// MoveRepository provides access to snapshot move histories.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMoveSQL = `
	INSERT INTO moves (snapshot_id, move_index, token, notation)
	VALUES (?, ?, ?, ?)
`

func insertMoves(tx *sql.Tx, snapshotID string, moves []stickercube.Move, startIndex int) error {
	stmt, err := tx.Prepare(insertMoveSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, move := range moves {
		if !move.Axis.Valid() {
			return fmt.Errorf("move %d: %w: %q", startIndex+i, stickercube.ErrInvalidMove, string(move.Axis))
		}
		if _, err := stmt.Exec(snapshotID, startIndex+i, int(move.Token()), move.Notation()); err != nil {
			return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
		}
	}
	return nil
}

// GetBySnapshot retrieves all moves for a snapshot in order.
func (r *MoveRepository) GetBySnapshot(snapshotID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, snapshot_id, move_index, token, notation
		FROM moves
		WHERE snapshot_id = ?
		ORDER BY move_index
	`, snapshotID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SnapshotID, &m.MoveIndex, &m.Token, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	return moves, nil
}

// ToMoves decodes move records back to moves.
func ToMoves(records []MoveRecord) ([]stickercube.Move, error) {
	moves := make([]stickercube.Move, len(records))
	for i, r := range records {
		m, err := stickercube.MoveFromToken(r.Token)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
