package history

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"drawpoker-server/pkg/db"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// PostgresStore keeps results in the game_results table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a store backed by db
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save inserts the result
func (p *PostgresStore) Save(ctx context.Context, result *fivecarddraw.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO game_results (id, session_id, game_number, winner, pot, tied, folded, data, ended)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := p.db.ExecContext(ctx, query,
		result.ID,
		result.SessionID,
		result.GameNumber,
		result.Winner,
		result.Pot,
		result.Tied,
		result.Folded,
		data,
		result.Ended,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateResult
		}

		return err
	}

	return nil
}

// Recent returns up to rows results, most recently ended first
func (p *PostgresStore) Recent(ctx context.Context, rows int) ([]*fivecarddraw.GameResult, error) {
	const query = `
SELECT data
FROM game_results
ORDER BY ended DESC, game_number DESC
LIMIT $1`

	dbRows, err := p.db.QueryContext(ctx, query, clampRows(rows))
	if err != nil {
		return nil, err
	}
	defer dbRows.Close()

	results := make([]*fivecarddraw.GameResult, 0)
	for dbRows.Next() {
		result, err := resultFromRow(dbRows)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, dbRows.Err()
}

func resultFromRow(row db.Scanner) (*fivecarddraw.GameResult, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		return nil, err
	}

	var result fivecarddraw.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
