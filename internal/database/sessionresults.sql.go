package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateSessionResults = `-- name: CreateOrUpdateSessionResults :exec
INSERT INTO session_results (
results, session_id)
VALUES ( $1, $2)
ON CONFLICT (session_id)
DO UPDATE SET
    results = EXCLUDED.results,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateSessionResultsParams struct {
	Results   json.RawMessage
	SessionID uuid.UUID
}

func (q *Queries) CreateOrUpdateSessionResults(ctx context.Context, arg CreateOrUpdateSessionResultsParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateSessionResults, arg.Results, arg.SessionID)
	return err
}
