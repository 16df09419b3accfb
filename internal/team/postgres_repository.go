package team

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository on a single key-value table:
// one row per team id, the full record serialized as a JSONB value.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all stored teams, sorted ascending by name. Sorting happens
// here rather than in SQL so the order is plain byte order regardless of the
// database collation; records with equal names keep a stable relative order.
func (r *PostgresRepository) List(ctx context.Context) ([]Team, error) {
	rows, err := r.pool.Query(ctx, `SELECT record FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		var t Team
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decoding team record: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}

// Upsert persists the record, assigning a fresh uuid id when none is set.
func (r *PostgresRepository) Upsert(ctx context.Context, t *Team) error {
	if t.Token == "" || t.AccountID == "" {
		return ErrInvalidRecord
	}
	if t.ID == "" {
		// Creation: assign an id and fill in the placeholder name.
		// Replacements keep whatever name the caller gave, empty included.
		t.ID = uuid.New().String()
		if t.Name == "" {
			t.Name = DefaultName
		}
	}

	record, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding team record: %w", err)
	}

	query := `
		INSERT INTO teams (id, record)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record`

	if _, err := r.pool.Exec(ctx, query, t.ID, record); err != nil {
		return fmt.Errorf("upserting team: %w", err)
	}

	return nil
}

// Delete removes the record with the given id. The affected-row count is
// ignored: deleting an absent id succeeds.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}
