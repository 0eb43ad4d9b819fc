package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type RSVPRepository interface {
	// CreateRSVP stores the RSVP unless the event already holds seats RSVPs.
	CreateRSVP(ctx context.Context, input RSVP, seats int) (RSVP, error)
	CountRSVPs(ctx context.Context, eventID string) (int, error)
	// CountRSVPsByEvent returns stored RSVPs per event id. Events without
	// RSVPs are absent from the map.
	CountRSVPsByEvent(ctx context.Context) (map[string]int, error)
}

type postgresRSVPRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRSVPRepository(pool *pgxpool.Pool) RSVPRepository {
	return &postgresRSVPRepository{pool: pool}
}

func (r *postgresRSVPRepository) CreateRSVP(ctx context.Context, input RSVP, seats int) (RSVP, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return RSVP{}, fmt.Errorf("begin rsvp tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialises RSVPs per event so the seat check and the insert agree.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", input.EventID); err != nil {
		return RSVP{}, fmt.Errorf("lock event: %w", err)
	}

	var taken int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM rsvps WHERE event_id = $1", input.EventID).Scan(&taken); err != nil {
		return RSVP{}, fmt.Errorf("count rsvps: %w", err)
	}
	if taken >= seats {
		return RSVP{}, ErrEventFull
	}

	query := `INSERT INTO rsvps (id, event_id, first_name, last_name, email, company, role, is_investor, fund_name, dietary_restrictions, questions, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
              RETURNING created_at`

	created := input
	err = tx.QueryRow(ctx, query,
		input.ID, input.EventID, input.FirstName, input.LastName, input.Email,
		input.Company, input.Role, input.IsInvestor, input.FundName,
		input.DietaryRestrictions, input.Questions,
	).Scan(&created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return RSVP{}, ErrAlreadyRegistered
		}
		return RSVP{}, fmt.Errorf("insert rsvp: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return RSVP{}, fmt.Errorf("commit rsvp: %w", err)
	}
	return created, nil
}

func (r *postgresRSVPRepository) CountRSVPs(ctx context.Context, eventID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM rsvps WHERE event_id = $1", eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}
	return n, nil
}

func (r *postgresRSVPRepository) CountRSVPsByEvent(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, "SELECT event_id, COUNT(*) FROM rsvps GROUP BY event_id")
	if err != nil {
		return nil, fmt.Errorf("count rsvps by event: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan rsvp count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count rsvps by event: %w", err)
	}
	return counts, nil
}
