package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// CourtRepository handles persistence for courts.
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) error
	Update(ctx context.Context, court *domain.Court) error
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context, filter CourtFilter) ([]domain.Court, error)
	ListIDsByCircuit(ctx context.Context, circuitCourtID string) ([]string, error)
}

// CourtFilter defines query params for court listing.
type CourtFilter struct {
	Type     *domain.CourtType
	Active   *bool
	CourtIDs []string
	Limit    int
	Offset   int
}

type courtRepository struct {
	pool *pgxpool.Pool
}

// NewCourtRepository instantiates the repository.
func NewCourtRepository(pool *pgxpool.Pool) CourtRepository {
	return &courtRepository{pool: pool}
}

const courtColumns = `id, name, court_type, location, address, contact_info, description, circuit_court_id, is_active, created_at, updated_at`

func (r *courtRepository) Create(ctx context.Context, court *domain.Court) error {
	const query = `
        INSERT INTO courts (name, court_type, location, address, contact_info, description, circuit_court_id, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		court.Name,
		court.Type,
		court.Location,
		court.Address,
		court.ContactInfo,
		court.Description,
		court.CircuitCourtID,
		court.IsActive,
	).Scan(&court.ID, &court.CreatedAt, &court.UpdatedAt)
}

func (r *courtRepository) Update(ctx context.Context, court *domain.Court) error {
	const query = `
        UPDATE courts
        SET name=$1, court_type=$2, location=$3, address=$4, contact_info=$5, description=$6, circuit_court_id=$7, is_active=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		court.Name,
		court.Type,
		court.Location,
		court.Address,
		court.ContactInfo,
		court.Description,
		court.CircuitCourtID,
		court.IsActive,
		court.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id=$1`

	var court domain.Court
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&court.ID,
		&court.Name,
		&court.Type,
		&court.Location,
		&court.Address,
		&court.ContactInfo,
		&court.Description,
		&court.CircuitCourtID,
		&court.IsActive,
		&court.CreatedAt,
		&court.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *courtRepository) List(ctx context.Context, filter CourtFilter) ([]domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts`
	args := []any{}
	clauses := []string{}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("court_type=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("is_active=$%d", len(args)))
	}
	if filter.CourtIDs != nil {
		args = append(args, filter.CourtIDs)
		clauses = append(clauses, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Court
	for rows.Next() {
		var court domain.Court
		if err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Type,
			&court.Location,
			&court.Address,
			&court.ContactInfo,
			&court.Description,
			&court.CircuitCourtID,
			&court.IsActive,
			&court.CreatedAt,
			&court.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, court)
	}
	return result, rows.Err()
}

func (r *courtRepository) ListIDsByCircuit(ctx context.Context, circuitCourtID string) ([]string, error) {
	const query = `
        SELECT id FROM courts
        WHERE circuit_court_id=$1 AND court_type='magisterial'`

	rows, err := r.pool.Query(ctx, query, circuitCourtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
