package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// StaffRepository handles persistence for staff members.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]domain.Staff, error)
}

// StaffFilter defines query params for staff listing.
type StaffFilter struct {
	CourtID   *string
	CourtIDs  []string
	CourtType *domain.CourtType
	Status    *domain.EmploymentStatus
	Limit     int
	Offset    int
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = `id, name, position, court_type, court_id, email, phone, bio, employment_status,
        retirement_date, dismissal_date, leave_start_date, leave_end_date, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff_members (name, position, court_type, court_id, email, phone, bio, employment_status,
            retirement_date, dismissal_date, leave_start_date, leave_end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Position,
		staff.CourtType,
		staff.CourtID,
		staff.Email,
		staff.Phone,
		staff.Bio,
		staff.EmploymentStatus,
		staff.RetirementDate,
		staff.DismissalDate,
		staff.LeaveStartDate,
		staff.LeaveEndDate,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	const query = `
        UPDATE staff_members
        SET name=$1, position=$2, court_type=$3, court_id=$4, email=$5, phone=$6, bio=$7, employment_status=$8,
            retirement_date=$9, dismissal_date=$10, leave_start_date=$11, leave_end_date=$12, updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.Position,
		staff.CourtType,
		staff.CourtID,
		staff.Email,
		staff.Phone,
		staff.Bio,
		staff.EmploymentStatus,
		staff.RetirementDate,
		staff.DismissalDate,
		staff.LeaveStartDate,
		staff.LeaveEndDate,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM staff_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id=$1`

	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Position,
		&staff.CourtType,
		&staff.CourtID,
		&staff.Email,
		&staff.Phone,
		&staff.Bio,
		&staff.EmploymentStatus,
		&staff.RetirementDate,
		&staff.DismissalDate,
		&staff.LeaveStartDate,
		&staff.LeaveEndDate,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context, filter StaffFilter) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members`
	args := []any{}
	clauses := []string{}

	if filter.CourtID != nil {
		args = append(args, *filter.CourtID)
		clauses = append(clauses, fmt.Sprintf("court_id=$%d", len(args)))
	}
	if filter.CourtIDs != nil {
		args = append(args, filter.CourtIDs)
		clauses = append(clauses, fmt.Sprintf("court_id = ANY($%d)", len(args)))
	}
	if filter.CourtType != nil {
		args = append(args, *filter.CourtType)
		clauses = append(clauses, fmt.Sprintf("court_type=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("employment_status=$%d", len(args)))
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

	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Position,
			&staff.CourtType,
			&staff.CourtID,
			&staff.Email,
			&staff.Phone,
			&staff.Bio,
			&staff.EmploymentStatus,
			&staff.RetirementDate,
			&staff.DismissalDate,
			&staff.LeaveStartDate,
			&staff.LeaveEndDate,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}
