package programs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProgramNotFound = errors.New("program not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindByFilter returns all programs matching the resolved location filter,
// ordered by organization name. An unscoped filter returns every program.
func (r *Repository) FindByFilter(ctx context.Context, filter SearchFilter) ([]ProgramRecord, error) {
	resolved := ResolveLocationFilter(filter.ZipCode, filter.State, filter.City)

	query := querySelectJoined
	if resolved.Clause != "" {
		query += resolved.Clause
	}
	query += queryOrderByName

	rows, err := r.db.Query(ctx, query, resolved.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search programs by location: %w", err)
	}
	defer rows.Close()

	return scanPrograms(rows)
}

// FindByID returns a single program with its location and details, or
// ErrProgramNotFound.
func (r *Repository) FindByID(ctx context.Context, id int) (*ProgramRecord, error) {
	rows, err := r.db.Query(ctx, queryByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get program %d: %w", id, err)
	}
	defer rows.Close()

	records, err := scanPrograms(rows)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrProgramNotFound
	}

	return &records[0], nil
}

// FindByNameLike returns programs whose organization name contains the
// substring, case-insensitively, ordered by organization name.
func (r *Repository) FindByNameLike(ctx context.Context, substr string) ([]ProgramRecord, error) {
	rows, err := r.db.Query(ctx, queryByNameLike, "%"+substr+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search programs by name: %w", err)
	}
	defer rows.Close()

	return scanPrograms(rows)
}

// FindAll returns every program, ordered by organization name. Used by the
// embedding index rebuild.
func (r *Repository) FindAll(ctx context.Context) ([]ProgramRecord, error) {
	rows, err := r.db.Query(ctx, querySelectJoined+queryOrderByName)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	return scanPrograms(rows)
}

func scanPrograms(rows pgx.Rows) ([]ProgramRecord, error) {
	var records []ProgramRecord

	for rows.Next() {
		var rec ProgramRecord

		err := rows.Scan(
			&rec.ID,
			&rec.OrganizationName,
			&rec.CDCRecognitionStatus,
			&rec.MDPPSupplier,
			&rec.ContactPhone,
			&rec.ContactEmail,
			&rec.WebsiteURL,
			&rec.Description,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.AddressLine1,
			&rec.AddressLine2,
			&rec.City,
			&rec.State,
			&rec.ZipCode,
			&rec.Latitude,
			&rec.Longitude,
			&rec.DeliveryMode,
			&rec.Language,
			&rec.ClassSchedule,
			&rec.DurationWeeks,
			&rec.Cost,
			&rec.InsuranceAccepted,
			&rec.MaxParticipants,
			&rec.CurrentParticipants,
			&rec.EnrollmentStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program row: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return records, nil
}
