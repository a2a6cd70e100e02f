package programs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"codeberg.org/path2prevention/server/internal/logger"
)

// ProgramSeed is the JSON shape consumed by the ingester. A program may
// carry multiple locations and at most one details block.
type ProgramSeed struct {
	OrganizationName     string         `json:"organization_name"`
	CDCRecognitionStatus *string        `json:"cdc_recognition_status,omitempty"`
	MDPPSupplier         bool           `json:"mdpp_supplier"`
	ContactPhone         *string        `json:"contact_phone,omitempty"`
	ContactEmail         *string        `json:"contact_email,omitempty"`
	WebsiteURL           *string        `json:"website_url,omitempty"`
	Description          *string        `json:"description,omitempty"`
	Locations            []LocationSeed `json:"locations,omitempty"`
	Details              *DetailsSeed   `json:"details,omitempty"`
}

type LocationSeed struct {
	AddressLine1 *string  `json:"address_line1,omitempty"`
	AddressLine2 *string  `json:"address_line2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type DetailsSeed struct {
	DeliveryMode        *string  `json:"delivery_mode,omitempty"`
	Language            string   `json:"language"`
	ClassSchedule       *string  `json:"class_schedule,omitempty"`
	DurationWeeks       *int     `json:"duration_weeks,omitempty"`
	Cost                *float64 `json:"cost,omitempty"`
	InsuranceAccepted   []string `json:"insurance_accepted,omitempty"`
	MaxParticipants     *int     `json:"max_participants,omitempty"`
	CurrentParticipants int      `json:"current_participants"`
	EnrollmentStatus    string   `json:"enrollment_status"`
}

// creates the programs tables if they do not already exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	for _, ddl := range []string{schemaPrograms, schemaProgramLocations, schemaProgramDetails} {
		if _, err := r.db.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// deletes all programs; location and detail rows cascade
func (r *Repository) ClearAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, deleteAllProgramsQuery)
	if err != nil {
		return fmt.Errorf("failed to clear programs: %w", err)
	}

	return nil
}

// returns the total number of programs in the database
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, countProgramsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count programs: %w", err)
	}

	return count, nil
}

// inserts every seed in a single transaction. Parent rows are inserted
// one at a time because child rows need the generated ids; all location
// and detail rows then go through one batch.
func (r *Repository) InsertSeedBatch(ctx context.Context, seeds []ProgramSeed) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}
	queued := 0

	for i, seed := range seeds {
		if seed.OrganizationName == "" {
			return fmt.Errorf("seed %d has no organization_name", i)
		}

		var programID int
		err := tx.QueryRow(ctx, insertProgramQuery,
			seed.OrganizationName,
			seed.CDCRecognitionStatus,
			seed.MDPPSupplier,
			seed.ContactPhone,
			seed.ContactEmail,
			seed.WebsiteURL,
			seed.Description,
		).Scan(&programID)

		if err != nil {
			return fmt.Errorf("failed to insert program %q: %w", seed.OrganizationName, err)
		}

		for _, loc := range seed.Locations {
			batch.Queue(insertLocationQuery,
				programID,
				loc.AddressLine1,
				loc.AddressLine2,
				loc.City,
				loc.State,
				loc.ZipCode,
				loc.Latitude,
				loc.Longitude,
			)
			queued++
		}

		if seed.Details != nil {
			d := seed.Details

			language := d.Language
			if language == "" {
				language = "English"
			}

			status := d.EnrollmentStatus
			if status == "" {
				status = "open"
			}

			batch.Queue(insertDetailsQuery,
				programID,
				d.DeliveryMode,
				language,
				d.ClassSchedule,
				d.DurationWeeks,
				d.Cost,
				d.InsuranceAccepted,
				d.MaxParticipants,
				d.CurrentParticipants,
				status,
			)
			queued++
		}
	}

	if queued > 0 {
		br := tx.SendBatch(ctx, batch)

		for i := range queued {
			if _, err := br.Exec(); err != nil {
				br.Close() //nolint:errcheck,gosec // G104: error path cleanup
				return fmt.Errorf("failed to insert child row %d: %w", i, err)
			}
		}

		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
