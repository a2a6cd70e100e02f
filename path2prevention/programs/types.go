package programs

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// ProgramRecord is a program row joined with its primary location and
// details rows. Joined columns may be NULL when a program has no location
// or details row, so they are pointers.
type ProgramRecord struct {
	ID                   int       `json:"id"`
	OrganizationName     string    `json:"organization_name"`
	CDCRecognitionStatus *string   `json:"cdc_recognition_status,omitempty"`
	MDPPSupplier         bool      `json:"mdpp_supplier"`
	ContactPhone         *string   `json:"contact_phone,omitempty"`
	ContactEmail         *string   `json:"contact_email,omitempty"`
	WebsiteURL           *string   `json:"website_url,omitempty"`
	Description          *string   `json:"description,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// program_locations
	AddressLine1 *string  `json:"address_line1,omitempty"`
	AddressLine2 *string  `json:"address_line2,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	ZipCode      *string  `json:"zip_code,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`

	// program_details
	DeliveryMode        *string  `json:"delivery_mode,omitempty"`
	Language            *string  `json:"language,omitempty"`
	ClassSchedule       *string  `json:"class_schedule,omitempty"`
	DurationWeeks       *int     `json:"duration_weeks,omitempty"`
	Cost                *float64 `json:"cost,omitempty"`
	InsuranceAccepted   []string `json:"insurance_accepted,omitempty"`
	MaxParticipants     *int     `json:"max_participants,omitempty"`
	CurrentParticipants *int     `json:"current_participants,omitempty"`
	EnrollmentStatus    *string  `json:"enrollment_status,omitempty"`
}

// SearchFilter carries the location fields of a structured search. Empty
// string means the field was not provided. Radius is a legacy parameter:
// it is accepted throughout the boundary layer but never applied to narrow
// results geographically.
type SearchFilter struct {
	ZipCode string
	State   string
	City    string
	Radius  int
}

// Scoped reports whether at least one location field is present.
func (f SearchFilter) Scoped() bool {
	return f.ZipCode != "" || f.State != "" || f.City != ""
}

// FilterKind identifies which predicate combination a filter resolved to.
type FilterKind string

const (
	FilterStateCityZip FilterKind = "state_city_zip"
	FilterStateCity    FilterKind = "state_city"
	FilterState        FilterKind = "state"
	FilterCity         FilterKind = "city"
	FilterZip          FilterKind = "zip"
	FilterNone         FilterKind = "none"
)

// LocationFilter is a resolved predicate descriptor: the SQL WHERE clause
// fragment (empty for FilterNone) and its positional arguments.
type LocationFilter struct {
	Kind   FilterKind
	Clause string
	Args   []any
}
