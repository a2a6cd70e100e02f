package programs

const (
	// selected for every search shape; locations and details are LEFT JOINed
	// so programs without a location row (virtual/statewide) still appear
	querySelectJoined = `
		SELECT
			p.id,
			p.organization_name,
			p.cdc_recognition_status,
			p.mdpp_supplier,
			p.contact_phone,
			p.contact_email,
			p.website_url,
			p.description,
			p.created_at,
			p.updated_at,
			pl.address_line1,
			pl.address_line2,
			pl.city,
			pl.state,
			pl.zip_code,
			pl.latitude,
			pl.longitude,
			pd.delivery_mode,
			pd.language,
			pd.class_schedule,
			pd.duration_weeks,
			pd.cost,
			pd.insurance_accepted,
			pd.max_participants,
			pd.current_participants,
			pd.enrollment_status
		FROM programs p
		LEFT JOIN program_locations pl ON p.id = pl.program_id
		LEFT JOIN program_details pd ON p.id = pd.program_id
	`

	queryOrderByName = ` ORDER BY p.organization_name`

	queryByID = querySelectJoined + ` WHERE p.id = $1`

	queryByNameLike = querySelectJoined + ` WHERE p.organization_name ILIKE $1` + queryOrderByName
)
