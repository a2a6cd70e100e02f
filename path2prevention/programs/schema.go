package programs

const (
	schemaPrograms = `
		CREATE TABLE IF NOT EXISTS programs (
			id SERIAL PRIMARY KEY,
			organization_name VARCHAR(255) NOT NULL,
			cdc_recognition_status VARCHAR(100),
			mdpp_supplier BOOLEAN DEFAULT FALSE,
			contact_phone VARCHAR(20),
			contact_email VARCHAR(255),
			website_url TEXT,
			description TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`

	schemaProgramLocations = `
		CREATE TABLE IF NOT EXISTS program_locations (
			id SERIAL PRIMARY KEY,
			program_id INTEGER REFERENCES programs(id) ON DELETE CASCADE,
			address_line1 VARCHAR(255),
			address_line2 VARCHAR(255),
			city VARCHAR(100) NOT NULL,
			state VARCHAR(2) NOT NULL,
			zip_code VARCHAR(10) NOT NULL,
			latitude DECIMAL(10,8),
			longitude DECIMAL(11,8),
			created_at TIMESTAMP DEFAULT NOW()
		)`

	schemaProgramDetails = `
		CREATE TABLE IF NOT EXISTS program_details (
			id SERIAL PRIMARY KEY,
			program_id INTEGER REFERENCES programs(id) ON DELETE CASCADE,
			delivery_mode VARCHAR(50),
			language VARCHAR(50) DEFAULT 'English',
			class_schedule TEXT,
			duration_weeks INTEGER,
			cost DECIMAL(10,2),
			insurance_accepted TEXT[],
			max_participants INTEGER,
			current_participants INTEGER DEFAULT 0,
			enrollment_status VARCHAR(20) DEFAULT 'open',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`

	insertProgramQuery = `
		INSERT INTO programs (
			organization_name,
			cdc_recognition_status,
			mdpp_supplier,
			contact_phone,
			contact_email,
			website_url,
			description
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	insertLocationQuery = `
		INSERT INTO program_locations (
			program_id,
			address_line1,
			address_line2,
			city,
			state,
			zip_code,
			latitude,
			longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	insertDetailsQuery = `
		INSERT INTO program_details (
			program_id,
			delivery_mode,
			language,
			class_schedule,
			duration_weeks,
			cost,
			insurance_accepted,
			max_participants,
			current_participants,
			enrollment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	deleteAllProgramsQuery = `DELETE FROM programs`

	countProgramsQuery = `SELECT COUNT(*) FROM programs`
)
