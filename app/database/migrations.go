package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. Every
// statement is idempotent so the server can run them on each boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	migrations := []func(*sql.DB) error{
		createAuthTables,
		createSchoolTables,
		createFeeTables,
		addObligationNaturalKey,
	}
	for _, m := range migrations {
		if err := m(db); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAuthTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create auth tables: %v", err)
	}
	return err
}

func createSchoolTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			class_name TEXT,
			gender VARCHAR(10),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_students_class_name ON students(class_name);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create school tables: %v", err)
	}
	return err
}

func createFeeTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS fee_templates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_name TEXT NOT NULL,
			description TEXT NOT NULL,
			amount NUMERIC NOT NULL CHECK (amount >= 0),
			due_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_fee_templates_class ON fee_templates(class_name);

		CREATE TABLE IF NOT EXISTS student_fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			student_name TEXT,
			class_name TEXT,
			description TEXT NOT NULL,
			amount_due NUMERIC NOT NULL CHECK (amount_due >= 0),
			amount_paid NUMERIC NOT NULL DEFAULT 0 CHECK (amount_paid >= 0),
			status TEXT NOT NULL DEFAULT 'Pending',
			due_date DATE,
			payment_date TIMESTAMPTZ,
			payment_reference TEXT,
			payment_method TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_student_fees_class ON student_fees(class_name);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create fee tables: %v", err)
	}
	return err
}

// addObligationNaturalKey enforces the (student_id, description) dedup key
// at the store layer. Generation also checks it client-side, but the index
// is what makes concurrent generation passes safe.
func addObligationNaturalKey(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE tablename = 'student_fees'
				AND indexname = 'idx_student_fees_natural_key'
			) THEN
				CREATE UNIQUE INDEX idx_student_fees_natural_key
					ON student_fees(student_id, description);
				RAISE NOTICE 'Added natural key index to student_fees';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for student_fees natural key: %v", err)
	}
	return err
}
