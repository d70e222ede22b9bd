package database

import (
	"database/sql"

	"educore-schools/app/models"
)

// GetActiveFeeTemplates returns active, non-deleted templates, optionally
// scoped to one class, ordered by class name.
func GetActiveFeeTemplates(db *sql.DB, className string) ([]models.FeeTemplate, error) {
	query := `SELECT id, class_name, description, amount, due_date, is_active, created_at, updated_at
			  FROM fee_templates
			  WHERE is_active = true AND deleted_at IS NULL`
	var args []interface{}
	if className != "" {
		query += ` AND class_name = $1`
		args = append(args, className)
	}
	query += ` ORDER BY class_name, description`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.FeeTemplate
	for rows.Next() {
		var t models.FeeTemplate
		err := rows.Scan(&t.ID, &t.ClassName, &t.Description, &t.Amount, &t.DueDate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func CreateFeeTemplate(db *sql.DB, t *models.FeeTemplate) error {
	query := `INSERT INTO fee_templates (class_name, description, amount, due_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, t.ClassName, t.Description, t.Amount, t.DueDate).Scan(
		&t.ID, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
}

// DeleteFeeTemplate soft-deletes a template. Obligations generated from it
// are left untouched.
func DeleteFeeTemplate(db *sql.DB, id string) (bool, error) {
	result, err := db.Exec(`UPDATE fee_templates SET deleted_at = NOW(), updated_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeactivateFeeTemplate flags a template inactive so it stops producing new
// obligations without removing it.
func DeactivateFeeTemplate(db *sql.DB, id string) (bool, error) {
	result, err := db.Exec(`UPDATE fee_templates SET is_active = false, updated_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
