package database

import (
	"database/sql"

	"educore-schools/app/models"
)

func GetStudents(db *sql.DB, className string) ([]models.Student, error) {
	query := `SELECT id, student_id, first_name, last_name, COALESCE(class_name, ''), COALESCE(gender, ''), is_active, created_at, updated_at
			  FROM students
			  WHERE deleted_at IS NULL AND is_active = true`
	var args []interface{}
	if className != "" {
		query += ` AND class_name = $1`
		args = append(args, className)
	}
	query += ` ORDER BY first_name, last_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		var gender string
		err := rows.Scan(&s.ID, &s.StudentID, &s.FirstName, &s.LastName, &s.ClassName, &gender, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		s.Gender = models.Gender(gender)
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	var gender string
	query := `SELECT id, student_id, first_name, last_name, COALESCE(class_name, ''), COALESCE(gender, ''), is_active, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.StudentID, &s.FirstName, &s.LastName, &s.ClassName, &gender, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = models.Gender(gender)
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_id, first_name, last_name, class_name, gender)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.StudentID, s.FirstName, s.LastName, s.ClassName, string(s.Gender)).Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt,
	)
}

func GetClasses(db *sql.DB) ([]models.Class, error) {
	query := `SELECT c.id, c.name, c.is_active, c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students s WHERE s.class_name = c.name AND s.deleted_at IS NULL AND s.is_active = true)
			  FROM classes c
			  WHERE c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (name) VALUES ($1) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}
