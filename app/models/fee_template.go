package models

import "time"

// FeeTemplate is a class-wide definition of a fee line item. Templates are
// never edited in place: admins create them, optionally deactivate them, and
// delete them. Neither deactivation nor deletion touches obligations that
// were already generated from the template.
type FeeTemplate struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassName   string     `json:"class_name" gorm:"not null;index" validate:"required"`
	Description string     `json:"description" gorm:"not null" validate:"required"`
	Amount      float64    `json:"amount" gorm:"not null;type:numeric" validate:"gte=0"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
