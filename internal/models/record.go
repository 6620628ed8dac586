package models

import (
	"time"
)

// Record is a single input/output entry submitted by a user. RemainingValue is
// computed once at creation time (input - output) and never recomputed.
// Records are immutable through the exposed interface; they only disappear via
// cascade when their owner is deleted.
type Record struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index"`
	InputValue     float64 `gorm:"not null"`
	OutputValue    float64 `gorm:"not null"`
	RemainingValue float64 `gorm:"not null"`
	Note           string
	CreatedAt      time.Time
}

// RecordWithOwner is the admin read model: a record joined with the identity
// of the user who owns it. Populated by raw select, never written back.
type RecordWithOwner struct {
	RecordID       uint      `gorm:"column:record_id"`
	UserName       string    `gorm:"column:user_name"`
	UserEmail      string    `gorm:"column:user_email"`
	InputValue     float64   `gorm:"column:input_value"`
	OutputValue    float64   `gorm:"column:output_value"`
	RemainingValue float64   `gorm:"column:remaining_value"`
	Note           string    `gorm:"column:note"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}
