package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	BloodGroup   string     `json:"blood_group,omitempty"`
	Address      string     `json:"address,omitempty"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MedicalHistory is one known condition on a patient's record. Entries feed
// the triage prompt when the patient opts in.
type MedicalHistory struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Condition     string     `json:"condition"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	IsChronic     bool       `json:"is_chronic"`
	CreatedAt     time.Time  `json:"created_at"`
}
