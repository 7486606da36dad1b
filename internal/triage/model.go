package triage

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency tier assigned to a consultation. Tiers are
// ordered; Critical is highest and is never downgraded once assigned.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Status tracks the admin case-management lifecycle. The triage pipeline
// always creates cases as pending; transitions belong to the casemgmt
// package.
type Status string

const (
	StatusPending          Status = "pending"
	StatusUnderSupervision Status = "under_supervision"
	StatusSolved           Status = "solved"
)

// Consultation is the persisted triage record. Response holds the
// compressed summary, never the full model reply; the full reply only
// exists in the ConsultResult returned to the caller.
type Consultation struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	Symptoms           string     `json:"symptoms"`
	ImagePath          string     `json:"image_path,omitempty"`
	Response           string     `json:"response"`
	Priority           Priority   `json:"priority"`
	FirstAid           string     `json:"first_aid,omitempty"`
	Specialization     string     `json:"recommended_specialization,omitempty"`
	Status             Status     `json:"status"`
	SupervisingAdminID *uuid.UUID `json:"supervising_admin_id,omitempty"`
	SupervisionNotes   string     `json:"supervision_notes,omitempty"`
	UseHistory         bool       `json:"use_history"`
	IsSynced           bool       `json:"is_synced"`
	CreatedOffline     bool       `json:"created_offline"`
	CreatedAt          time.Time  `json:"created_at"`
}

// HistoryEntry is the slice of a patient's medical history the prompt
// composer digests. The triage package does not own history storage.
type HistoryEntry struct {
	Condition string
	Notes     string
	IsChronic bool
}

// Referral is a read-only projection of a doctor record offered to the
// caller alongside the triage result.
type Referral struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Fee            int    `json:"fee,omitempty"`
}

// ConsultRequest is one triage submission. At least one of Symptoms and
// Image must be non-empty.
type ConsultRequest struct {
	Symptoms   string
	Image      []byte
	UseHistory bool
}

// ConsultResult is the caller-facing reply. Response is the full model
// reply, unlike the persisted record.
type ConsultResult struct {
	ID             uuid.UUID  `json:"id"`
	Response       string     `json:"response"`
	Priority       Priority   `json:"priority"`
	FirstAid       string     `json:"first_aid,omitempty"`
	Specialization string     `json:"recommended_specialization,omitempty"`
	Referrals      []Referral `json:"referrals"`
}
