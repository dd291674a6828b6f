package entities

import (
	"time"

	"github.com/google/uuid"
)

// LatePassStatus represents the approval state of a late pass
type LatePassStatus string

const (
	LatePassStatusPending  LatePassStatus = "pending"
	LatePassStatusApproved LatePassStatus = "approved"
	LatePassStatusRejected LatePassStatus = "rejected"
)

// IsValid checks if the late pass status is valid
func (s LatePassStatus) IsValid() bool {
	switch s {
	case LatePassStatusPending, LatePassStatusApproved, LatePassStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the late pass has been decided.
func (s LatePassStatus) IsTerminal() bool {
	return s == LatePassStatusApproved || s == LatePassStatusRejected
}

// LatePass represents a resident's request to leave or return outside
// curfew hours on a given date.
type LatePass struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Holder        *User          `json:"holder,omitempty" gorm:"foreignKey:UserID"`
	Reason        string         `json:"reason" gorm:"type:text;not null"`
	DepartureDate time.Time      `json:"departure_date" gorm:"type:date;not null"`
	DepartureTime string         `json:"departure_time" gorm:"type:varchar(10);not null"`
	Status        LatePassStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for LatePass
func (LatePass) TableName() string {
	return "late_passes"
}
