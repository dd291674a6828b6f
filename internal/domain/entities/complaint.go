package entities

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus represents the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// IsValid checks if the complaint status is valid
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// Complaint represents a maintenance or service complaint filed by a resident.
type Complaint struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Reporter    *User           `json:"reporter,omitempty" gorm:"foreignKey:UserID"`
	Title       string          `json:"title" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Status      ComplaintStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}

// IsResolved checks if the complaint has been closed out
func (c *Complaint) IsResolved() bool {
	return c.Status == ComplaintStatusResolved
}
