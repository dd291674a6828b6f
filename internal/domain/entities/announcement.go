package entities

import (
	"time"

	"github.com/google/uuid"
)

// Announcement represents a notice published by the hostel administration.
type Announcement struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
