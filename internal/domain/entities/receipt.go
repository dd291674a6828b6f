package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptStatus represents the review state of a payment receipt
type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusApproved ReceiptStatus = "approved"
	ReceiptStatusRejected ReceiptStatus = "rejected"
)

// IsValid checks if the receipt status is valid
func (s ReceiptStatus) IsValid() bool {
	switch s {
	case ReceiptStatusPending, ReceiptStatusApproved, ReceiptStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the receipt review is closed.
func (s ReceiptStatus) IsTerminal() bool {
	return s == ReceiptStatusApproved || s == ReceiptStatusRejected
}

// Receipt represents a hostel-fee payment receipt submitted for review.
// The receipt image itself is handled outside this service; only the
// declared payment details are stored here.
type Receipt struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	Payer       *User         `json:"payer,omitempty" gorm:"foreignKey:UserID"`
	Title       string        `json:"title" gorm:"type:varchar(255);not null"`
	Description string        `json:"description" gorm:"type:text"`
	AmountCents int64         `json:"amount_cents" gorm:"not null;check:amount_cents > 0"`
	PaidOn      time.Time     `json:"paid_on" gorm:"type:date;not null"`
	Status      ReceiptStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Receipt
func (Receipt) TableName() string {
	return "receipts"
}
