package receipt

// CreateReceiptRequest represents the request to submit a payment receipt
type CreateReceiptRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	PaidOn      string `json:"paid_on" validate:"required,datetime=2006-01-02"`
}

// UpdateReceiptStatusRequest approves or rejects a submitted receipt
type UpdateReceiptStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
