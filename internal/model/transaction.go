package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType enum constants
const (
	TransactionEntry = "ENTRY"
	TransactionExit  = "EXIT"
)

// TransactionStatus enum constants
const (
	TransactionPending   = "PENDING"
	TransactionConfirmed = "CONFIRMED"
	TransactionRejected  = "REJECTED"
)

// Transaction is a single fund entry or exit recorded against a request.
// PENDING moves once to CONFIRMED or REJECTED and never leaves those states.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"request_id"`
	Request          *Request        `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Type             string          `gorm:"type:varchar(10);not null;index" json:"type"` // ENTRY, EXIT
	Amount           decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"`
	TransactionDate  time.Time       `gorm:"not null;index" json:"transaction_date"`
	Description      string          `gorm:"type:text" json:"description"`
	Status           string          `gorm:"type:varchar(20);not null;index" json:"status"`
	ConfirmedBy      string          `gorm:"type:varchar(100)" json:"confirmed_by"`
	ConfirmationDate *time.Time      `json:"confirmation_date"`
	ReferenceNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"reference_number"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func IsValidTransactionType(t string) bool {
	return t == TransactionEntry || t == TransactionExit
}

func IsValidTransactionStatus(s string) bool {
	return s == TransactionPending || s == TransactionConfirmed || s == TransactionRejected
}
