package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequestStatus enum constants
const (
	RequestPending    = "PENDING"
	RequestAssigned   = "ASSIGNED"
	RequestInProgress = "IN_PROGRESS"
	RequestConfirmed  = "CONFIRMED"
	RequestCompleted  = "COMPLETED"
	RequestCancelled  = "CANCELLED"
)

// RequestStatuses lists the accepted statuses in display order.
var RequestStatuses = []string{
	RequestPending,
	RequestAssigned,
	RequestInProgress,
	RequestConfirmed,
	RequestCompleted,
	RequestCancelled,
}

// Request is a fund movement request that needs a driver and a transporter before confirmation.
// Confirmed is nullable: rows written by older clients may carry NULL, which is not the same as false.
type Request struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RequestNumber    string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"request_number"`
	RequestCode      string          `gorm:"type:varchar(100);not null" json:"request_code"`
	RequestDate      time.Time       `gorm:"not null;index" json:"request_date"`
	Culture          string          `gorm:"type:varchar(255)" json:"culture"`
	Type             string          `gorm:"type:varchar(100);not null;index" json:"type"`
	Amount           decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"`
	Status           string          `gorm:"type:varchar(20);not null;index" json:"status"`
	Nature           string          `gorm:"type:varchar(255)" json:"nature"`
	Confirmed        *bool           `json:"confirmed"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index" json:"driver_id"`
	Driver           *Driver         `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	TransporterID    *uuid.UUID      `gorm:"type:uuid;index" json:"transporter_id"`
	Transporter      *Transporter    `gorm:"foreignKey:TransporterID" json:"transporter,omitempty"`
	CreatedByID      *uuid.UUID      `gorm:"type:uuid;index" json:"created_by_id"`
	CreatedBy        *User           `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	ConfirmationDate *time.Time      `json:"confirmation_date"`
	Comments         string          `gorm:"type:text" json:"comments"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsConfirmed reports whether the confirmed flag is explicitly true.
func (r *Request) IsConfirmed() bool {
	return r.Confirmed != nil && *r.Confirmed
}

// IsUnconfirmed reports whether the confirmed flag is explicitly false. NULL is neither.
func (r *Request) IsUnconfirmed() bool {
	return r.Confirmed != nil && !*r.Confirmed
}

// HasTeam reports whether both roles are filled.
func (r *Request) HasTeam() bool {
	return r.DriverID != nil && r.TransporterID != nil
}

// SetConfirmation sets the confirmation flag and date. Status is left alone.
func (r *Request) SetConfirmation(at time.Time) {
	confirmed := true
	r.Confirmed = &confirmed
	r.ConfirmationDate = &at
}

// MarkConfirmed sets the confirmation flag, date and status together.
func (r *Request) MarkConfirmed(at time.Time) {
	r.SetConfirmation(at)
	r.Status = RequestConfirmed
}

// IsValidRequestStatus checks status against the closed set.
func IsValidRequestStatus(status string) bool {
	for _, s := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}
