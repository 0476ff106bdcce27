package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee holds the identity fields shared by drivers and transporters.
type Employee struct {
	Matricule string `gorm:"type:varchar(50);uniqueIndex;not null" json:"matricule"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	CIN       string `gorm:"column:cin;type:varchar(50);uniqueIndex;not null" json:"cin"`
}

// TeamMember is implemented by *Driver and *Transporter.
type TeamMember interface {
	MemberID() uuid.UUID
	Profile() *Employee
	IsAvailable() bool
	SetAvailable(available bool)
	RequestIDs() []uuid.UUID
}

// Driver is a team member holding a driving license.
type Driver struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Employee      `gorm:"embedded"`
	LicenseNumber string    `gorm:"type:varchar(100)" json:"license_number"`
	Available     bool      `gorm:"not null" json:"available"`
	Requests      []Request `gorm:"foreignKey:DriverID" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d *Driver) MemberID() uuid.UUID         { return d.ID }
func (d *Driver) Profile() *Employee          { return &d.Employee }
func (d *Driver) IsAvailable() bool           { return d.Available }
func (d *Driver) SetAvailable(available bool) { d.Available = available }
func (d *Driver) RequestIDs() []uuid.UUID     { return requestIDs(d.Requests) }

// Transporter is a team member operating a vehicle.
type Transporter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Employee    `gorm:"embedded"`
	VehicleType string    `gorm:"type:varchar(100)" json:"vehicle_type"`
	Available   bool      `gorm:"not null" json:"available"`
	Requests    []Request `gorm:"foreignKey:TransporterID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Transporter) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Transporter) MemberID() uuid.UUID         { return t.ID }
func (t *Transporter) Profile() *Employee          { return &t.Employee }
func (t *Transporter) IsAvailable() bool           { return t.Available }
func (t *Transporter) SetAvailable(available bool) { t.Available = available }
func (t *Transporter) RequestIDs() []uuid.UUID     { return requestIDs(t.Requests) }

func requestIDs(requests []Request) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}
