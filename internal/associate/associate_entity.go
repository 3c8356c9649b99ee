package associate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "activo"
	StatusSuspended Status = "suspendido"
	StatusRetired   Status = "retirado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusRetired:
		return true
	default:
		return false
	}
}

type Associate struct {
	ID                           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MembershipNumber             string     `gorm:"size:20;not null;uniqueIndex:uq_associates_membership_number"`
	NationalID                   string     `gorm:"size:20;not null;uniqueIndex:uq_associates_national_id"`
	FirstNames                   string     `gorm:"size:100;not null"`
	LastNames                    string     `gorm:"size:100;not null"`
	FullName                     string     `gorm:"size:201;not null"`
	BirthDate                    time.Time  `gorm:"type:date;not null"`
	Gender                       *string    `gorm:"size:20"`
	MaritalStatus                *string    `gorm:"size:20"`
	PersonalPhone                *string    `gorm:"size:30"`
	WorkPhone                    *string    `gorm:"size:30"`
	PersonalEmail                *string    `gorm:"size:150"`
	WorkEmail                    *string    `gorm:"size:150"`
	ResidenceAddress             string     `gorm:"size:255;not null"`
	Neighborhood                 *string    `gorm:"size:100"`
	City                         string     `gorm:"size:100;not null"`
	Department                   string     `gorm:"size:100;not null"`
	PostalCode                   *string    `gorm:"size:20"`
	EmergencyContactName         *string    `gorm:"size:150"`
	EmergencyContactPhone        *string    `gorm:"size:30"`
	EmergencyContactRelationship *string    `gorm:"size:50"`
	JoinDate                     time.Time  `gorm:"type:date;not null"`
	Status                       Status     `gorm:"size:20;not null"`
	RetirementDate               *time.Time `gorm:"type:date"`
	RetirementReason             *string    `gorm:"type:text"`
	PhotoURL                     *string    `gorm:"size:500"`
	CreatedBy                    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt                    time.Time
	UpdatedBy                    *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt                    time.Time
}

func (Associate) TableName() string {
	return "associates"
}

// EmploymentRecord is one job held by an associate. History is preserved by
// inserting new rows; at most one row per associate is active.
type EmploymentRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AssociateID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Employer        string          `gorm:"size:200;not null"`
	EmployerTaxID   *string         `gorm:"size:30"`
	EmployerAddress *string         `gorm:"size:255"`
	EmployerPhone   *string         `gorm:"size:30"`
	Role            string          `gorm:"size:150;not null"`
	Area            *string         `gorm:"size:150"`
	BaseSalary      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	OtherIncome     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	TotalSalary     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	ContractType    *string         `gorm:"size:50"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	ContractEndDate *time.Time      `gorm:"type:date"`
	SupervisorName  *string         `gorm:"size:150"`
	SupervisorPhone *string         `gorm:"size:30"`
	SupervisorEmail *string         `gorm:"size:150"`
	IsActive        bool            `gorm:"not null"`
	CreatedBy       *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (EmploymentRecord) TableName() string {
	return "employment_records"
}

// Summary is one row of the search listing: the associate plus its active
// employment, if any.
type Summary struct {
	ID                  uuid.UUID
	MembershipNumber    string
	NationalID          string
	FirstNames          string
	LastNames           string
	FullName            string
	PersonalPhone       *string
	PersonalEmail       *string
	City                string
	Department          string
	Status              Status
	JoinDate            time.Time
	PhotoURL            *string
	Employer            *string
	Role                *string
	TotalSalary         decimal.NullDecimal
	EmploymentStartDate *time.Time
}

// DocumentSummary is a submitted document as listed on the associate detail.
type DocumentSummary struct {
	ID                 uuid.UUID
	DocumentTypeID     uuid.UUID
	TypeCode           string
	TypeName           string
	IsRequired         bool
	OriginalName       string
	SizeBytes          int64
	MimeType           *string
	VerificationStatus string
	VerificationNotes  *string
	VerifiedBy         *uuid.UUID
	VerifiedAt         *time.Time
	UploadedBy         uuid.UUID
	CreatedAt          time.Time
}

type GroupCount struct {
	Key   string `json:"clave"`
	Count int64  `json:"cantidad"`
}

type Statistics struct {
	ByStatus      []GroupCount `json:"por_estado"`
	ByDepartment  []GroupCount `json:"por_departamento"`
	JoinedByMonth []GroupCount `json:"nuevos_por_mes"`
	ByGender      []GroupCount `json:"por_genero"`
}
