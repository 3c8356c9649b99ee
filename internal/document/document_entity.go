package document

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pendiente"
	StatusVerified VerificationStatus = "verificado"
	StatusRejected VerificationStatus = "rechazado"
)

// IsDecision reports whether s is a value a verifier may set.
func (s VerificationStatus) IsDecision() bool {
	return s == StatusVerified || s == StatusRejected
}

// Document is one submitted file for an associate. Resubmitting a type
// inserts a new row; older rows are kept.
type Document struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey"`
	AssociateID        uuid.UUID          `gorm:"type:uuid;not null;index"`
	DocumentTypeID     uuid.UUID          `gorm:"type:uuid;not null"`
	OriginalName       string             `gorm:"size:255;not null"`
	StoredName         string             `gorm:"size:255;not null"`
	StorageKey         string             `gorm:"size:500;not null"`
	SizeBytes          int64              `gorm:"not null"`
	MimeType           *string            `gorm:"size:100"`
	VerificationStatus VerificationStatus `gorm:"size:20;not null;index"`
	VerificationNotes  *string            `gorm:"type:text"`
	VerifiedBy         *uuid.UUID         `gorm:"type:uuid"`
	VerifiedAt         *time.Time
	UploadedBy         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Document) TableName() string {
	return "associate_documents"
}

// View is a document joined with its type.
type View struct {
	Document
	TypeCode   string
	TypeName   string
	IsRequired bool
}

// PendingView is a row of the verification queue.
type PendingView struct {
	Document
	MembershipNumber string
	AssociateName    string
	TypeName         string
}

// DownloadView carries what is needed to name a downloaded file.
type DownloadView struct {
	Document
	AssociateName string
	TypeName      string
}

type GroupCount struct {
	Key   string `json:"clave"`
	Count int64  `json:"cantidad"`
}

type Statistics struct {
	ByStatus        []GroupCount `json:"por_estado"`
	ByType          []GroupCount `json:"por_tipo"`
	UploadedByMonth []GroupCount `json:"subidos_por_mes"`
	Completeness    []GroupCount `json:"documentacion"`
}
