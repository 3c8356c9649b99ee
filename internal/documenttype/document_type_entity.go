package documenttype

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMaxSizeMB = 10
	bytesPerMB       = 1024 * 1024
)

var DefaultFormats = Formats{"pdf", "jpg", "jpeg", "png"}

// Formats is the set of accepted file extensions, stored comma-separated.
type Formats []string

// NewFormats lower-cases tokens, strips leading dots and drops blanks and
// duplicates.
func NewFormats(tokens []string) Formats {
	out := make(Formats, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tok)), ".")
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func (f Formats) Contains(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, v := range f {
		if v == ext {
			return true
		}
	}
	return false
}

func (f Formats) String() string {
	return strings.Join(f, ", ")
}

func (f Formats) Value() (driver.Value, error) {
	return strings.Join(f, ","), nil
}

func (f *Formats) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = nil
	case string:
		*f = NewFormats(strings.Split(v, ","))
	case []byte:
		*f = NewFormats(strings.Split(string(v), ","))
	default:
		return fmt.Errorf("documenttype: cannot scan %T into Formats", src)
	}
	return nil
}

type DocumentType struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code           string     `gorm:"size:50;not null;uniqueIndex:uq_document_types_code"`
	Name           string     `gorm:"size:150;not null"`
	Description    *string    `gorm:"type:text"`
	IsRequired     bool       `gorm:"not null"`
	AllowedFormats Formats    `gorm:"type:varchar(200);not null"`
	MaxSizeMB      int        `gorm:"column:max_size_mb;not null"`
	IsActive       bool       `gorm:"not null"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DocumentType) TableName() string {
	return "document_types"
}

func (t DocumentType) MaxSizeBytes() int64 {
	return int64(t.MaxSizeMB) * bytesPerMB
}
