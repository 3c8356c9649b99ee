package counter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const MembershipNumber = "membership_number"

// Counter is one named monotonic sequence.
type Counter struct {
	CounterType string `gorm:"primaryKey;size:64"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (Counter) TableName() string { return "counters" }

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Atomic UPSERT so concurrent callers never observe the same value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// FormatMembershipNumber renders a sequence value as a membership number.
func FormatMembershipNumber(n int64) string {
	return fmt.Sprintf("ASO-%06d", n)
}
