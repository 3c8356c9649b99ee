package transaction

import (
	"context"

	"go-coope/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Manager runs a unit of work on one pooled connection. The transaction is
// committed when fn returns nil and rolled back when it returns an error or
// panics; the connection goes back to the pool on every path.
type Manager interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type manager struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewManager(db *gorm.DB, logger ...*zap.Logger) Manager {
	l := zap.L().Named("transaction")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction")
	}
	return &manager{db: db, logger: l}
}

func (m *manager) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	rid := contextutil.GetRequestID(ctx)

	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		m.logger.Error("begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			m.rollback(tx, rid)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		m.rollback(tx, rid)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		m.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	return nil
}

func (m *manager) rollback(tx *gorm.DB, rid string) {
	if err := tx.Rollback().Error; err != nil {
		m.logger.Error("rollback failed", zap.String("request_id", rid), zap.Error(err))
	}
}
