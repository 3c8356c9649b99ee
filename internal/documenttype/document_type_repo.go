package documenttype

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindActive(ctx context.Context) ([]DocumentType, error)
	FindRequiredActive(ctx context.Context) ([]DocumentType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DocumentType, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, t *DocumentType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive(ctx context.Context) ([]DocumentType, error) {
	var types []DocumentType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_required DESC").
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindRequiredActive(ctx context.Context) ([]DocumentType, error) {
	var types []DocumentType
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_required = ?", true, true).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*DocumentType, error) {
	var t DocumentType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DocumentType{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, t *DocumentType) error {
	return r.db.WithContext(ctx).Create(t).Error
}
