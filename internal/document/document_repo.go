package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	activeAssociateStatus  = "activo"
	completenessComplete   = "completa"
	completenessIncomplete = "incompleta"
)

//go:generate mockgen -destination=mock/document_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, d *Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByAssociate(ctx context.Context, associateID uuid.UUID) ([]View, error)
	FindForDownload(ctx context.Context, id uuid.UUID) (*DownloadView, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, v Verification) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPending(ctx context.Context, limit, offset int) ([]PendingView, int64, error)
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountByType(ctx context.Context) ([]GroupCount, error)
	CountUploadedByMonth(ctx context.Context, since time.Time) ([]GroupCount, error)
	CountCompleteness(ctx context.Context) ([]GroupCount, error)
}

// Verification is the decision written by UpdateVerification.
type Verification struct {
	Status     VerificationStatus
	Notes      *string
	VerifiedBy uuid.UUID
	VerifiedAt time.Time
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	var d Document
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByAssociate(ctx context.Context, associateID uuid.UUID) ([]View, error) {
	out := []View{}
	err := r.db.WithContext(ctx).
		Table("associate_documents AS d").
		Select("d.*, t.code AS type_code, t.name AS type_name, t.is_required").
		Joins("JOIN document_types t ON t.id = d.document_type_id").
		Where("d.associate_id = ?", associateID).
		Order("d.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *repository) FindForDownload(ctx context.Context, id uuid.UUID) (*DownloadView, error) {
	var out []DownloadView
	err := r.db.WithContext(ctx).
		Table("associate_documents AS d").
		Select("d.*, a.full_name AS associate_name, t.name AS type_name").
		Joins("JOIN associates a ON a.id = d.associate_id").
		Joins("JOIN document_types t ON t.id = d.document_type_id").
		Where("d.id = ?", id).
		Limit(1).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out[0], nil
}

func (r *repository) UpdateVerification(ctx context.Context, id uuid.UUID, v Verification) error {
	res := r.db.WithContext(ctx).
		Model(&Document{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verification_status": v.Status,
			"verification_notes":  v.Notes,
			"verified_by":         v.VerifiedBy,
			"verified_at":         v.VerifiedAt,
			"updated_at":          v.VerifiedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Document{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPending returns the oldest pending documents first. The page and
// the total are read separately.
func (r *repository) ListPending(ctx context.Context, limit, offset int) ([]PendingView, int64, error) {
	var (
		rows  []PendingView
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows = []PendingView{}
		return r.db.WithContext(gctx).
			Table("associate_documents AS d").
			Select("d.*, a.membership_number, a.full_name AS associate_name, t.name AS type_name").
			Joins("JOIN associates a ON a.id = d.associate_id").
			Joins("JOIN document_types t ON t.id = d.document_type_id").
			Where("d.verification_status = ?", StatusPending).
			Order("d.created_at ASC").
			Limit(limit).
			Offset(offset).
			Scan(&rows).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&Document{}).
			Where("verification_status = ?", StatusPending).
			Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Document{}).
		Select("verification_status AS key, COUNT(*) AS count").
		Group("verification_status").
		Order("key ASC").
		Scan(&out).Error
	return out, err
}

// CountByType lists every active type, including those with no documents.
func (r *repository) CountByType(ctx context.Context) ([]GroupCount, error) {
	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Table("document_types AS t").
		Select("t.name AS key, COUNT(d.id) AS count").
		Joins("LEFT JOIN associate_documents d ON d.document_type_id = t.id").
		Where("t.is_active = ?", true).
		Group("t.id, t.name").
		Order("COUNT(d.id) DESC").
		Order("key ASC").
		Scan(&out).Error
	return out, err
}

func (r *repository) CountUploadedByMonth(ctx context.Context, since time.Time) ([]GroupCount, error) {
	month := "TO_CHAR(created_at, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		month = "strftime('%Y-%m', created_at)"
	}

	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Document{}).
		Select(month+" AS key, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group(month).
		Order("key DESC").
		Scan(&out).Error
	return out, err
}

// CountCompleteness splits active associates by whether every required,
// active type has at least one non-rejected document. Both keys are always
// present.
func (r *repository) CountCompleteness(ctx context.Context) ([]GroupCount, error) {
	const query = `
SELECT CASE WHEN COALESCE(s.satisfied, 0) >= (
		SELECT COUNT(*) FROM document_types WHERE is_required = ? AND is_active = ?
	) THEN 'completa' ELSE 'incompleta' END AS key,
	COUNT(*) AS count
FROM associates a
LEFT JOIN (
	SELECT d.associate_id, COUNT(DISTINCT d.document_type_id) AS satisfied
	FROM associate_documents d
	JOIN document_types t ON t.id = d.document_type_id
	WHERE t.is_required = ? AND t.is_active = ? AND d.verification_status <> ?
	GROUP BY d.associate_id
) s ON s.associate_id = a.id
WHERE a.status = ?
GROUP BY 1`

	var rows []GroupCount
	err := r.db.WithContext(ctx).Raw(query,
		true, true,
		true, true, StatusRejected,
		activeAssociateStatus,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return []GroupCount{
		{Key: completenessComplete, Count: counts[completenessComplete]},
		{Key: completenessIncomplete, Count: counts[completenessIncomplete]},
	}, nil
}
