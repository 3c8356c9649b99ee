package associate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// FieldUpdate is one column assignment of a partial update. Column always
// comes from the service's allow-list, never from the request.
type FieldUpdate struct {
	Column string
	Value  any
}

//go:generate mockgen -source=associate_repo.go -destination=mock/associate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Search(ctx context.Context, p Predicate) ([]Summary, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Associate, error)
	FindActiveEmployment(ctx context.Context, associateID uuid.UUID) (*EmploymentRecord, error)
	FindEmploymentHistory(ctx context.Context, associateID uuid.UUID) ([]EmploymentRecord, error)
	FindDocuments(ctx context.Context, associateID uuid.UUID) ([]DocumentSummary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	Create(ctx context.Context, a *Associate) error
	CreateEmployment(ctx context.Context, e *EmploymentRecord) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields []FieldUpdate) error
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountActiveByDepartment(ctx context.Context, limit int) ([]GroupCount, error)
	CountJoinedByMonth(ctx context.Context, since time.Time) ([]GroupCount, error)
	CountActiveByGender(ctx context.Context) ([]GroupCount, error)
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

const summaryColumns = `a.id, a.membership_number, a.national_id, a.first_names, a.last_names,
	a.full_name, a.personal_phone, a.personal_email, a.city, a.department, a.status,
	a.join_date, a.photo_url,
	e.employer, e.role, e.total_salary, e.start_date AS employment_start_date`

// Search runs the page query and the count query concurrently. Both use the
// same predicate; they are not read in one snapshot.
func (r *repository) Search(ctx context.Context, p Predicate) ([]Summary, int64, error) {
	var (
		rows  []Summary
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := r.db.WithContext(gctx).
			Table("associates AS a").
			Select(summaryColumns).
			Joins("LEFT JOIN employment_records AS e ON e.associate_id = a.id AND e.is_active = ?", true)
		if p.Where != "" {
			q = q.Where(p.Where, p.Args...)
		}
		return q.Order(p.OrderBy).
			Limit(p.Limit).
			Offset(p.Offset).
			Scan(&rows).Error
	})

	g.Go(func() error {
		q := r.db.WithContext(gctx).Table("associates AS a")
		if p.Where != "" {
			q = q.Where(p.Where, p.Args...)
		}
		return q.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if rows == nil {
		rows = []Summary{}
	}
	return rows, total, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Associate, error) {
	var a Associate
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindActiveEmployment(ctx context.Context, associateID uuid.UUID) (*EmploymentRecord, error) {
	var e EmploymentRecord
	err := r.db.WithContext(ctx).
		Where("associate_id = ? AND is_active = ?", associateID, true).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindEmploymentHistory(ctx context.Context, associateID uuid.UUID) ([]EmploymentRecord, error) {
	records := []EmploymentRecord{}
	err := r.db.WithContext(ctx).
		Where("associate_id = ?", associateID).
		Order("start_date DESC").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindDocuments(ctx context.Context, associateID uuid.UUID) ([]DocumentSummary, error) {
	docs := []DocumentSummary{}
	err := r.db.WithContext(ctx).
		Table("associate_documents AS d").
		Select(`d.id, d.document_type_id, t.code AS type_code, t.name AS type_name,
			t.is_required, d.original_name, d.size_bytes, d.mime_type,
			d.verification_status, d.verification_notes, d.verified_by, d.verified_at,
			d.uploaded_by, d.created_at`).
		Joins("JOIN document_types AS t ON t.id = d.document_type_id").
		Where("d.associate_id = ?", associateID).
		Order("d.created_at DESC").
		Scan(&docs).Error
	return docs, err
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, a *Associate) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) CreateEmployment(ctx context.Context, e *EmploymentRecord) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields []FieldUpdate) error {
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		values[f.Column] = f.Value
	}

	res := r.db.WithContext(ctx).
		Model(&Associate{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&out).Error
	return out, err
}

func (r *repository) CountActiveByDepartment(ctx context.Context, limit int) ([]GroupCount, error) {
	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Select("department AS key, COUNT(*) AS count").
		Where("status = ?", StatusActive).
		Group("department").
		Order("COUNT(*) DESC").
		Order("department ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *repository) CountJoinedByMonth(ctx context.Context, since time.Time) ([]GroupCount, error) {
	month := "TO_CHAR(join_date, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		month = "strftime('%Y-%m', join_date)"
	}

	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Select(month + " AS key, COUNT(*) AS count").
		Where("join_date >= ?", since).
		Group(month).
		Order("key ASC").
		Scan(&out).Error
	return out, err
}

func (r *repository) CountActiveByGender(ctx context.Context) ([]GroupCount, error) {
	out := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&Associate{}).
		Select("COALESCE(gender, 'no_especificado') AS key, COUNT(*) AS count").
		Where("status = ?", StatusActive).
		Group("COALESCE(gender, 'no_especificado')").
		Order("COUNT(*) DESC").
		Order("key ASC").
		Scan(&out).Error
	return out, err
}
