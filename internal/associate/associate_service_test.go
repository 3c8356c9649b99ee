package associate_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-coope/internal/associate"
	associateerrors "go-coope/internal/associate/errors"
	associateMock "go-coope/internal/associate/mock"
	"go-coope/internal/events"
	"go-coope/internal/messaging/kafka"
	kafkaMock "go-coope/internal/messaging/kafka/mock"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/counter"
	counterMock "go-coope/internal/shared/counter/mock"
	"go-coope/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service associate.Service
	repo    *associateMock.MockRepository
	counter *counterMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	repo := associateMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := associate.NewServiceWithOutbox(transaction.NewManager(gdb), repo, counterRepo, outboxRepo)

	return &serviceDeps{
		sqlMock: mock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func validCreateRequest() associate.CreateAssociateRequest {
	return associate.CreateAssociateRequest{
		NationalID:       "1020304050",
		FirstNames:       "María José",
		LastNames:        "Pérez Gómez",
		BirthDate:        "1990-05-17",
		City:             "Medellín",
		Department:       "Antioquia",
		ResidenceAddress: "Calle 10 # 20-30",
		PersonalEmail:    strPtr("maria@example.com"),
	}
}

var actor = contextutil.Actor{ID: uuid.New(), IsAdmin: true}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success with initial employment", func(t *testing.T) {
		deps := setupServiceTest(t)
		rid := "REQ-123"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		req := validCreateRequest()
		base := decimal.RequireFromString("2500000")
		other := decimal.RequireFromString("300000.50")
		req.Employer = strPtr("Acme")
		req.Role = strPtr("Clerk")
		req.EmploymentStartDate = strPtr("2024-01-01")
		req.BaseSalary = &base
		req.OtherIncome = &other

		expectTx(t, deps.sqlMock, true)

		var created *associate.Associate
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, "1020304050").Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.MembershipNumber).Return(int64(42), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *associate.Associate) error {
				assert.Equal(t, "ASO-000042", a.MembershipNumber)
				assert.Equal(t, "María José Pérez Gómez", a.FullName)
				assert.Equal(t, associate.StatusActive, a.Status)
				require.NotNil(t, a.CreatedBy)
				assert.Equal(t, actor.ID, *a.CreatedBy)
				created = a
				return nil
			})
		deps.repo.EXPECT().
			CreateEmployment(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *associate.EmploymentRecord) error {
				assert.Equal(t, created.ID, e.AssociateID)
				assert.True(t, e.IsActive)
				assert.Equal(t, "Acme", e.Employer)
				assert.True(t, e.TotalSalary.Equal(decimal.RequireFromString("2800000.50")))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, rid, ev.RequestID)
				assert.Equal(t, events.AssociateLifecycleTopic, ev.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

				var payload events.AssociateCreatedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, events.AssociateCreatedType, payload.EventType)
				assert.Equal(t, "ASO-000042", payload.MembershipNumber)
				assert.Equal(t, created.ID.String(), payload.AssociateID)
				return nil
			})

		resp, err := deps.service.Create(ctx, actor, req)

		require.NoError(t, err)
		assert.Equal(t, "ASO-000042", resp.MembershipNumber)
		assert.Equal(t, "1990-05-17", resp.BirthDate)
		require.NotNil(t, resp.Employment)
		assert.Equal(t, "Clerk", resp.Employment.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("partial employment data skips the employment insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Employer = strPtr("Acme")
		req.Role = strPtr("Clerk")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, gomock.Any()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.MembershipNumber).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateEmployment(gomock.Any(), gomock.Any()).Times(0)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, actor, req)

		require.NoError(t, err)
		assert.Nil(t, resp.Employment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing required fields are listed", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.NationalID = "  "
		req.City = ""
		req.ResidenceAddress = ""

		_, err := deps.service.Create(ctx, actor, req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Campos requeridos faltantes: cedula, ciudad, direccion_residencia", appErr.Message)
		assert.Equal(t, map[string]any{"fields": []string{"cedula", "ciudad", "direccion_residencia"}}, appErr.Details)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid birth date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.BirthDate = "17/05/1990"

		_, err := deps.service.Create(ctx, actor, req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "fecha_nacimiento no es válido", appErr.Message)
	})

	t.Run("duplicate national id caught by pre-check", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, "1020304050").Return(true, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, actor, validCreateRequest())

		assert.ErrorIs(t, err, associateerrors.ErrNationalIDAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate national id caught by constraint", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, gomock.Any()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.MembershipNumber).Return(int64(7), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_associates_national_id"})

		_, err := deps.service.Create(ctx, actor, validCreateRequest())

		assert.ErrorIs(t, err, associateerrors.ErrNationalIDAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employment failure rolls back the associate", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Employer = strPtr("Acme")
		req.Role = strPtr("Clerk")
		req.EmploymentStartDate = strPtr("2024-01-01")

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, gomock.Any()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, gomock.Any()).Return(int64(8), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().
			CreateEmployment(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employment_records_active"})
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, actor, req)

		assert.ErrorIs(t, err, associateerrors.ErrActiveEmploymentExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("counter failure surfaces as internal", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNationalID(ctx, gomock.Any()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, actor, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("empty payload", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, actor, id.String(), associate.UpdateAssociateRequest{})

		assert.ErrorIs(t, err, associateerrors.ErrNoFieldsToUpdate)
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, actor, id.String(), associate.UpdateAssociateRequest{
			Status: strPtr("borrado"),
		})

		assert.ErrorIs(t, err, associateerrors.ErrInvalidStatus)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, actor, "nope", associate.UpdateAssociateRequest{City: strPtr("Cali")})

		assert.ErrorIs(t, err, associateerrors.ErrInvalidAssociateID)
	})

	t.Run("not found rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().UpdateFields(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Update(ctx, actor, id.String(), associate.UpdateAssociateRequest{City: strPtr("Cali")})

		assert.ErrorIs(t, err, associateerrors.ErrAssociateNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success builds allow-listed assignments", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := &associate.Associate{ID: id, FirstNames: "Ana", LastNames: "Ruiz", Status: associate.StatusActive}
		after := *current
		after.LastNames = "Ruiz Mejía"
		after.FullName = "Ana Ruiz Mejía"
		after.Status = associate.StatusRetired

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().FindByID(ctx, id).Return(current, nil),
			deps.repo.EXPECT().
				UpdateFields(ctx, id, gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ uuid.UUID, fields []associate.FieldUpdate) error {
					got := map[string]any{}
					for _, f := range fields {
						got[f.Column] = f.Value
					}
					assert.Equal(t, "Ruiz Mejía", got["last_names"])
					assert.Equal(t, "Ana Ruiz Mejía", got["full_name"])
					assert.Equal(t, associate.StatusRetired, got["status"])
					assert.Nil(t, got["personal_phone"])
					assert.Contains(t, got, "personal_phone")
					assert.Equal(t, actor.ID, got["updated_by"])
					assert.Contains(t, got, "updated_at")
					assert.NotContains(t, got, "national_id")
					assert.NotContains(t, got, "membership_number")
					return nil
				}),
			deps.repo.EXPECT().FindByID(ctx, id).Return(&after, nil),
		)

		resp, err := deps.service.Update(ctx, actor, id.String(), associate.UpdateAssociateRequest{
			LastNames:     strPtr("Ruiz Mejía"),
			Status:        strPtr("RETIRADO"),
			PersonalPhone: strPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Ruiz Mejía", resp.FullName)
		assert.Equal(t, associate.StatusRetired, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindEmploymentHistory(gomock.Any(), id).Return([]associate.EmploymentRecord{}, nil).AnyTimes()
		deps.repo.EXPECT().FindDocuments(gomock.Any(), id).Return([]associate.DocumentSummary{}, nil).AnyTimes()

		_, err := deps.service.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, associateerrors.ErrAssociateNotFound)
	})

	t.Run("nests history and documents", func(t *testing.T) {
		deps := setupServiceTest(t)
		docID := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&associate.Associate{ID: id, FullName: "Ana Ruiz"}, nil)
		deps.repo.EXPECT().FindEmploymentHistory(gomock.Any(), id).Return([]associate.EmploymentRecord{
			{ID: uuid.New(), Employer: "Nueva", IsActive: true, StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), Employer: "Vieja", StartDate: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)
		deps.repo.EXPECT().FindDocuments(gomock.Any(), id).Return([]associate.DocumentSummary{
			{ID: docID, TypeCode: "CEDULA", VerificationStatus: "pendiente"},
		}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		require.NoError(t, err)
		require.Len(t, resp.EmploymentHistory, 2)
		require.NotNil(t, resp.Employment)
		assert.Equal(t, "Nueva", resp.Employment.Employer)
		assert.Equal(t, "2024-01-01", resp.Employment.StartDate)
		require.Len(t, resp.Documents, 1)
		assert.Equal(t, docID.String(), resp.Documents[0].ID)
	})
}

func TestService_Search(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p associate.Predicate) ([]associate.Summary, int64, error) {
			assert.Equal(t, 40, p.Offset)
			assert.Equal(t, 20, p.Limit)
			assert.Contains(t, p.OrderBy, "a.last_names ASC")
			return []associate.Summary{{ID: uuid.New(), LastNames: "Pérez", Status: associate.StatusActive}}, 45, nil
		})

	result, err := deps.service.Search(context.Background(), associate.SearchRequest{
		Search: "Perez",
		Status: "activo",
		SortBy: "apellidos",
		Page:   3,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(45), result.Meta.Total)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.True(t, result.Meta.HasPrevious)
	assert.False(t, result.Meta.HasNext)
}

func TestService_AttachPhoto(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown associate", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().UpdateFields(ctx, id, gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.AttachPhoto(ctx, actor, id.String(), "/uploads/x.png")

		assert.ErrorIs(t, err, associateerrors.ErrAssociateNotFound)
	})

	t.Run("sets photo and audit stamp only", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			UpdateFields(ctx, id, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, fields []associate.FieldUpdate) error {
				require.Len(t, fields, 3)
				assert.Equal(t, associate.FieldUpdate{Column: "photo_url", Value: "/uploads/x.png"}, fields[0])
				assert.Equal(t, "updated_by", fields[1].Column)
				assert.Equal(t, "updated_at", fields[2].Column)
				return nil
			})
		url := "/uploads/x.png"
		deps.repo.EXPECT().FindByID(ctx, id).Return(&associate.Associate{ID: id, PhotoURL: &url}, nil)

		resp, err := deps.service.AttachPhoto(ctx, actor, id.String(), url)

		require.NoError(t, err)
		assert.Equal(t, &url, resp.PhotoURL)
	})
}

func TestService_Statistics(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().CountByStatus(gomock.Any()).Return([]associate.GroupCount{{Key: "activo", Count: 3}}, nil)
	deps.repo.EXPECT().CountActiveByDepartment(gomock.Any(), 10).Return([]associate.GroupCount{{Key: "Antioquia", Count: 3}}, nil)
	deps.repo.EXPECT().
		CountJoinedByMonth(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, since time.Time) ([]associate.GroupCount, error) {
			assert.Equal(t, 1, since.Day())
			assert.True(t, since.After(time.Now().AddDate(-1, -1, 0)))
			return []associate.GroupCount{}, nil
		})
	deps.repo.EXPECT().CountActiveByGender(gomock.Any()).Return([]associate.GroupCount{{Key: "no_especificado", Count: 3}}, nil)

	stats, err := deps.service.Statistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ByStatus[0].Count)
	assert.Equal(t, "Antioquia", stats.ByDepartment[0].Key)
	assert.Empty(t, stats.JoinedByMonth)
	assert.Len(t, stats.ByGender, 1)
}
