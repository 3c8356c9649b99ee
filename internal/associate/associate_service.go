package associate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	associateerrors "go-coope/internal/associate/errors"
	"go-coope/internal/events"
	"go-coope/internal/messaging/kafka"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/counter"
	"go-coope/internal/shared/metrics"
	"go-coope/internal/shared/pagination"
	"go-coope/internal/shared/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	topDepartments   = 10
	joinWindowMonths = 12
)

type Service interface {
	Search(ctx context.Context, req SearchRequest) (SearchResult, error)
	GetByID(ctx context.Context, id string) (AssociateDetailResponse, error)
	Create(ctx context.Context, actor contextutil.Actor, req CreateAssociateRequest) (AssociateResponse, error)
	Update(ctx context.Context, actor contextutil.Actor, id string, req UpdateAssociateRequest) (AssociateResponse, error)
	AttachPhoto(ctx context.Context, actor contextutil.Actor, id string, photoURL string) (AssociateResponse, error)
	Statistics(ctx context.Context) (Statistics, error)
}

type service struct {
	txm     transaction.Manager
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(txm transaction.Manager, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(txm, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	txm transaction.Manager,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("associate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("associate.service")
	}
	return &service{
		txm:     txm,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  l,
	}
}

func (s *service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	p := BuildPredicate(req)
	s.logger.Debug("search associates requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("order_by", p.OrderBy),
		zap.Int("page", p.Page),
		zap.Int("page_size", p.PageSize),
	)

	rows, total, err := s.repo.Search(ctx, p)
	if err != nil {
		s.logger.Error("search associates failed", zap.Error(err))
		return SearchResult{}, mapRepositoryError(err)
	}

	items := make([]SummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapSummaryToResponse(row))
	}

	return SearchResult{
		Items: items,
		Meta:  pagination.New(total, p.Page, p.PageSize),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssociateDetailResponse, error) {
	associateID, err := uuid.Parse(id)
	if err != nil {
		return AssociateDetailResponse{}, associateerrors.ErrInvalidAssociateID
	}

	var (
		a       *Associate
		history []EmploymentRecord
		docs    []DocumentSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.repo.FindByID(gctx, associateID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.repo.FindEmploymentHistory(gctx, associateID)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.repo.FindDocuments(gctx, associateID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("get associate not found", zap.String("associate_id", id))
		} else {
			s.logger.Error("get associate failed", zap.String("associate_id", id), zap.Error(err))
		}
		return AssociateDetailResponse{}, mapRepositoryError(err)
	}

	resp := AssociateDetailResponse{
		AssociateResponse: mapToResponse(*a),
		EmploymentHistory: make([]EmploymentResponse, 0, len(history)),
		Documents:         make([]DocumentResponse, 0, len(docs)),
	}
	for _, e := range history {
		er := mapEmploymentToResponse(e)
		if e.IsActive && resp.Employment == nil {
			active := er
			resp.Employment = &active
		}
		resp.EmploymentHistory = append(resp.EmploymentHistory, er)
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, mapDocumentToResponse(d))
	}

	return resp, nil
}

func (s *service) Create(
	ctx context.Context,
	actor contextutil.Actor,
	req CreateAssociateRequest,
) (AssociateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create associate requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.ID.String()),
	)

	a, employment, err := s.buildAssociate(actor, req)
	if err != nil {
		s.logger.Warn("create associate validation failed", zap.String("request_id", rid), zap.Error(err))
		return AssociateResponse{}, err
	}

	err = s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Fast path only; uq_associates_national_id decides under concurrency.
		exists, err := qtx.ExistsByNationalID(ctx, a.NationalID)
		if err != nil {
			return err
		}
		if exists {
			return associateerrors.ErrNationalIDAlreadyExists
		}

		next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.MembershipNumber)
		if err != nil {
			return err
		}
		a.MembershipNumber = counter.FormatMembershipNumber(next)

		if err := qtx.Create(ctx, a); err != nil {
			return err
		}

		if employment != nil {
			employment.AssociateID = a.ID
			if err := qtx.CreateEmployment(ctx, employment); err != nil {
				return err
			}
		}

		return s.enqueueCreated(ctx, tx, rid, a)
	})
	if err != nil {
		mapped := mapRepositoryError(err)
		var appErr *apperror.AppError
		if errors.As(mapped, &appErr) {
			s.logger.Warn("create associate rejected",
				zap.String("request_id", rid),
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
			)
		} else {
			s.logger.Error("create associate failed", zap.String("request_id", rid), zap.Error(err))
		}
		return AssociateResponse{}, mapped
	}

	metrics.AssociatesCreated.Inc()
	s.logger.Info("create associate success",
		zap.String("request_id", rid),
		zap.String("associate_id", a.ID.String()),
		zap.String("membership_number", a.MembershipNumber),
		zap.Bool("with_employment", employment != nil),
	)

	resp := mapToResponse(*a)
	if employment != nil {
		er := mapEmploymentToResponse(*employment)
		resp.Employment = &er
	}
	return resp, nil
}

func (s *service) enqueueCreated(ctx context.Context, tx *gorm.DB, rid string, a *Associate) error {
	if s.outbox == nil {
		return nil
	}

	createdBy := ""
	if a.CreatedBy != nil {
		createdBy = a.CreatedBy.String()
	}
	payload, err := json.Marshal(events.AssociateCreatedEvent{
		EventType:        events.AssociateCreatedType,
		RequestID:        rid,
		AssociateID:      a.ID.String(),
		MembershipNumber: a.MembershipNumber,
		NationalID:       a.NationalID,
		CreatedBy:        createdBy,
		OccurredAt:       s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "associate",
		AggregateID:   a.ID.String(),
		EventType:     events.AssociateCreatedType,
		Topic:         events.AssociateLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) buildAssociate(actor contextutil.Actor, req CreateAssociateRequest) (*Associate, *EmploymentRecord, error) {
	required := []struct {
		field string
		value *string
	}{
		{"cedula", &req.NationalID},
		{"nombres", &req.FirstNames},
		{"apellidos", &req.LastNames},
		{"fecha_nacimiento", &req.BirthDate},
		{"ciudad", &req.City},
		{"departamento", &req.Department},
		{"direccion_residencia", &req.ResidenceAddress},
	}
	var missing []string
	for _, r := range required {
		*r.value = strings.TrimSpace(*r.value)
		if *r.value == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return nil, nil, apperror.Validation(
			"Campos requeridos faltantes: "+strings.Join(missing, ", "),
			map[string]any{"fields": missing},
		)
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, nil, apperror.InvalidField("fecha_nacimiento")
	}

	now := s.now()
	joinDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if v := trimmed(req.JoinDate); v != "" {
		if joinDate, err = parseDate(v); err != nil {
			return nil, nil, apperror.InvalidField("fecha_ingreso")
		}
	}

	actorID := actor.ID
	a := &Associate{
		ID:                           uuid.New(),
		NationalID:                   req.NationalID,
		FirstNames:                   req.FirstNames,
		LastNames:                    req.LastNames,
		FullName:                     fullName(req.FirstNames, req.LastNames),
		BirthDate:                    birthDate,
		Gender:                       optional(req.Gender),
		MaritalStatus:                optional(req.MaritalStatus),
		PersonalPhone:                optional(req.PersonalPhone),
		WorkPhone:                    optional(req.WorkPhone),
		PersonalEmail:                optional(req.PersonalEmail),
		WorkEmail:                    optional(req.WorkEmail),
		ResidenceAddress:             req.ResidenceAddress,
		Neighborhood:                 optional(req.Neighborhood),
		City:                         req.City,
		Department:                   req.Department,
		PostalCode:                   optional(req.PostalCode),
		EmergencyContactName:         optional(req.EmergencyContactName),
		EmergencyContactPhone:        optional(req.EmergencyContactPhone),
		EmergencyContactRelationship: optional(req.EmergencyContactRelationship),
		JoinDate:                     joinDate,
		Status:                       StatusActive,
		CreatedBy:                    &actorID,
		CreatedAt:                    now,
		UpdatedBy:                    &actorID,
		UpdatedAt:                    now,
	}

	employer, role, start := trimmed(req.Employer), trimmed(req.Role), trimmed(req.EmploymentStartDate)
	if employer == "" || role == "" || start == "" {
		return a, nil, nil
	}

	startDate, err := parseDate(start)
	if err != nil {
		return nil, nil, apperror.InvalidField("fecha_inicio_laboral")
	}
	var contractEnd *time.Time
	if v := trimmed(req.ContractEndDate); v != "" {
		end, err := parseDate(v)
		if err != nil {
			return nil, nil, apperror.InvalidField("fecha_fin_contrato")
		}
		contractEnd = &end
	}

	base, other := decimal.Zero, decimal.Zero
	if req.BaseSalary != nil {
		base = *req.BaseSalary
	}
	if req.OtherIncome != nil {
		other = *req.OtherIncome
	}
	if base.IsNegative() {
		return nil, nil, apperror.InvalidField("salario_basico")
	}
	if other.IsNegative() {
		return nil, nil, apperror.InvalidField("otros_ingresos")
	}

	employment := &EmploymentRecord{
		ID:              uuid.New(),
		Employer:        employer,
		EmployerTaxID:   optional(req.EmployerTaxID),
		EmployerAddress: optional(req.EmployerAddress),
		EmployerPhone:   optional(req.EmployerPhone),
		Role:            role,
		Area:            optional(req.Area),
		BaseSalary:      base,
		OtherIncome:     other,
		TotalSalary:     base.Add(other),
		ContractType:    optional(req.ContractType),
		StartDate:       startDate,
		ContractEndDate: contractEnd,
		SupervisorName:  optional(req.SupervisorName),
		SupervisorPhone: optional(req.SupervisorPhone),
		SupervisorEmail: optional(req.SupervisorEmail),
		IsActive:        true,
		CreatedBy:       &actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return a, employment, nil
}

func (s *service) Update(
	ctx context.Context,
	actor contextutil.Actor,
	id string,
	req UpdateAssociateRequest,
) (AssociateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update associate requested",
		zap.String("request_id", rid),
		zap.String("associate_id", id),
	)

	associateID, err := uuid.Parse(id)
	if err != nil {
		return AssociateResponse{}, associateerrors.ErrInvalidAssociateID
	}

	fields, err := req.fieldUpdates()
	if err != nil {
		s.logger.Warn("update associate validation failed", zap.String("associate_id", id), zap.Error(err))
		return AssociateResponse{}, err
	}

	var updated *Associate
	err = s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, associateID)
		if err != nil {
			return err
		}

		if req.FirstNames != nil || req.LastNames != nil {
			first, last := current.FirstNames, current.LastNames
			if req.FirstNames != nil {
				first = strings.TrimSpace(*req.FirstNames)
			}
			if req.LastNames != nil {
				last = strings.TrimSpace(*req.LastNames)
			}
			fields = append(fields, FieldUpdate{Column: "full_name", Value: fullName(first, last)})
		}

		fields = append(fields,
			FieldUpdate{Column: "updated_by", Value: actor.ID},
			FieldUpdate{Column: "updated_at", Value: s.now()},
		)

		if err := qtx.UpdateFields(ctx, associateID, fields); err != nil {
			return err
		}

		updated, err = qtx.FindByID(ctx, associateID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("update associate not found", zap.String("associate_id", id))
		} else {
			s.logger.Error("update associate failed", zap.String("associate_id", id), zap.Error(err))
		}
		return AssociateResponse{}, mapRepositoryError(err)
	}

	metrics.AssociatesUpdated.Inc()
	s.logger.Info("update associate success",
		zap.String("request_id", rid),
		zap.String("associate_id", id),
		zap.Int("fields", len(fields)),
	)

	return mapToResponse(*updated), nil
}

func (s *service) AttachPhoto(
	ctx context.Context,
	actor contextutil.Actor,
	id string,
	photoURL string,
) (AssociateResponse, error) {
	associateID, err := uuid.Parse(id)
	if err != nil {
		return AssociateResponse{}, associateerrors.ErrInvalidAssociateID
	}
	if strings.TrimSpace(photoURL) == "" {
		return AssociateResponse{}, associateerrors.ErrPhotoRequired
	}

	err = s.repo.UpdateFields(ctx, associateID, []FieldUpdate{
		{Column: "photo_url", Value: photoURL},
		{Column: "updated_by", Value: actor.ID},
		{Column: "updated_at", Value: s.now()},
	})
	if err != nil {
		s.logger.Warn("attach photo failed", zap.String("associate_id", id), zap.Error(err))
		return AssociateResponse{}, mapRepositoryError(err)
	}

	a, err := s.repo.FindByID(ctx, associateID)
	if err != nil {
		return AssociateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attach photo success", zap.String("associate_id", id))
	return mapToResponse(*a), nil
}

func (s *service) Statistics(ctx context.Context) (Statistics, error) {
	now := s.now()
	since := time.Date(now.Year(), now.Month()-(joinWindowMonths-1), 1, 0, 0, 0, 0, time.UTC)

	var stats Statistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.ByStatus, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ByDepartment, err = s.repo.CountActiveByDepartment(gctx, topDepartments)
		return err
	})
	g.Go(func() (err error) {
		stats.JoinedByMonth, err = s.repo.CountJoinedByMonth(gctx, since)
		return err
	})
	g.Go(func() (err error) {
		stats.ByGender, err = s.repo.CountActiveByGender(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("associate statistics failed", zap.Error(err))
		return Statistics{}, mapRepositoryError(err)
	}
	return stats, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(v))
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// optional normalises a nullable text input: blank becomes NULL.
func optional(v *string) *string {
	t := trimmed(v)
	if t == "" {
		return nil
	}
	return &t
}
