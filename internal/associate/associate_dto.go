package associate

import (
	"strings"
	"time"

	associateerrors "go-coope/internal/associate/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/pagination"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateAssociateRequest struct {
	NationalID                   string  `json:"cedula"`
	FirstNames                   string  `json:"nombres"`
	LastNames                    string  `json:"apellidos"`
	BirthDate                    string  `json:"fecha_nacimiento"`
	Gender                       *string `json:"genero"`
	MaritalStatus                *string `json:"estado_civil"`
	PersonalPhone                *string `json:"telefono_personal"`
	WorkPhone                    *string `json:"telefono_trabajo"`
	PersonalEmail                *string `json:"email_personal" binding:"omitempty,email"`
	WorkEmail                    *string `json:"email_trabajo" binding:"omitempty,email"`
	ResidenceAddress             string  `json:"direccion_residencia"`
	Neighborhood                 *string `json:"barrio"`
	City                         string  `json:"ciudad"`
	Department                   string  `json:"departamento"`
	PostalCode                   *string `json:"codigo_postal"`
	EmergencyContactName         *string `json:"contacto_emergencia_nombre"`
	EmergencyContactPhone        *string `json:"contacto_emergencia_telefono"`
	EmergencyContactRelationship *string `json:"contacto_emergencia_parentesco"`
	JoinDate                     *string `json:"fecha_ingreso"`

	// Employment; recorded only when empresa, cargo and
	// fecha_inicio_laboral are all present.
	Employer            *string          `json:"empresa"`
	EmployerTaxID       *string          `json:"nit_empresa"`
	EmployerAddress     *string          `json:"direccion_empresa"`
	EmployerPhone       *string          `json:"telefono_empresa"`
	Role                *string          `json:"cargo"`
	Area                *string          `json:"area_departamento"`
	BaseSalary          *decimal.Decimal `json:"salario_basico"`
	OtherIncome         *decimal.Decimal `json:"otros_ingresos"`
	ContractType        *string          `json:"tipo_contrato"`
	EmploymentStartDate *string          `json:"fecha_inicio_laboral"`
	ContractEndDate     *string          `json:"fecha_fin_contrato"`
	SupervisorName      *string          `json:"jefe_inmediato_nombre"`
	SupervisorPhone     *string          `json:"jefe_inmediato_telefono"`
	SupervisorEmail     *string          `json:"jefe_inmediato_email" binding:"omitempty,email"`
}

// UpdateAssociateRequest lists every field a partial update may touch.
// Keys outside this struct (cedula, numero_asociado, ...) are dropped by
// decoding and never reach the database.
type UpdateAssociateRequest struct {
	FirstNames                   *string `json:"nombres"`
	LastNames                    *string `json:"apellidos"`
	BirthDate                    *string `json:"fecha_nacimiento"`
	Gender                       *string `json:"genero"`
	MaritalStatus                *string `json:"estado_civil"`
	PersonalPhone                *string `json:"telefono_personal"`
	WorkPhone                    *string `json:"telefono_trabajo"`
	PersonalEmail                *string `json:"email_personal" binding:"omitempty,email"`
	WorkEmail                    *string `json:"email_trabajo" binding:"omitempty,email"`
	ResidenceAddress             *string `json:"direccion_residencia"`
	Neighborhood                 *string `json:"barrio"`
	City                         *string `json:"ciudad"`
	Department                   *string `json:"departamento"`
	PostalCode                   *string `json:"codigo_postal"`
	EmergencyContactName         *string `json:"contacto_emergencia_nombre"`
	EmergencyContactPhone        *string `json:"contacto_emergencia_telefono"`
	EmergencyContactRelationship *string `json:"contacto_emergencia_parentesco"`
	Status                       *string `json:"estado_asociado"`
	RetirementDate               *string `json:"fecha_retiro"`
	RetirementReason             *string `json:"motivo_retiro"`
}

type EmploymentResponse struct {
	ID              string          `json:"id"`
	Employer        string          `json:"empresa"`
	EmployerTaxID   *string         `json:"nit_empresa,omitempty"`
	EmployerAddress *string         `json:"direccion_empresa,omitempty"`
	EmployerPhone   *string         `json:"telefono_empresa,omitempty"`
	Role            string          `json:"cargo"`
	Area            *string         `json:"area_departamento,omitempty"`
	BaseSalary      decimal.Decimal `json:"salario_basico"`
	OtherIncome     decimal.Decimal `json:"otros_ingresos"`
	TotalSalary     decimal.Decimal `json:"salario_total"`
	ContractType    *string         `json:"tipo_contrato,omitempty"`
	StartDate       string          `json:"fecha_inicio_laboral"`
	ContractEndDate *string         `json:"fecha_fin_contrato,omitempty"`
	SupervisorName  *string         `json:"jefe_inmediato_nombre,omitempty"`
	SupervisorPhone *string         `json:"jefe_inmediato_telefono,omitempty"`
	SupervisorEmail *string         `json:"jefe_inmediato_email,omitempty"`
	IsActive        bool            `json:"es_activo"`
}

type AssociateResponse struct {
	ID                           string              `json:"id"`
	MembershipNumber             string              `json:"numero_asociado"`
	NationalID                   string              `json:"cedula"`
	FirstNames                   string              `json:"nombres"`
	LastNames                    string              `json:"apellidos"`
	FullName                     string              `json:"nombre_completo"`
	BirthDate                    string              `json:"fecha_nacimiento"`
	Gender                       *string             `json:"genero"`
	MaritalStatus                *string             `json:"estado_civil"`
	PersonalPhone                *string             `json:"telefono_personal"`
	WorkPhone                    *string             `json:"telefono_trabajo"`
	PersonalEmail                *string             `json:"email_personal"`
	WorkEmail                    *string             `json:"email_trabajo"`
	ResidenceAddress             string              `json:"direccion_residencia"`
	Neighborhood                 *string             `json:"barrio"`
	City                         string              `json:"ciudad"`
	Department                   string              `json:"departamento"`
	PostalCode                   *string             `json:"codigo_postal"`
	EmergencyContactName         *string             `json:"contacto_emergencia_nombre"`
	EmergencyContactPhone        *string             `json:"contacto_emergencia_telefono"`
	EmergencyContactRelationship *string             `json:"contacto_emergencia_parentesco"`
	JoinDate                     string              `json:"fecha_ingreso"`
	Status                       Status              `json:"estado_asociado"`
	RetirementDate               *string             `json:"fecha_retiro"`
	RetirementReason             *string             `json:"motivo_retiro"`
	PhotoURL                     *string             `json:"fotografia_url"`
	CreatedBy                    string              `json:"creado_por,omitempty"`
	CreatedAt                    time.Time           `json:"creado_en"`
	UpdatedBy                    string              `json:"actualizado_por,omitempty"`
	UpdatedAt                    time.Time           `json:"actualizado_en"`
	Employment                   *EmploymentResponse `json:"empleo_actual,omitempty"`
}

type DocumentResponse struct {
	ID                 string     `json:"id"`
	DocumentTypeID     string     `json:"tipo_documento_id"`
	TypeCode           string     `json:"tipo_codigo"`
	TypeName           string     `json:"tipo_nombre"`
	IsRequired         bool       `json:"es_obligatorio"`
	OriginalName       string     `json:"nombre_original"`
	SizeBytes          int64      `json:"tamano_bytes"`
	MimeType           *string    `json:"tipo_mime,omitempty"`
	VerificationStatus string     `json:"estado_verificacion"`
	VerificationNotes  *string    `json:"observaciones_verificacion,omitempty"`
	VerifiedBy         *string    `json:"verificado_por,omitempty"`
	VerifiedAt         *time.Time `json:"fecha_verificacion,omitempty"`
	UploadedBy         string     `json:"subido_por"`
	CreatedAt          time.Time  `json:"creado_en"`
}

type AssociateDetailResponse struct {
	AssociateResponse
	EmploymentHistory []EmploymentResponse `json:"historial_laboral"`
	Documents         []DocumentResponse   `json:"documentos"`
}

type SummaryResponse struct {
	ID                  string           `json:"id"`
	MembershipNumber    string           `json:"numero_asociado"`
	NationalID          string           `json:"cedula"`
	FirstNames          string           `json:"nombres"`
	LastNames           string           `json:"apellidos"`
	FullName            string           `json:"nombre_completo"`
	PersonalPhone       *string          `json:"telefono_personal"`
	PersonalEmail       *string          `json:"email_personal"`
	City                string           `json:"ciudad"`
	Department          string           `json:"departamento"`
	Status              Status           `json:"estado_asociado"`
	JoinDate            string           `json:"fecha_ingreso"`
	PhotoURL            *string          `json:"fotografia_url"`
	Employer            *string          `json:"empresa"`
	Role                *string          `json:"cargo"`
	TotalSalary         *decimal.Decimal `json:"salario_total"`
	EmploymentStartDate *string          `json:"fecha_inicio_laboral"`
}

type SearchResult struct {
	Items []SummaryResponse
	Meta  pagination.Meta
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func mapEmploymentToResponse(e EmploymentRecord) EmploymentResponse {
	return EmploymentResponse{
		ID:              e.ID.String(),
		Employer:        e.Employer,
		EmployerTaxID:   e.EmployerTaxID,
		EmployerAddress: e.EmployerAddress,
		EmployerPhone:   e.EmployerPhone,
		Role:            e.Role,
		Area:            e.Area,
		BaseSalary:      e.BaseSalary,
		OtherIncome:     e.OtherIncome,
		TotalSalary:     e.TotalSalary,
		ContractType:    e.ContractType,
		StartDate:       formatDate(e.StartDate),
		ContractEndDate: formatDatePtr(e.ContractEndDate),
		SupervisorName:  e.SupervisorName,
		SupervisorPhone: e.SupervisorPhone,
		SupervisorEmail: e.SupervisorEmail,
		IsActive:        e.IsActive,
	}
}

func mapToResponse(a Associate) AssociateResponse {
	resp := AssociateResponse{
		ID:                           a.ID.String(),
		MembershipNumber:             a.MembershipNumber,
		NationalID:                   a.NationalID,
		FirstNames:                   a.FirstNames,
		LastNames:                    a.LastNames,
		FullName:                     a.FullName,
		BirthDate:                    formatDate(a.BirthDate),
		Gender:                       a.Gender,
		MaritalStatus:                a.MaritalStatus,
		PersonalPhone:                a.PersonalPhone,
		WorkPhone:                    a.WorkPhone,
		PersonalEmail:                a.PersonalEmail,
		WorkEmail:                    a.WorkEmail,
		ResidenceAddress:             a.ResidenceAddress,
		Neighborhood:                 a.Neighborhood,
		City:                         a.City,
		Department:                   a.Department,
		PostalCode:                   a.PostalCode,
		EmergencyContactName:         a.EmergencyContactName,
		EmergencyContactPhone:        a.EmergencyContactPhone,
		EmergencyContactRelationship: a.EmergencyContactRelationship,
		JoinDate:                     formatDate(a.JoinDate),
		Status:                       a.Status,
		RetirementDate:               formatDatePtr(a.RetirementDate),
		RetirementReason:             a.RetirementReason,
		PhotoURL:                     a.PhotoURL,
		CreatedAt:                    a.CreatedAt,
		UpdatedAt:                    a.UpdatedAt,
	}
	if a.CreatedBy != nil {
		resp.CreatedBy = a.CreatedBy.String()
	}
	if a.UpdatedBy != nil {
		resp.UpdatedBy = a.UpdatedBy.String()
	}
	return resp
}

func mapDocumentToResponse(d DocumentSummary) DocumentResponse {
	resp := DocumentResponse{
		ID:                 d.ID.String(),
		DocumentTypeID:     d.DocumentTypeID.String(),
		TypeCode:           d.TypeCode,
		TypeName:           d.TypeName,
		IsRequired:         d.IsRequired,
		OriginalName:       d.OriginalName,
		SizeBytes:          d.SizeBytes,
		MimeType:           d.MimeType,
		VerificationStatus: d.VerificationStatus,
		VerificationNotes:  d.VerificationNotes,
		VerifiedAt:         d.VerifiedAt,
		UploadedBy:         d.UploadedBy.String(),
		CreatedAt:          d.CreatedAt,
	}
	if d.VerifiedBy != nil {
		v := d.VerifiedBy.String()
		resp.VerifiedBy = &v
	}
	return resp
}

func mapSummaryToResponse(s Summary) SummaryResponse {
	resp := SummaryResponse{
		ID:                  s.ID.String(),
		MembershipNumber:    s.MembershipNumber,
		NationalID:          s.NationalID,
		FirstNames:          s.FirstNames,
		LastNames:           s.LastNames,
		FullName:            s.FullName,
		PersonalPhone:       s.PersonalPhone,
		PersonalEmail:       s.PersonalEmail,
		City:                s.City,
		Department:          s.Department,
		Status:              s.Status,
		JoinDate:            formatDate(s.JoinDate),
		PhotoURL:            s.PhotoURL,
		Employer:            s.Employer,
		Role:                s.Role,
		EmploymentStartDate: formatDatePtr(s.EmploymentStartDate),
	}
	if s.TotalSalary.Valid {
		total := s.TotalSalary.Decimal
		resp.TotalSalary = &total
	}
	return resp
}

// fieldUpdates converts the provided fields into column assignments. Blank
// optional text clears the column; blank required text is invalid.
func (r UpdateAssociateRequest) fieldUpdates() ([]FieldUpdate, error) {
	var out []FieldUpdate

	required := []struct {
		field, column string
		value         *string
	}{
		{"nombres", "first_names", r.FirstNames},
		{"apellidos", "last_names", r.LastNames},
		{"direccion_residencia", "residence_address", r.ResidenceAddress},
		{"ciudad", "city", r.City},
		{"departamento", "department", r.Department},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return nil, apperror.RequiredField(f.field)
		}
		out = append(out, FieldUpdate{Column: f.column, Value: v})
	}

	optionalText := []struct {
		column string
		value  *string
	}{
		{"gender", r.Gender},
		{"marital_status", r.MaritalStatus},
		{"personal_phone", r.PersonalPhone},
		{"work_phone", r.WorkPhone},
		{"personal_email", r.PersonalEmail},
		{"work_email", r.WorkEmail},
		{"neighborhood", r.Neighborhood},
		{"postal_code", r.PostalCode},
		{"emergency_contact_name", r.EmergencyContactName},
		{"emergency_contact_phone", r.EmergencyContactPhone},
		{"emergency_contact_relationship", r.EmergencyContactRelationship},
		{"retirement_reason", r.RetirementReason},
	}
	for _, f := range optionalText {
		if f.value == nil {
			continue
		}
		if v := optional(f.value); v != nil {
			out = append(out, FieldUpdate{Column: f.column, Value: *v})
		} else {
			out = append(out, FieldUpdate{Column: f.column, Value: nil})
		}
	}

	if r.BirthDate != nil {
		d, err := parseDate(*r.BirthDate)
		if err != nil {
			return nil, apperror.InvalidField("fecha_nacimiento")
		}
		out = append(out, FieldUpdate{Column: "birth_date", Value: d})
	}

	if r.RetirementDate != nil {
		if strings.TrimSpace(*r.RetirementDate) == "" {
			out = append(out, FieldUpdate{Column: "retirement_date", Value: nil})
		} else {
			d, err := parseDate(*r.RetirementDate)
			if err != nil {
				return nil, apperror.InvalidField("fecha_retiro")
			}
			out = append(out, FieldUpdate{Column: "retirement_date", Value: d})
		}
	}

	if r.Status != nil {
		status := Status(strings.ToLower(strings.TrimSpace(*r.Status)))
		if !status.Valid() {
			return nil, associateerrors.ErrInvalidStatus
		}
		out = append(out, FieldUpdate{Column: "status", Value: status})
	}

	if len(out) == 0 {
		return nil, associateerrors.ErrNoFieldsToUpdate
	}
	return out, nil
}
