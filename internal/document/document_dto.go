package document

import (
	"io"
	"time"

	"go-coope/internal/documenttype"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/pagination"
)

// UploadInput describes a file already written to the blob store.
type UploadInput struct {
	AssociateID    string
	DocumentTypeID string
	File           blobstore.Object
}

type VerifyRequest struct {
	Status string  `json:"estado_verificacion" binding:"required"`
	Notes  *string `json:"observaciones_verificacion"`
}

type PendingRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"limit"`
}

type DocumentResponse struct {
	ID                 string  `json:"id"`
	AssociateID        string  `json:"asociado_id"`
	DocumentTypeID     string  `json:"tipo_documento_id"`
	TypeCode           string  `json:"tipo_codigo,omitempty"`
	TypeName           string  `json:"tipo_nombre,omitempty"`
	IsRequired         bool    `json:"es_obligatorio"`
	OriginalName       string  `json:"nombre_original"`
	SizeBytes          int64   `json:"tamano_bytes"`
	MimeType           *string `json:"tipo_mime,omitempty"`
	VerificationStatus string  `json:"estado_verificacion"`
	VerificationNotes  *string `json:"observaciones_verificacion,omitempty"`
	VerifiedBy         *string `json:"verificado_por,omitempty"`
	VerifiedAt         *string `json:"fecha_verificacion,omitempty"`
	UploadedBy         string  `json:"subido_por"`
	CreatedAt          string  `json:"creado_en"`
}

type AssociateDocumentsResponse struct {
	Documents []DocumentResponse                  `json:"documentos"`
	Missing   []documenttype.DocumentTypeResponse `json:"documentos_faltantes"`
	Complete  bool                                `json:"completa"`
}

type PendingResponse struct {
	DocumentResponse
	MembershipNumber string `json:"numero_asociado"`
	AssociateName    string `json:"nombre_asociado"`
}

type PendingResult struct {
	Items []PendingResponse
	Meta  pagination.Meta
}

// DownloadFile is an open blob ready to be streamed. Callers close Body.
type DownloadFile struct {
	Name     string
	MimeType string
	Size     int64
	Body     io.ReadCloser
}

func mapToResponse(d Document) DocumentResponse {
	resp := DocumentResponse{
		ID:                 d.ID.String(),
		AssociateID:        d.AssociateID.String(),
		DocumentTypeID:     d.DocumentTypeID.String(),
		OriginalName:       d.OriginalName,
		SizeBytes:          d.SizeBytes,
		MimeType:           d.MimeType,
		VerificationStatus: string(d.VerificationStatus),
		VerificationNotes:  d.VerificationNotes,
		UploadedBy:         d.UploadedBy.String(),
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if d.VerifiedBy != nil {
		v := d.VerifiedBy.String()
		resp.VerifiedBy = &v
	}
	if d.VerifiedAt != nil {
		v := d.VerifiedAt.UTC().Format(time.RFC3339)
		resp.VerifiedAt = &v
	}
	return resp
}

func mapViewToResponse(v View) DocumentResponse {
	resp := mapToResponse(v.Document)
	resp.TypeCode = v.TypeCode
	resp.TypeName = v.TypeName
	resp.IsRequired = v.IsRequired
	return resp
}

func mapPendingToResponse(v PendingView) PendingResponse {
	resp := PendingResponse{
		DocumentResponse: mapToResponse(v.Document),
		MembershipNumber: v.MembershipNumber,
		AssociateName:    v.AssociateName,
	}
	resp.TypeName = v.TypeName
	return resp
}
