package documenttype

import "time"

type RegisterDocumentTypeRequest struct {
	Code           string   `json:"codigo"`
	Name           string   `json:"nombre"`
	Description    *string  `json:"descripcion"`
	IsRequired     bool     `json:"es_obligatorio"`
	AllowedFormats []string `json:"formatos_permitidos" binding:"omitempty,dive,max=10"`
	MaxSizeMB      *int     `json:"tamano_maximo_mb" binding:"omitempty,min=1,max=1024"`
}

type DocumentTypeResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"codigo"`
	Name           string   `json:"nombre"`
	Description    *string  `json:"descripcion,omitempty"`
	IsRequired     bool     `json:"es_obligatorio"`
	AllowedFormats []string `json:"formatos_permitidos"`
	MaxSizeMB      int      `json:"tamano_maximo_mb"`
	IsActive       bool     `json:"es_activo"`
	CreatedAt      string   `json:"creado_en"`
}

func MapToResponse(t DocumentType) DocumentTypeResponse {
	formats := []string(t.AllowedFormats)
	if formats == nil {
		formats = []string{}
	}
	return DocumentTypeResponse{
		ID:             t.ID.String(),
		Code:           t.Code,
		Name:           t.Name,
		Description:    t.Description,
		IsRequired:     t.IsRequired,
		AllowedFormats: formats,
		MaxSizeMB:      t.MaxSizeMB,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func MapToListResponse(types []DocumentType) []DocumentTypeResponse {
	res := make([]DocumentTypeResponse, len(types))
	for i, t := range types {
		res[i] = MapToResponse(t)
	}
	return res
}
