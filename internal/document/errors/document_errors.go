package documenterrors

import (
	"net/http"

	"go-coope/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Documento no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidDocumentID = apperror.New(
		apperror.CodeInvalidInput,
		"Identificador de documento no válido",
		http.StatusBadRequest,
	)
	ErrInvalidAssociateID = apperror.New(
		apperror.CodeInvalidInput,
		"Identificador de asociado no válido",
		http.StatusBadRequest,
	)
	ErrAssociateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asociado no encontrado",
		http.StatusNotFound,
	)
	ErrDocumentTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tipo de documento no encontrado o inactivo",
		http.StatusNotFound,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"No se proporcionó ningún archivo",
		http.StatusBadRequest,
	)
	ErrMissingUploadFields = apperror.New(
		apperror.CodeInvalidInput,
		"Faltan campos obligatorios: asociado_id, tipo_documento_id",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		`Estado de verificación inválido. Debe ser "verificado" o "rechazado"`,
		http.StatusBadRequest,
	)
	ErrDeleteForbidden = apperror.New(
		apperror.CodeForbidden,
		"No tienes permisos para eliminar este documento",
		http.StatusForbidden,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Archivo no encontrado en el servidor",
		http.StatusNotFound,
	)
)
