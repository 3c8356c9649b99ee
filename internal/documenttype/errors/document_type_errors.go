package documenttypeerrors

import (
	"go-coope/internal/shared/apperror"
	"net/http"
)

var (
	ErrDocumentTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tipo de documento no encontrado",
		http.StatusNotFound,
	)
	ErrDocumentTypeCodeExists = apperror.New(
		apperror.CodeConflict,
		"Ya existe un tipo de documento con este código",
		http.StatusConflict,
	)
	ErrInvalidFormats = apperror.New(
		apperror.CodeInvalidInput,
		"Los formatos permitidos deben ser extensiones alfanuméricas",
		http.StatusBadRequest,
	)
)
