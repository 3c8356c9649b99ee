package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Acceso denegado. Solo administradores.",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Error interno del servidor",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Autenticación requerida",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Los datos enviados no son válidos",
		http.StatusBadRequest,
	)
)
