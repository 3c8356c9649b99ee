package associateerrors

import (
	"net/http"

	"go-coope/internal/shared/apperror"
)

var (
	ErrAssociateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asociado no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidAssociateID = apperror.New(
		apperror.CodeInvalidInput,
		"Identificador de asociado no válido",
		http.StatusBadRequest,
	)
	ErrNationalIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Ya existe un asociado con esta cédula",
		http.StatusConflict,
	)
	ErrMembershipNumberConflict = apperror.New(
		apperror.CodeConflict,
		"El número de asociado ya fue asignado",
		http.StatusConflict,
	)
	ErrActiveEmploymentExists = apperror.New(
		apperror.CodeConflict,
		"El asociado ya tiene un empleo activo",
		http.StatusConflict,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No se proporcionaron campos para actualizar",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Estado de asociado no válido",
		http.StatusBadRequest,
	)
	ErrPhotoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"No se proporcionó ninguna fotografía",
		http.StatusBadRequest,
	)
	ErrInvalidPhotoFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fotografía no permitido. Use jpg, jpeg o png",
		http.StatusBadRequest,
	)
)
