package documenttype

import (
	"errors"

	documenttypeerrors "go-coope/internal/documenttype/errors"
	"go-coope/internal/shared/dberror"

	"gorm.io/gorm"
)

const uniqueCodeConstraint = "uq_document_types_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenttypeerrors.ErrDocumentTypeNotFound
	}

	if dberror.IsUniqueViolation(err, uniqueCodeConstraint, "document_types.code") {
		return documenttypeerrors.ErrDocumentTypeCodeExists
	}

	return err
}
