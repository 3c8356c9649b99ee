package document

import (
	"errors"

	documenterrors "go-coope/internal/document/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenterrors.ErrDocumentNotFound
	}

	return err
}
