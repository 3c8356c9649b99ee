package associate

import (
	"errors"

	associateerrors "go-coope/internal/associate/errors"
	"go-coope/internal/shared/dberror"

	"gorm.io/gorm"
)

const (
	uniqueNationalIDConstraint       = "uq_associates_national_id"
	uniqueMembershipNumberConstraint = "uq_associates_membership_number"
	uniqueActiveEmploymentConstraint = "uq_employment_records_active"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return associateerrors.ErrAssociateNotFound
	}

	if dberror.IsUniqueViolation(err, uniqueNationalIDConstraint, "associates.national_id") {
		return associateerrors.ErrNationalIDAlreadyExists
	}

	if dberror.IsUniqueViolation(err, uniqueMembershipNumberConstraint, "associates.membership_number") {
		return associateerrors.ErrMembershipNumberConflict
	}

	if dberror.IsUniqueViolation(err, uniqueActiveEmploymentConstraint, "employment_records.associate_id") {
		return associateerrors.ErrActiveEmploymentExists
	}

	return err
}
