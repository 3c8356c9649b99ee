package document

import (
	"go-coope/internal/documenttype"

	"github.com/google/uuid"
)

// MissingRequiredTypes returns the required, active catalog entries for
// which docs holds no document other than rejected ones. Order follows
// catalog.
func MissingRequiredTypes(catalog []documenttype.DocumentType, docs []Document) []documenttype.DocumentType {
	satisfied := make(map[uuid.UUID]struct{}, len(docs))
	for _, d := range docs {
		if d.VerificationStatus != StatusRejected {
			satisfied[d.DocumentTypeID] = struct{}{}
		}
	}

	missing := []documenttype.DocumentType{}
	for _, t := range catalog {
		if !t.IsRequired || !t.IsActive {
			continue
		}
		if _, ok := satisfied[t.ID]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

func IsComplete(catalog []documenttype.DocumentType, docs []Document) bool {
	return len(MissingRequiredTypes(catalog, docs)) == 0
}
