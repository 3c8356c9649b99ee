package contextutil

import "github.com/google/uuid"

// Actor is the verified caller supplied by the identity provider.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanManage reports whether the actor is an administrator or the owner.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin || (a.ID != uuid.Nil && a.ID == ownerID)
}
