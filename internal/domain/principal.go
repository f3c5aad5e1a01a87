package domain

import "github.com/google/uuid"

// Principal identifies the actor behind a request. It is passed explicitly to
// every operation that needs it; there is no ambient "current user" state.
type Principal struct {
	ID            uuid.UUID
	Name          string
	Admin         bool
	Premium       bool
	Authenticated bool
}

// Anonymous is the principal of an unauthenticated request.
func Anonymous() Principal {
	return Principal{}
}
