package service

import (
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/policy"
)

// authorize evaluates the capability policy for the principal ahead of a
// mutation. Anonymous callers get ErrUnauthenticated so the transport layer
// can answer 401 instead of 403.
func authorize(p domain.Principal, action policy.Action) error {
	if policy.CanPerform(p, action) {
		return nil
	}
	if !p.Authenticated {
		return domain.ErrUnauthenticated
	}
	return domain.ErrForbidden
}
