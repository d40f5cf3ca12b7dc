package service

import "blogapi/internal/models"

// CanMutate is the ownership/role gate applied to every mutation of a shared
// resource: admins may touch anything, everyone else only what they own.
// Callers must confirm the resource exists before consulting the policy, so
// a DENY always surfaces as forbidden rather than not-found.
func CanMutate(p models.Principal, ownerID string) bool {
	return p.IsAdmin() || p.ID == ownerID
}
