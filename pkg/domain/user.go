package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// Capability is a permission granted to a user through its bearer token.
type Capability string

const (
	// CapabilityEditPosts allows running scans and managing findings.
	CapabilityEditPosts Capability = "edit_posts"
	// CapabilityManageOptions allows changing settings and reading reports.
	// It implies CapabilityEditPosts.
	CapabilityManageOptions Capability = "manage_options"
)

// Allows reports whether holding c is enough to perform an operation requiring required.
func (c Capability) Allows(required Capability) bool {
	if c == required {
		return true
	}

	return c == CapabilityManageOptions && required == CapabilityEditPosts
}
