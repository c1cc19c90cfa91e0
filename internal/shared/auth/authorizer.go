package auth

import "github.com/google/uuid"

// Actor describes who is making a request. Identity can come from a Bearer
// token or from the legacy vendor_id / is_admin request parameters; either
// way the handler layer builds one Actor and passes it down.
type Actor struct {
	UserID   uuid.UUID
	VendorID uuid.UUID
	Admin    bool
}

// HasUser reports whether a user identity is attached.
func (a Actor) HasUser() bool {
	return a.UserID != uuid.Nil
}

// HasVendor reports whether a vendor identity is attached.
func (a Actor) HasVendor() bool {
	return a.VendorID != uuid.Nil
}

// Authorizer answers capability questions for an actor. Services depend on
// this interface instead of inspecting transport-level fields themselves.
type Authorizer interface {
	// CanMutateEvent reports whether the actor may update or delete an
	// event owned by ownerID.
	CanMutateEvent(actor Actor, ownerID uuid.UUID) bool

	// IsAdmin reports whether the actor holds platform-admin rights.
	IsAdmin(actor Actor) bool
}

type vendorAuthorizer struct{}

// NewAuthorizer returns the default ownership-based authorizer: admins may
// mutate anything, vendors only their own events.
func NewAuthorizer() Authorizer {
	return vendorAuthorizer{}
}

func (vendorAuthorizer) CanMutateEvent(actor Actor, ownerID uuid.UUID) bool {
	if actor.Admin {
		return true
	}
	return actor.HasVendor() && actor.VendorID == ownerID
}

func (vendorAuthorizer) IsAdmin(actor Actor) bool {
	return actor.Admin
}
