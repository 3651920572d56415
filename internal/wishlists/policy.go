package wishlists

import "github.com/google/uuid"

// Access rules: the owner controls the list; accepted invitees can read it
// and add items; removing an item takes the owner or whoever added it.

// CanView reports whether the actor may read the wishlist.
func CanView(ownerID, actorID uuid.UUID, invited bool) bool {
	return ownerID == actorID || invited
}

// CanModify reports whether the actor may update or delete the wishlist.
func CanModify(ownerID, actorID uuid.UUID) bool {
	return ownerID == actorID
}

// CanInvite reports whether the actor may grant access to others.
func CanInvite(ownerID, actorID uuid.UUID) bool {
	return ownerID == actorID
}

// CanAddItem reports whether the actor may add items to the wishlist.
func CanAddItem(ownerID, actorID uuid.UUID, invited bool) bool {
	return CanView(ownerID, actorID, invited)
}

// CanRemoveItem reports whether the actor may remove the given item.
func CanRemoveItem(ownerID, addedBy, actorID uuid.UUID) bool {
	return ownerID == actorID || addedBy == actorID
}
