// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Household represents a shared living space and the set of roommates in it.
type Household struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the household.
	Name      string      `json:"name"`       // Display name chosen at creation, e.g. "Maple St. Crew".
	Address   string      `json:"address"`    // Street address of the living space.
	MemberIDs []uuid.UUID `json:"member_ids"` // IDs of the users living in this household. Non-empty after creation.
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HasMember reports whether the given user belongs to this household.
func (h *Household) HasMember(userID uuid.UUID) bool {
	for _, id := range h.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}
