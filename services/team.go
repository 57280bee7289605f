package services

import (
	"fmt"
	"math/rand"
)

// InviteSlots is the number of invitation slots every project carries.
const InviteSlots = 10

// InvitedMember is one invitation slot: an optional email and the 4-digit
// access code a provider logs in with.
type InvitedMember struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// NewInviteSlots returns a fresh set of empty invitation slots, each with a
// random 4-digit code.
func NewInviteSlots() []InvitedMember {
	slots := make([]InvitedMember, InviteSlots)
	for i := range slots {
		slots[i] = InvitedMember{Code: fmt.Sprintf("%04d", 1000+rand.Intn(9000))}
	}
	return slots
}

// FindMemberByCode returns the slot matching a provider access code, or false
// when no invitation carries it. Empty codes never match.
func FindMemberByCode(slots []InvitedMember, code string) (InvitedMember, bool) {
	if code == "" {
		return InvitedMember{}, false
	}
	for _, m := range slots {
		if m.Code == code {
			return m, true
		}
	}
	return InvitedMember{}, false
}

// SetMemberEmail assigns an email to the slot at the given index. Out of
// range indices are a no-op.
func SetMemberEmail(slots []InvitedMember, index int, email string) []InvitedMember {
	out := make([]InvitedMember, len(slots))
	copy(out, slots)
	if index >= 0 && index < len(out) {
		out[index].Email = email
	}
	return out
}
