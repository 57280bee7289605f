package services

import "testing"

func TestNewInviteSlots(t *testing.T) {
	slots := NewInviteSlots()
	if len(slots) != InviteSlots {
		t.Fatalf("expected %d slots, got %d", InviteSlots, len(slots))
	}
	for i, s := range slots {
		if s.Email != "" {
			t.Errorf("slot %d should start without an email, got %q", i, s.Email)
		}
		if len(s.Code) != 4 {
			t.Errorf("slot %d code %q is not 4 digits", i, s.Code)
		}
		for _, c := range s.Code {
			if c < '0' || c > '9' {
				t.Errorf("slot %d code %q contains a non-digit", i, s.Code)
			}
		}
	}
}

func TestFindMemberByCode(t *testing.T) {
	slots := []InvitedMember{
		{Email: "a@studio.fr", Code: "1234"},
		{Email: "", Code: "5678"},
	}

	m, ok := FindMemberByCode(slots, "1234")
	if !ok || m.Email != "a@studio.fr" {
		t.Errorf("FindMemberByCode(1234) = %+v, %v", m, ok)
	}

	if _, ok := FindMemberByCode(slots, "0000"); ok {
		t.Error("unknown code should not match")
	}
	if _, ok := FindMemberByCode(slots, ""); ok {
		t.Error("empty code should never match")
	}
	if _, ok := FindMemberByCode(nil, "1234"); ok {
		t.Error("no slots should never match")
	}
}

func TestSetMemberEmail(t *testing.T) {
	slots := []InvitedMember{
		{Code: "1111"},
		{Code: "2222"},
	}

	out := SetMemberEmail(slots, 1, "new@studio.fr")
	if out[1].Email != "new@studio.fr" {
		t.Errorf("slot 1 email = %q", out[1].Email)
	}
	if out[1].Code != "2222" {
		t.Errorf("slot 1 code changed: %q", out[1].Code)
	}
	// Input slice is untouched
	if slots[1].Email != "" {
		t.Error("input slice was mutated")
	}

	// Out of range indices are no-ops
	out = SetMemberEmail(slots, 5, "x@y.fr")
	for i, s := range out {
		if s.Email != slots[i].Email {
			t.Errorf("out-of-range set changed slot %d", i)
		}
	}
	out = SetMemberEmail(slots, -1, "x@y.fr")
	if out[0].Email != "" {
		t.Error("negative index should be a no-op")
	}
}
