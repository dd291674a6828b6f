package validator

import "testing"

type memberForm struct {
	Members []string `validate:"max=3,dive,member_email"`
}

func TestMemberEmail_AllowsBlankSlots(t *testing.T) {
	cv := New()

	if err := cv.Validate(&memberForm{Members: []string{"", "mate@example.com", ""}}); err != nil {
		t.Fatalf("blank slots must be allowed: %v", err)
	}
}

func TestMemberEmail_RejectsMalformedEntries(t *testing.T) {
	cv := New()

	if err := cv.Validate(&memberForm{Members: []string{"not-an-email"}}); err == nil {
		t.Fatal("malformed entry must fail validation")
	}
}

func TestMemberEmail_CapsListLength(t *testing.T) {
	cv := New()

	form := &memberForm{Members: []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}}
	if err := cv.Validate(form); err == nil {
		t.Fatal("four members must fail validation")
	}
}
