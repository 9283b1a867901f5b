package enums

import "testing"

func TestRoleIsStaff(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{ROLE_CLIENT, false},
		{ROLE_PREPARER, true},
		{ROLE_ADMIN, true},
		{Role("unknown"), false},
	}
	for _, tt := range tests {
		if got := tt.role.IsStaff(); got != tt.want {
			t.Errorf("%q.IsStaff() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range []Role{ROLE_CLIENT, ROLE_PREPARER, ROLE_ADMIN} {
		if !role.IsValid() {
			t.Errorf("%q should be valid", role)
		}
	}
	if Role("manager").IsValid() {
		t.Error("unknown role should be invalid")
	}
}

func TestCaseStatusIsValid(t *testing.T) {
	if !CASE_STATUS_APPROVED.IsValid() {
		t.Error("approved should be a valid case status")
	}
	if CaseStatus("done").IsValid() {
		t.Error("unknown case status should be invalid")
	}
}
