package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "user.name", "user_name-01", "a2c"}
	invalid := []string{"ab", "", "user name", "user@name"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-1", "EMP-000123", "HR-42"}
	invalid := []string{"emp-1", "E-1", "EMP1", "EMP-", "EMP-1234567", ""}
	for _, c := range valid {
		if !IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", c)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month, year int
		want        bool
	}{
		{1, 2025, true},
		{12, 2000, true},
		{0, 2025, false},
		{13, 2025, false},
		{6, 1999, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.month, c.year); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2025", true},
		{"0", true},
		{"", false},
		{"12a", false},
		{"-3", false},
	}
	for _, c := range cases {
		if got := IsNumeric(c.in); got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-15"); !ok {
		t.Error("IsValidDate(2025-03-15) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "15-03-2025", "2025-03-15T10:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["username"] != "is required" {
		t.Errorf("ToMap()[username] = %q", m["username"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
