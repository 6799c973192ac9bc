package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}

	for _, c := range cases {
		if got := IsEmpty(c.input); got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co.id", true},
		{"user@example", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@.com", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidEmail(c.input); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("leap day 2024-02-29 must parse")
	}
	for _, invalid := range []string{"2023-02-29", "2024-13-01", "01-01-2024", "2024/01/01", ""} {
		if _, ok := IsValidDate(invalid); ok {
			t.Errorf("IsValidDate(%q) = true, want false", invalid)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"+6281234567890", true},
		{"081234567890", true},
		{"0812-3456-7890", true},
		{"0812 3456 7890", true},
		{"12345", false},   // too short
		{"abc1234567", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidPhoneNumber(c.input); got != c.want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDisplayCode(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"EMP001", true},
		{"ATT042", true},
		{"LVE1000", true}, // sequences keep counting past 999
		{"emp001", false},
		{"EMP01", false},
		{"EMPLOYEE1", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidDisplayCode(c.input); got != c.want {
			t.Errorf("IsValidDisplayCode(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email format is invalid"},
		{Field: "name", Message: "name is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["email"] != "email format is invalid" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
	if errs.Error() == "" {
		t.Error("Error() must describe the failures")
	}
}
