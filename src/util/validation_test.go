package util

import "testing"

func TestValidateEmail_Valid(t *testing.T) {
	cases := []string{
		"a@x.com",
		"user.name+tag@example.co.uk",
		"first-last@sub.domain.org",
	}

	for _, email := range cases {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"missing-at-sign.com",
		"user@no-tld",
		"user@.com",
	}

	for _, email := range cases {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidateDate_Valid(t *testing.T) {
	cases := []string{
		"2026-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range cases {
		if !ValidateDate(date) {
			t.Errorf("ValidateDate(%q) = false, want true", date)
		}
	}
}

func TestValidateDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range cases {
		if ValidateDate(date) {
			t.Errorf("ValidateDate(%q) = true, want false", date)
		}
	}
}
