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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidLatitude(t *testing.T) {
	cases := []struct {
		lat  float64
		want bool
	}{
		{0, true},
		{-90, true},
		{90, true},
		{-90.001, false},
		{90.001, false},
	}
	for _, c := range cases {
		if got := IsValidLatitude(c.lat); got != c.want {
			t.Errorf("IsValidLatitude(%f) = %v, want %v", c.lat, got, c.want)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	cases := []struct {
		lng  float64
		want bool
	}{
		{0, true},
		{-180, true},
		{180, true},
		{-180.001, false},
		{180.001, false},
	}
	for _, c := range cases {
		if got := IsValidLongitude(c.lng); got != c.want {
			t.Errorf("IsValidLongitude(%f) = %v, want %v", c.lng, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "lat", Message: "out of range"},
		{Field: "qr_code", Message: "required"},
	}
	got := errs.Error()
	want := "lat: out of range; qr_code: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "lat", Message: "out of range"},
		{Field: "qr_code", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"lat": "out of range", "qr_code": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
