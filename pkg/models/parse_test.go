package models

import (
	"testing"
	"time"
)

func TestParseBirthDate_AcceptsDateAndDiscardsTime(t *testing.T) {
	for _, input := range []string{"2001-05-01", "2001-05-01T10:30:00"} {
		got, err := parseBirthDate(input)
		if err != nil {
			t.Fatalf("parseBirthDate(%q) unexpected error: %v", input, err)
		}
		if got.Format("2006-01-02") != "2001-05-01" {
			t.Fatalf("parseBirthDate(%q) = %v, want 2001-05-01", input, got)
		}
	}
}

func TestParseBirthDate_RejectsGarbage(t *testing.T) {
	for _, input := range []interface{}{nil, "01/05/2001", "not a date", 42.0} {
		if _, err := parseBirthDate(input); err == nil {
			t.Fatalf("parseBirthDate(%v) expected error", input)
		}
	}
}

func TestParseGender_CaseInsensitive(t *testing.T) {
	cases := map[string]Gender{
		"male":   GenderMale,
		"FEMALE": GenderFemale,
		"Other":  GenderOther,
	}
	for input, want := range cases {
		got, err := parseGender(input)
		if err != nil {
			t.Fatalf("parseGender(%q) unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("parseGender(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := parseGender("unknown"); err == nil {
		t.Fatal("parseGender(unknown) expected error")
	}
	if _, err := parseGender(nil); err == nil {
		t.Fatal("parseGender(nil) expected error")
	}
}

func TestParsePictures_FiltersNonStrings(t *testing.T) {
	got := parsePictures([]interface{}{"a.jpg", "", "  ", 42.0, true, "b.png"})
	if len(got) != 2 || got[0] != "a.jpg" || got[1] != "b.png" {
		t.Fatalf("parsePictures = %v, want [a.jpg b.png]", got)
	}
}

func TestParsePictures_NonListYieldsEmpty(t *testing.T) {
	for _, input := range []interface{}{nil, "a.jpg", 7.0, map[string]interface{}{}} {
		if got := parsePictures(input); len(got) != 0 {
			t.Fatalf("parsePictures(%v) = %v, want empty", input, got)
		}
	}
}

func TestParseBool_StringSpellings(t *testing.T) {
	cases := []struct {
		input interface{}
		def   bool
		want  bool
	}{
		{"yes", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"False", true, false},
		{"0", true, false},
		{"2", false, true},   // integer truthiness
		{"maybe", true, true}, // falls back to default
		{3.0, false, true},
		{0.0, true, false},
		{nil, true, true},
	}
	for _, tc := range cases {
		if got := parseBool(tc.input, tc.def); got != tc.want {
			t.Fatalf("parseBool(%v, %v) = %v, want %v", tc.input, tc.def, got, tc.want)
		}
	}
}

func TestParseInt_FallsBackOnGarbage(t *testing.T) {
	if got := parseInt("12", 0); got != 12 {
		t.Fatalf("parseInt(12) = %d", got)
	}
	if got := parseInt(7.0, 0); got != 7 {
		t.Fatalf("parseInt(7.0) = %d", got)
	}
	if got := parseInt("twelve", 5); got != 5 {
		t.Fatalf("parseInt(twelve, 5) = %d, want 5", got)
	}
	if got := parseInt(nil, 3); got != 3 {
		t.Fatalf("parseInt(nil, 3) = %d, want 3", got)
	}
}

func TestParseDatetime_AcceptsZSuffix(t *testing.T) {
	got, err := parseDatetime("2024-05-01T10:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parseDatetime = %v, want %v", got, want)
	}
}

func TestParseDatetime_RejectsGarbage(t *testing.T) {
	for _, input := range []interface{}{nil, "yesterday", 17.0} {
		if _, err := parseDatetime(input); err == nil {
			t.Fatalf("parseDatetime(%v) expected error", input)
		}
	}
}

func TestParsePicture_RequiresNonEmpty(t *testing.T) {
	got, err := parsePicture("  p.jpg  ")
	if err != nil || got != "p.jpg" {
		t.Fatalf("parsePicture = %q, %v", got, err)
	}
	for _, input := range []interface{}{nil, "", "   ", 9.0} {
		if _, err := parsePicture(input); err == nil {
			t.Fatalf("parsePicture(%v) expected error", input)
		}
	}
}

func TestParseOptionalStr(t *testing.T) {
	if got := parseOptionalStr(nil); got != nil {
		t.Fatalf("parseOptionalStr(nil) = %v, want nil", *got)
	}
	if got := parseOptionalStr("   "); got != nil {
		t.Fatalf("parseOptionalStr(blank) = %v, want nil", *got)
	}
	if got := parseOptionalStr("  hi "); got == nil || *got != "hi" {
		t.Fatalf("parseOptionalStr(hi) = %v", got)
	}
}

func TestParseFloat_Coercion(t *testing.T) {
	if f, ok := parseFloat("40.41"); !ok || f != 40.41 {
		t.Fatalf("parseFloat(40.41 string) = %v, %v", f, ok)
	}
	if f, ok := parseFloat(-3.7); !ok || f != -3.7 {
		t.Fatalf("parseFloat(-3.7) = %v, %v", f, ok)
	}
	if _, ok := parseFloat("north"); ok {
		t.Fatal("parseFloat(north) expected failure")
	}
	if _, ok := parseFloat(nil); ok {
		t.Fatal("parseFloat(nil) expected failure")
	}
}
