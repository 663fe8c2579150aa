package models

import (
	"errors"
	"testing"
)

func validProfilePayload() map[string]interface{} {
	return map[string]interface{}{
		"firstName":      "Anna",
		"lastName":       "García",
		"birthDate":      "1995-03-14",
		"gender":         "female",
		"profilePicture": " http://cdn/avatar.png ",
		"victories":      3.0,
		"losses":         "1",
		"pictures":       []interface{}{"court.jpg", ""},
	}
}

func TestProfileFromPayload_RoundTripsEveryField(t *testing.T) {
	p, err := ProfileFromPayload("uid-1", validProfilePayload(), "anna@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wire := p.ToWire()
	if wire["userId"] != "uid-1" {
		t.Fatalf("userId = %v", wire["userId"])
	}
	if wire["email"] != "anna@example.com" {
		t.Fatalf("email = %v", wire["email"])
	}
	if wire["firstName"] != "Anna" || wire["lastName"] != "García" {
		t.Fatalf("name = %v %v", wire["firstName"], wire["lastName"])
	}
	if wire["birthDate"] != "1995-03-14" {
		t.Fatalf("birthDate = %v", wire["birthDate"])
	}
	if wire["gender"] != "female" {
		t.Fatalf("gender = %v", wire["gender"])
	}
	if pic := wire["profilePicture"].(*string); pic == nil || *pic != "http://cdn/avatar.png" {
		t.Fatalf("profilePicture = %v", pic)
	}
	if wire["victories"] != 3 || wire["losses"] != 1 {
		t.Fatalf("counters = %v / %v", wire["victories"], wire["losses"])
	}
	pics := wire["pictures"].([]string)
	if len(pics) != 1 || pics[0] != "court.jpg" {
		t.Fatalf("pictures = %v", pics)
	}
}

func TestProfileFromPayload_TokenEmailWinsOverPayload(t *testing.T) {
	payload := validProfilePayload()
	payload["email"] = "payload@example.com"

	p, err := ProfileFromPayload("uid-1", payload, "token@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "token@example.com" {
		t.Fatalf("email = %q, want token email", p.Email)
	}
}

func TestProfileFromPayload_PayloadEmailUsedWhenTokenHasNone(t *testing.T) {
	payload := validProfilePayload()
	payload["email"] = "payload@example.com"

	p, err := ProfileFromPayload("uid-1", payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "payload@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
}

func TestProfileFromPayload_RequiredFieldFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing email", func(p map[string]interface{}) { delete(p, "email") }},
		{"missing firstName", func(p map[string]interface{}) { p["firstName"] = "  " }},
		{"missing lastName", func(p map[string]interface{}) { delete(p, "lastName") }},
		{"bad birthDate", func(p map[string]interface{}) { p["birthDate"] = "14/03/1995" }},
		{"bad gender", func(p map[string]interface{}) { p["gender"] = "robot" }},
	}
	for _, tc := range cases {
		payload := validProfilePayload()
		tc.mutate(payload)
		_, err := ProfileFromPayload("uid-1", payload, "")
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
	}
}

func TestProfileApplyPayload_EmptyPayloadIsNoOp(t *testing.T) {
	p, err := ProfileFromPayload("uid-1", validProfilePayload(), "anna@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := *p

	if err := p.ApplyPayload(map[string]interface{}{}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != before.Email || p.FirstName != before.FirstName ||
		p.Gender != before.Gender || p.Victories != before.Victories {
		t.Fatal("empty payload mutated the profile")
	}
}

func TestProfileApplyPayload_FalsyBirthDateAndGenderIgnored(t *testing.T) {
	p, _ := ProfileFromPayload("uid-1", validProfilePayload(), "anna@example.com")

	err := p.ApplyPayload(map[string]interface{}{
		"birthDate": "",
		"gender":    "",
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BirthDate.Format("2006-01-02") != "1995-03-14" || p.Gender != GenderFemale {
		t.Fatal("falsy birthDate/gender overwrote stored values")
	}
}

func TestProfileApplyPayload_MergesOnlyPresentKeys(t *testing.T) {
	p, _ := ProfileFromPayload("uid-1", validProfilePayload(), "anna@example.com")

	err := p.ApplyPayload(map[string]interface{}{
		"firstName": " Annabel ",
		"victories": 10.0,
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstName != "Annabel" {
		t.Fatalf("firstName = %q", p.FirstName)
	}
	if p.Victories != 10 {
		t.Fatalf("victories = %d", p.Victories)
	}
	if p.LastName != "García" || p.Losses != 1 {
		t.Fatal("absent keys were not preserved")
	}
}
