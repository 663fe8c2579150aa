package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile is the persisted user record. The Firebase UID is the primary key
// so the row always lines up with the identity provider.
type Profile struct {
	UserID         string                      `json:"user_id" gorm:"primaryKey;type:varchar(128);column:user_id"`
	Email          string                      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName      string                      `json:"first_name" gorm:"type:varchar(120);not null"`
	LastName       string                      `json:"last_name" gorm:"type:varchar(120);not null"`
	BirthDate      time.Time                   `json:"birth_date" gorm:"type:date;not null"`
	Gender         Gender                      `json:"gender" gorm:"type:varchar(10);not null"`
	ProfilePicture *string                     `json:"profile_picture,omitempty" gorm:"type:varchar(500)"`
	Victories      int                         `json:"victories" gorm:"not null;default:0"`
	Losses         int                         `json:"losses" gorm:"not null;default:0"`
	Pictures       datatypes.JSONSlice[string] `json:"pictures" gorm:"type:jsonb"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (Profile) TableName() string {
	return "user_profiles"
}

// UserSummary is the lightweight projection used by search and feed results.
type UserSummary struct {
	UserID         string  `json:"userId"`
	DisplayName    string  `json:"displayName"`
	ProfilePicture *string `json:"profilePicture"`
}

func (p *Profile) Summary() UserSummary {
	return UserSummary{
		UserID:         p.UserID,
		DisplayName:    p.FirstName + " " + p.LastName,
		ProfilePicture: p.ProfilePicture,
	}
}

// ToWire maps to the contract expected by the mobile client.
func (p *Profile) ToWire() map[string]interface{} {
	return map[string]interface{}{
		"userId":         p.UserID,
		"email":          p.Email,
		"firstName":      p.FirstName,
		"lastName":       p.LastName,
		"birthDate":      p.BirthDate.Format(birthDateLayout),
		"gender":         string(p.Gender),
		"profilePicture": p.ProfilePicture,
		"victories":      p.Victories,
		"losses":         p.Losses,
		"pictures":       []string(p.Pictures),
	}
}

// ProfileFromPayload builds a new Profile for uid. The verified token email
// wins over any email in the payload.
func ProfileFromPayload(uid string, payload map[string]interface{}, emailFromToken string) (*Profile, error) {
	birthDate, err := parseBirthDate(payload["birthDate"])
	if err != nil {
		return nil, err
	}
	gender, err := parseGender(payload["gender"])
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(emailFromToken)
	if email == "" {
		if s, ok := payload["email"].(string); ok {
			email = strings.TrimSpace(s)
		}
	}
	if email == "" {
		return nil, validationErr("email is required")
	}

	firstName, _ := payload["firstName"].(string)
	lastName, _ := payload["lastName"].(string)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, validationErr("firstName and lastName are required")
	}

	return &Profile{
		UserID:         uid,
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		BirthDate:      birthDate,
		Gender:         gender,
		ProfilePicture: normalizeProfilePicture(payload["profilePicture"]),
		Victories:      parseInt(payload["victories"], 0),
		Losses:         parseInt(payload["losses"], 0),
		Pictures:       datatypes.NewJSONSlice(parsePictures(payload["pictures"])),
	}, nil
}

// ApplyPayload merges a partial payload into the profile. Only keys present
// in the payload are touched; a present-but-empty birthDate or gender is
// treated as "no change" so a sloppy client can't wipe them out.
func (p *Profile) ApplyPayload(payload map[string]interface{}, emailFromToken string) error {
	if _, ok := payload["email"]; ok || emailFromToken != "" {
		email := strings.TrimSpace(emailFromToken)
		if email == "" {
			if s, sok := payload["email"].(string); sok {
				email = strings.TrimSpace(s)
			}
		}
		if email != "" {
			p.Email = email
		}
	}

	if v, ok := payload["firstName"]; ok {
		if s, sok := v.(string); sok {
			p.FirstName = strings.TrimSpace(s)
		}
	}
	if v, ok := payload["lastName"]; ok {
		if s, sok := v.(string); sok {
			p.LastName = strings.TrimSpace(s)
		}
	}
	if v, ok := payload["birthDate"]; ok && !isEmptyValue(v) {
		birthDate, err := parseBirthDate(v)
		if err != nil {
			return err
		}
		p.BirthDate = birthDate
	}
	if v, ok := payload["gender"]; ok && !isEmptyValue(v) {
		gender, err := parseGender(v)
		if err != nil {
			return err
		}
		p.Gender = gender
	}
	if v, ok := payload["profilePicture"]; ok {
		p.ProfilePicture = normalizeProfilePicture(v)
	}
	if v, ok := payload["victories"]; ok {
		p.Victories = parseInt(v, p.Victories)
	}
	if v, ok := payload["losses"]; ok {
		p.Losses = parseInt(v, p.Losses)
	}
	if v, ok := payload["pictures"]; ok {
		p.Pictures = datatypes.NewJSONSlice(parsePictures(v))
	}
	return nil
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
