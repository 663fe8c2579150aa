package models

import (
	"time"
)

// Match is one recorded competitive result, owned by exactly one Profile.
// IDs are opaque strings: caller-supplied when the payload carries one,
// otherwise generated by the service.
type Match struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(128)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(128);not null;index"`
	IsVictory bool      `json:"is_victory" gorm:"not null;default:false"`
	Date      time.Time `json:"date" gorm:"not null"`
	Picture   string    `json:"picture" gorm:"type:varchar(500);not null"`
	Notes     *string   `json:"notes,omitempty" gorm:"type:text"`
	// Weather enrichment, best-effort and all nullable.
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	Temperature        *float64  `json:"temperature,omitempty"`
	WeatherDescription *string   `json:"weather_description,omitempty" gorm:"type:varchar(255)"`
	CreatedAt          time.Time `json:"created_at"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) ToWire() map[string]interface{} {
	out := map[string]interface{}{
		"id":        m.ID,
		"userId":    m.UserID,
		"isVictory": m.IsVictory,
		"date":      m.Date.Format(time.RFC3339),
		"picture":   m.Picture,
		"notes":     m.Notes,
	}
	if m.Latitude != nil {
		out["latitude"] = *m.Latitude
	}
	if m.Longitude != nil {
		out["longitude"] = *m.Longitude
	}
	if m.Temperature != nil {
		out["temperature"] = *m.Temperature
	}
	if m.WeatherDescription != nil {
		out["weatherDescription"] = *m.WeatherDescription
	}
	return out
}

// MatchFromPayload builds a Match owned by userID. Coordinates are kept only
// when both coerce to numbers; a bad coordinate skips enrichment, it never
// fails the match.
func MatchFromPayload(payload map[string]interface{}, userID, matchID string) (*Match, error) {
	date, err := parseDatetime(payload["date"])
	if err != nil {
		return nil, err
	}
	picture, err := parsePicture(payload["picture"])
	if err != nil {
		return nil, err
	}

	m := &Match{
		ID:        matchID,
		UserID:    userID,
		IsVictory: parseBool(payload["isVictory"], false),
		Date:      date,
		Picture:   picture,
		Notes:     parseOptionalStr(payload["notes"]),
	}

	if latRaw, ok := payload["latitude"]; ok && latRaw != nil {
		if lonRaw, ok := payload["longitude"]; ok && lonRaw != nil {
			lat, latOK := parseFloat(latRaw)
			lon, lonOK := parseFloat(lonRaw)
			if latOK && lonOK {
				m.Latitude = &lat
				m.Longitude = &lon
			}
		}
	}

	return m, nil
}

// ApplyPayload merges a partial payload into the match; only present keys
// are revised.
func (m *Match) ApplyPayload(payload map[string]interface{}) error {
	if v, ok := payload["isVictory"]; ok {
		m.IsVictory = parseBool(v, m.IsVictory)
	}
	if v, ok := payload["date"]; ok {
		date, err := parseDatetime(v)
		if err != nil {
			return err
		}
		m.Date = date
	}
	if v, ok := payload["picture"]; ok {
		picture, err := parsePicture(v)
		if err != nil {
			return err
		}
		m.Picture = picture
	}
	if v, ok := payload["notes"]; ok {
		m.Notes = parseOptionalStr(v)
	}
	return nil
}
