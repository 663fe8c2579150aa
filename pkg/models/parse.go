package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError carries the human-readable reason a payload field was
// rejected. Handlers translate it to a 400 with the reason as the body.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

const birthDateLayout = "2006-01-02"

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseBirthDate accepts an ISO calendar date string; a trailing time
// component ("2001-05-01T00:00:00") is discarded.
func parseBirthDate(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Truncate(24 * time.Hour), nil
	case string:
		datePart := strings.SplitN(v, "T", 2)[0]
		if t, err := time.Parse(birthDateLayout, strings.TrimSpace(datePart)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationErr("birthDate must be an ISO date (YYYY-MM-DD)")
}

func parseGender(value interface{}) (Gender, error) {
	if g, ok := value.(Gender); ok {
		value = string(g)
	}
	if s, ok := value.(string); ok {
		normalized := Gender(strings.ToLower(strings.TrimSpace(s)))
		switch normalized {
		case GenderMale, GenderFemale, GenderOther:
			return normalized, nil
		}
	}
	return "", validationErr("gender must be one of: male, female, other")
}

// parsePictures keeps only non-empty string entries; any non-list input
// yields an empty list rather than an error.
func parsePictures(value interface{}) []string {
	pictures := []string{}
	switch v := value.(type) {
	case []string:
		for _, item := range v {
			if strings.TrimSpace(item) != "" {
				pictures = append(pictures, item)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				pictures = append(pictures, s)
			}
		}
	}
	return pictures
}

func normalizeProfilePicture(value interface{}) *string {
	if s, ok := value.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return &trimmed
		}
	}
	return nil
}

// parseInt is a best-effort coercion; anything non-numeric falls back to def.
func parseInt(value interface{}, def int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64: // JSON numbers decode as float64
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// parseBool recognizes booleans, the usual true/false string spellings, and
// numeric truthiness; everything else falls back to def.
func parseBool(value interface{}, def bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n != 0
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	return def
}

// parseDatetime requires an ISO 8601 datetime string; a trailing Z is read
// as UTC.
func parseDatetime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, validationErr("date must be an ISO datetime string")
}

func parsePicture(value interface{}) (string, error) {
	if s, ok := value.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", validationErr("picture is required")
}

func parseOptionalStr(value interface{}) *string {
	if value == nil {
		return nil
	}
	var s string
	if str, ok := value.(string); ok {
		s = strings.TrimSpace(str)
	} else {
		s = fmt.Sprintf("%v", value)
	}
	if s == "" {
		return nil
	}
	return &s
}

// parseFloat reports whether the value coerces to a number at all; used for
// coordinates, where a non-numeric value means "skip enrichment", not 400.
func parseFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
