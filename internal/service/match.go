// internal/service/match.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"netshots-service/internal/weather"
	"netshots-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	db      *gorm.DB
	weather *weather.Client // nil disables enrichment entirely
}

func NewMatchService(db *gorm.DB, weatherClient *weather.Client) *MatchService {
	return &MatchService{db: db, weather: weatherClient}
}

// Create stores a new match for ownerID. The payload may carry its own id;
// otherwise one is generated. Weather enrichment runs only when both
// coordinates parsed, and its failure is invisible to the caller.
func (s *MatchService) Create(ctx context.Context, ownerID string, payload map[string]interface{}) (*models.Match, error) {
	matchID := ""
	if raw, ok := payload["id"].(string); ok {
		matchID = strings.TrimSpace(raw)
	}
	if matchID == "" {
		matchID = uuid.NewString()
	}

	match, err := models.MatchFromPayload(payload, ownerID, matchID)
	if err != nil {
		return nil, err
	}

	if match.Latitude != nil && match.Longitude != nil {
		if conditions := s.weather.Lookup(ctx, *match.Latitude, *match.Longitude); conditions != nil {
			match.Temperature = &conditions.Temperature
			if conditions.WeatherDescription != "" {
				match.WeatherDescription = &conditions.WeatherDescription
			}
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(match).Error
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ListByOwner returns every match owned by userID, storage order.
func (s *MatchService) ListByOwner(ctx context.Context, userID string) ([]*models.Match, error) {
	var matches []*models.Match
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&matches).Error
	return matches, err
}

// Update merges the payload into an existing match. Only the owner may
// touch it; a non-owner gets ErrForbidden, distinct from ErrNotFound.
func (s *MatchService) Update(ctx context.Context, callerID, matchID string, payload map[string]interface{}) (*models.Match, error) {
	var match models.Match

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&match, "id = ?", matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("match %s: %w", matchID, ErrNotFound)
			}
			return err
		}
		if match.UserID != callerID {
			return fmt.Errorf("match %s is not owned by caller: %w", matchID, ErrForbidden)
		}
		if err := match.ApplyPayload(payload); err != nil {
			return err
		}
		return tx.Save(&match).Error
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Delete removes a match, owner-only.
func (s *MatchService) Delete(ctx context.Context, callerID, matchID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.First(&match, "id = ?", matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("match %s: %w", matchID, ErrNotFound)
			}
			return err
		}
		if match.UserID != callerID {
			return fmt.Errorf("match %s is not owned by caller: %w", matchID, ErrForbidden)
		}
		return tx.Delete(&match).Error
	})
}

// Results is the win/loss summary: outcomes ordered ascending by date.
func (s *MatchService) Results(ctx context.Context, userID string) ([]bool, error) {
	var matches []*models.Match
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	results := make([]bool, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.IsVictory)
	}
	return results, nil
}
