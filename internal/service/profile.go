// internal/service/profile.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"netshots-service/internal/email"
	"netshots-service/pkg/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db          *gorm.DB
	emailSender *email.Sender // nil when SMTP is not configured
}

func NewProfileService(db *gorm.DB, emailSender *email.Sender) *ProfileService {
	return &ProfileService{db: db, emailSender: emailSender}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateOrUpdate is the POST /api/profiles semantics: first write creates,
// later writes merge. The verified token email always wins over the payload.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, userID string, payload map[string]interface{}, emailFromToken string) (*models.Profile, error) {
	var profile models.Profile
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&profile, "user_id = ?", userID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fresh, buildErr := models.ProfileFromPayload(userID, payload, emailFromToken)
			if buildErr != nil {
				return buildErr
			}
			profile = *fresh
			created = true
			if createErr := tx.Create(&profile).Error; createErr != nil {
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("email already in use: %w", ErrConflict)
				}
				return createErr
			}
			return nil
		case err != nil:
			return err
		default:
			if applyErr := profile.ApplyPayload(payload, emailFromToken); applyErr != nil {
				return applyErr
			}
			return tx.Save(&profile).Error
		}
	})
	if err != nil {
		return nil, err
	}

	if created {
		log.Printf("✅ [PROFILE] Created profile for %s", userID)
		if s.emailSender != nil {
			s.emailSender.SendWelcome(profile.Email, profile.FirstName)
		}
	}
	return &profile, nil
}

// Update is the PUT /api/profiles/me semantics: merge only, 404 when the
// profile does not exist yet.
func (s *ProfileService) Update(ctx context.Context, userID string, payload map[string]interface{}, emailFromToken string) (*models.Profile, error) {
	var profile models.Profile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
			}
			return err
		}
		if err := profile.ApplyPayload(payload, emailFromToken); err != nil {
			return err
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Delete removes the caller's profile. Matches go first so the foreign key
// is never left dangling mid-transaction.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
			}
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Match{}).Error; err != nil {
			return err
		}
		return tx.Delete(&profile).Error
	})
}
