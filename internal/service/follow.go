// internal/service/follow.go
package service

import (
	"context"
	"errors"
	"fmt"

	"netshots-service/pkg/models"

	"gorm.io/gorm"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow creates the follower→target edge. Following yourself is a
// validation failure, a missing target is 404, and an existing edge is a
// no-op success (AlreadyFollowing=true).
func (s *FollowService) Follow(ctx context.Context, followerID, targetID string) (alreadyFollowing bool, err error) {
	if followerID == targetID {
		return false, &models.ValidationError{Reason: "Cannot follow yourself"}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.Profile
		if err := tx.First(&target, "user_id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("target user %s: %w", targetID, ErrNotFound)
			}
			return err
		}

		var existing models.Follow
		err := tx.First(&existing, "follower_id = ? AND following_id = ?", followerID, targetID).Error
		if err == nil {
			alreadyFollowing = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.Follow{FollowerID: followerID, FollowingID: targetID}).Error
	})
	return alreadyFollowing, err
}

// Unfollow deletes the edge; a missing edge is 404.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		if err := tx.First(&existing, "follower_id = ? AND following_id = ?", followerID, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("not following %s: %w", targetID, ErrNotFound)
			}
			return err
		}
		return tx.Where("follower_id = ? AND following_id = ?", followerID, targetID).
			Delete(&models.Follow{}).Error
	})
}

// IsFollowing is a pure existence check.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Followers returns the ids of everyone following userID.
func (s *FollowService) Followers(ctx context.Context, userID string) ([]string, error) {
	var edges []models.Follow
	if err := s.db.WithContext(ctx).Where("following_id = ?", userID).Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FollowerID)
	}
	return ids, nil
}

// Following returns the ids of everyone userID follows.
func (s *FollowService) Following(ctx context.Context, userID string) ([]string, error) {
	var edges []models.Follow
	if err := s.db.WithContext(ctx).Where("follower_id = ?", userID).Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FollowingID)
	}
	return ids, nil
}
