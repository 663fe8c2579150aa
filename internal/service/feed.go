// internal/service/feed.go
package service

import (
	"context"
	"strings"

	"netshots-service/pkg/models"

	"gorm.io/gorm"
)

// FeedItem is one aggregated entry: a match joined with its owner's
// lightweight profile projection.
type FeedItem struct {
	Match *models.Match
	User  models.UserSummary
}

type FeedService struct {
	db      *gorm.DB
	follows *FollowService
}

func NewFeedService(db *gorm.DB, follows *FollowService) *FeedService {
	return &FeedService{db: db, follows: follows}
}

const (
	DefaultFeedLimit = 50
	maxFeedLimit     = 200
)

// Feed returns matches from followed users, newest first, paginated. A user
// following nobody gets an empty feed without touching the matches table.
func (s *FeedService) Feed(ctx context.Context, callerID string, limit, offset int) ([]FeedItem, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	followingIDs, err := s.follows.Following(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return []FeedItem{}, nil
	}

	var matches []*models.Match
	err = s.db.WithContext(ctx).
		Where("user_id IN ?", followingIDs).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	// Batch-load the owner profiles instead of one lookup per match.
	ownerIDs := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			ownerIDs = append(ownerIDs, m.UserID)
		}
	}

	var profiles []*models.Profile
	if len(ownerIDs) > 0 {
		if err := s.db.WithContext(ctx).Where("user_id IN ?", ownerIDs).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}
	byID := make(map[string]*models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.UserID] = p
	}

	items := make([]FeedItem, 0, len(matches))
	for _, m := range matches {
		owner, ok := byID[m.UserID]
		if !ok {
			// Orphaned match; referential integrity should prevent this,
			// but a broken row must not break the whole feed.
			continue
		}
		items = append(items, FeedItem{Match: m, User: owner.Summary()})
	}
	return items, nil
}

// SearchUsers does a case-insensitive substring match on first or last name,
// excluding the caller. An empty query is an empty result, not an error.
func (s *FeedService) SearchUsers(ctx context.Context, callerID, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserSummary{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var profiles []*models.Profile
	err := s.db.WithContext(ctx).
		Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?) AND user_id <> ?",
			pattern, pattern, callerID).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	results := make([]models.UserSummary, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, p.Summary())
	}
	return results, nil
}
