package service

import (
	"context"
	"path/filepath"
	"testing"

	"netshots-service/internal/store"
	"netshots-service/pkg/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the real schema so the
// query composition can be exercised without a running Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "netshots.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, uid, firstName, lastName string) *models.Profile {
	t.Helper()

	profiles := NewProfileService(db, nil)
	p, err := profiles.CreateOrUpdate(context.Background(), uid, map[string]interface{}{
		"firstName": firstName,
		"lastName":  lastName,
		"birthDate": "1990-01-01",
		"gender":    "other",
	}, uid+"@example.com")
	require.NoError(t, err)
	return p
}

func seedMatch(t *testing.T, db *gorm.DB, ownerID, date string) *models.Match {
	t.Helper()

	matches := NewMatchService(db, nil)
	m, err := matches.Create(context.Background(), ownerID, map[string]interface{}{
		"date":    date,
		"picture": "p.jpg",
	})
	require.NoError(t, err)
	return m
}
