package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"goldsite/internal/models"
)

type SiteSettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key string, value string) error
}

type siteSettingsRepository struct {
	db *sql.DB
}

func NewSiteSettingsRepository(db *sql.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

// GetAll returns every known setting key. Stored values override the
// defaults; keys with no row fall back to models.SettingDefaults.
func (r *siteSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string, len(models.SettingDefaults))
	for k, v := range models.SettingDefaults {
		settings[k] = v
	}

	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM site_settings ORDER BY key`)
	if err != nil {
		log.Printf("Error listing site settings: %v", err)
		return nil, fmt.Errorf("failed to list site settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Printf("Error scanning site setting: %v", err)
			return nil, fmt.Errorf("failed to scan site setting: %w", err)
		}
		// Rows left behind by retired keys are ignored.
		if models.KnownSettingKey(key) {
			settings[key] = value
		}
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating site settings: %v", err)
		return nil, fmt.Errorf("error iterating site settings: %w", err)
	}

	return settings, nil
}

func (r *siteSettingsRepository) Upsert(ctx context.Context, key string, value string) error {
	if !models.KnownSettingKey(key) {
		return fmt.Errorf("unknown setting key: %s", key)
	}

	query := `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW() AT TIME ZONE 'UTC')
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW() AT TIME ZONE 'UTC'
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		log.Printf("Error upserting site setting %s: %v", key, err)
		return fmt.Errorf("failed to update site setting: %w", err)
	}

	return nil
}
