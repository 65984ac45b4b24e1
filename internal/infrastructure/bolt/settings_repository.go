package bolt

import (
	"fmt"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo stores the single organization settings record under the
// "organizationSettings" key. Open seeds the default on first run, so Get
// always has a record to return.
type SettingsRepo struct {
	store *Store
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(store *Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Get returns the current settings record.
func (r *SettingsRepo) Get() (entity.OrganizationSettings, error) {
	settings := entity.DefaultOrganizationSettings()
	if _, err := r.store.getJSON(keyOrganizationSettings, &settings); err != nil {
		return entity.OrganizationSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update replaces the record wholesale.
func (r *SettingsRepo) Update(settings entity.OrganizationSettings) error {
	if err := r.store.putJSON(keyOrganizationSettings, settings); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
