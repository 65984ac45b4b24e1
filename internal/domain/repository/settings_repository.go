package repository

import "github.com/udhaydurai/donor-breeze/internal/domain/entity"

// SettingsRepository is the persistence port for the single organization
// settings record. Get never fails with "missing": the store seeds the
// hard-coded default on first run.
type SettingsRepository interface {
	Get() (entity.OrganizationSettings, error)
	// Update replaces the record wholesale.
	Update(settings entity.OrganizationSettings) error
}
