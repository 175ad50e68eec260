package storage

import (
	"context"

	"orghub/internal/model"
)

// GetAccountSettings returns the settings singleton, or the defaults when
// none have been saved yet.
func (s *Store) GetAccountSettings(ctx context.Context) (model.AccountSettings, error) {
	var settings model.AccountSettings
	ok, err := getSingleton(ctx, s, KeySettings, &settings)
	if err != nil {
		return model.AccountSettings{}, err
	}
	if !ok {
		return model.DefaultAccountSettings(), nil
	}
	if settings.Currency == "" {
		settings.Currency = model.DefaultAccountSettings().Currency
	}
	return settings, nil
}

// SaveAccountSettings replaces the settings singleton.
func (s *Store) SaveAccountSettings(ctx context.Context, settings model.AccountSettings) error {
	if err := validateSettings(&settings); err != nil {
		return err
	}
	return saveSingleton(ctx, s, KeySettings, settings)
}
