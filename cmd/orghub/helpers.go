package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"orghub/internal/provider"
	"orghub/internal/storage"
)

// openStore opens the configured database.
func openStore() (*storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "orghub", "orghub.db")
	}
	return storage.Open(dbPath)
}

// openData opens the store and loads a refreshed provider over it.
func openData(ctx context.Context) (*storage.Store, *provider.Provider, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	data := provider.New(store)
	if err := data.Refresh(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, data, nil
}

// parseAmount parses a positive decimal amount argument.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

// parseDateFlag parses a YYYY-MM-DD date flag, defaulting to today.
func parseDateFlag(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", raw, err)
	}
	return date, nil
}
