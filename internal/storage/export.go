package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"orghub/internal/common"
)

// ExportAll bundles the raw stored value of every known key into a single
// JSON object. Values are passed through as the already-serialized strings;
// the export never re-structures collection contents.
func (s *Store) ExportAll(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	blob := make(map[string]string, len(CollectionKeys))
	for _, key := range CollectionKeys {
		raw, ok, err := s.readRaw(ctx, key)
		if err != nil {
			return "", err
		}
		if ok {
			blob[key] = raw
		}
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	slog.Info("exported database", "keys", len(blob))
	return string(data), nil
}

// RestoreAll writes every recognized key in the blob back verbatim.
// Unrecognized keys are ignored. When no recognized key could be written
// the store is left untouched and a RestoreError names what was missing or
// unreadable.
func (s *Store) RestoreAll(ctx context.Context, blob string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return fmt.Errorf("%w: restore blob is not a JSON object of strings: %v", common.ErrInvalidInput, err)
	}

	restoreErr := &common.RestoreError{}
	pending := make(map[string]string, len(parsed))
	for _, key := range CollectionKeys {
		raw, ok := parsed[key]
		if !ok {
			restoreErr.MissingKeys = append(restoreErr.MissingKeys, key)
			continue
		}
		if !json.Valid([]byte(raw)) {
			restoreErr.InvalidKeys = append(restoreErr.InvalidKeys, key)
			continue
		}
		pending[key] = raw
	}

	if len(pending) == 0 {
		return restoreErr
	}

	for key, raw := range pending {
		if err := s.writeRaw(ctx, key, raw); err != nil {
			return err
		}
	}
	if len(restoreErr.InvalidKeys) > 0 {
		slog.Warn("restore skipped unreadable keys", "keys", restoreErr.InvalidKeys)
	}

	slog.Info("restored database", "keys", len(pending))
	return nil
}

// ClearAll removes every known collection key.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for _, key := range CollectionKeys {
		if err := s.deleteRaw(ctx, key); err != nil {
			return err
		}
	}
	slog.Info("cleared all collections")
	return nil
}
