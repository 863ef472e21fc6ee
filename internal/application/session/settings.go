package session

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

// Settings are the persisted audio preferences
type Settings struct {
	SoundEnabled bool
	MusicEnabled bool
}

// DefaultSettings has every audio channel on
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, MusicEnabled: true}
}

// LoadSettings reads the audio flags; missing or unreadable keys stay on
func LoadSettings(store storage.Store, logger *log.Logger) Settings {
	settings := DefaultSettings()
	settings.SoundEnabled = readBool(store, logger, storage.KeySoundEnabled, true)
	settings.MusicEnabled = readBool(store, logger, storage.KeyMusicEnabled, true)
	return settings
}

// readBool returns fallback for missing keys; other failures are logged
func readBool(store storage.Store, logger *log.Logger, key string, fallback bool) bool {
	raw, err := store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return fallback
	}
	if err != nil {
		logger.Warn("store read failed", "key", key, "err", err)
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("malformed store value", "key", key, "value", raw)
		return fallback
	}
	return v
}
