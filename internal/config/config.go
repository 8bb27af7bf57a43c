// Package config provides the snooze settings: built-in defaults overridden
// by SNOOZE_* environment variables. There is deliberately no configuration
// file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Settings holds the runtime preferences for snooze.
type Settings struct {
	// DefaultTitle is the notification title used when none is supplied.
	DefaultTitle string `koanf:"default_title" validate:"required"`

	// MinDelay is the delay in seconds applied when no duration tokens are
	// given (or they sum to zero).
	MinDelay int64 `koanf:"min_delay" validate:"min=1"`

	// Urgency is passed to the desktop notifier: low, normal or critical.
	Urgency string `koanf:"urgency" validate:"oneof=low normal critical"`

	// NotifyType selects sound, visual or both for the foreground --wait
	// mode. The detached default path is always visual.
	NotifyType string `koanf:"notify_type" validate:"oneof=sound visual both"`

	// SoundFile is an optional custom sound played in --wait mode.
	SoundFile string `koanf:"sound_file"`
}

// Load builds the settings from defaults and environment overrides.
// Priority: SNOOZE_* environment variables > defaults.
func Load() (*Settings, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider("SNOOZE_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &s, nil
}

// envTransform converts environment variable names to settings keys
// Example: SNOOZE_MIN_DELAY -> min_delay
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SNOOZE_"))
}
