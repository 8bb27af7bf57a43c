// Package config tests settings loading, defaults, and env overrides.
// Related: internal/config/config.go
// Tags: config, settings, env-vars, validation
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Timer", s.DefaultTitle)
	assert.Equal(t, int64(5), s.MinDelay)
	assert.Equal(t, "normal", s.Urgency)
	assert.Equal(t, "visual", s.NotifyType)
	assert.Equal(t, "", s.SoundFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SNOOZE_DEFAULT_TITLE", "Reminder")
	t.Setenv("SNOOZE_MIN_DELAY", "30")
	t.Setenv("SNOOZE_URGENCY", "critical")
	t.Setenv("SNOOZE_NOTIFY_TYPE", "both")
	t.Setenv("SNOOZE_SOUND_FILE", "/tmp/ding.wav")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Reminder", s.DefaultTitle)
	assert.Equal(t, int64(30), s.MinDelay)
	assert.Equal(t, "critical", s.Urgency)
	assert.Equal(t, "both", s.NotifyType)
	assert.Equal(t, "/tmp/ding.wav", s.SoundFile)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"bad urgency":      {key: "SNOOZE_URGENCY", value: "shouty"},
		"bad notify type":  {key: "SNOOZE_NOTIFY_TYPE", value: "smoke-signal"},
		"zero min delay":   {key: "SNOOZE_MIN_DELAY", value: "0"},
		"empty title":      {key: "SNOOZE_DEFAULT_TITLE", value: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(test.key, test.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation")
		})
	}
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()

	expectedKeys := []string{"default_title", "min_delay", "urgency", "notify_type", "sound_file"}
	for _, key := range expectedKeys {
		assert.Contains(t, defaults, key)
	}
	assert.Equal(t, DefaultTitle, defaults["default_title"])
	assert.Equal(t, int64(DefaultMinDelay), defaults["min_delay"])
}
