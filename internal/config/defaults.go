package config

const (
	// DefaultTitle is the notification title used when none is supplied.
	DefaultTitle = "Timer"

	// DefaultMinDelay is the fallback delay in seconds.
	DefaultMinDelay = 5
)

// GetDefaults returns the default settings values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_title": DefaultTitle,
		"min_delay":     int64(DefaultMinDelay),
		"urgency":       "normal",
		"notify_type":   "visual",
		"sound_file":    "",
	}
}
