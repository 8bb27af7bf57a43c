package notify

// Urgency classifies a notification for the desktop notifier.
type Urgency string

const (
	// UrgencyLow marks a notification as low priority
	UrgencyLow Urgency = "low"
	// UrgencyNormal is the default priority
	UrgencyNormal Urgency = "normal"
	// UrgencyCritical marks a notification as critical
	UrgencyCritical Urgency = "critical"
)

// ValidUrgency checks if the given string is a valid urgency level
func ValidUrgency(s string) bool {
	switch Urgency(s) {
	case UrgencyLow, UrgencyNormal, UrgencyCritical:
		return true
	default:
		return false
	}
}

// OutputType represents the notification output type
type OutputType string

const (
	// OutputSound sends only an audible notification
	OutputSound OutputType = "sound"
	// OutputVisual sends only a visual notification
	OutputVisual OutputType = "visual"
	// OutputBoth sends both sound and visual notifications
	OutputBoth OutputType = "both"
)

// ValidOutputType checks if the given string is a valid output type
func ValidOutputType(s string) bool {
	switch OutputType(s) {
	case OutputSound, OutputVisual, OutputBoth:
		return true
	default:
		return false
	}
}

// Notification represents a single notification to present
type Notification struct {
	// Title is the notification title (e.g., "Timer")
	Title string

	// Message is the notification body text
	Message string

	// Urgency is the notifier urgency level
	Urgency Urgency
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, message string, urgency Urgency) Notification {
	return Notification{
		Title:   title,
		Message: message,
		Urgency: urgency,
	}
}
