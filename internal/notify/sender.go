package notify

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Sender defines the interface for platform-specific notification senders
type Sender interface {
	// SendVisual sends a visual notification to the OS notification system
	SendVisual(n Notification) error

	// SendSound plays an audio notification
	SendSound(soundFile string) error

	// VisualCommand returns the argv that SendVisual would execute, so a
	// detached script can run the identical invocation after its sleep.
	VisualCommand(n Notification) []string

	// VisualAvailable returns true if visual notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound notifications are supported
	SoundAvailable() bool
}

// NewSender creates a platform-specific notification sender based on the
// current OS. For unsupported platforms, it returns a no-op sender.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &noopSender{}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FallbackVisualCommand is the canonical notifier invocation, used when no
// platform sender can supply one: urgency flag, title, and the message only
// when non-empty.
func FallbackVisualCommand(n Notification) []string {
	argv := []string{"notify-send", "-u", string(n.Urgency), n.Title}
	if n.Message != "" {
		argv = append(argv, n.Message)
	}
	return argv
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (s *noopSender) SendVisual(_ Notification) error       { return nil }
func (s *noopSender) SendSound(_ string) error              { return nil }
func (s *noopSender) VisualCommand(n Notification) []string { return FallbackVisualCommand(n) }
func (s *noopSender) VisualAvailable() bool                 { return false }
func (s *noopSender) SoundAvailable() bool                  { return false }

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks if the sound file exists and has a supported
// format. Returns the validated path to use, or empty string to fall back to
// the platform default (with a logged warning).
func ValidateSoundFile(soundFile string) string {
	if soundFile == "" {
		return "" // No custom file, use default
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("custom sound file not found, falling back to default", "path", soundFile)
		} else {
			slog.Warn("cannot access custom sound file, falling back to default", "path", soundFile, "error", err)
		}
		return ""
	}

	if info.IsDir() {
		slog.Warn("sound path is a directory, not a file", "path", soundFile)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		slog.Warn("unsupported audio format, falling back to default", "ext", ext, "path", soundFile)
		return ""
	}

	return soundFile
}
