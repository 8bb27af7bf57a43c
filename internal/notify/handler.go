package notify

import (
	"errors"
	"fmt"
)

// Handler dispatches a notification through the platform sender according to
// the configured output type. It is used by the foreground --wait mode; the
// detached path embeds the sender's VisualCommand into its script instead.
type Handler struct {
	output    OutputType
	soundFile string
	sender    Sender
}

// NewHandler creates a handler for the given output type and optional custom
// sound file.
func NewHandler(output OutputType, soundFile string) *Handler {
	return &Handler{
		output:    output,
		soundFile: soundFile,
		sender:    NewSender(),
	}
}

// NewHandlerWithSender creates a handler with a custom sender (for testing).
func NewHandlerWithSender(output OutputType, soundFile string, sender Sender) *Handler {
	return &Handler{
		output:    output,
		soundFile: soundFile,
		sender:    sender,
	}
}

// Sender returns the handler's platform sender.
func (h *Handler) Sender() Sender {
	return h.sender
}

// Send presents the notification: visual, sound, or both. Partial failures
// are joined so one channel failing does not suppress the other.
func (h *Handler) Send(n Notification) error {
	var errs []error

	if h.output == OutputVisual || h.output == OutputBoth {
		if err := h.sender.SendVisual(n); err != nil {
			errs = append(errs, fmt.Errorf("visual notification failed: %w", err))
		}
	}
	if h.output == OutputSound || h.output == OutputBoth {
		if err := h.sender.SendSound(h.soundFile); err != nil {
			errs = append(errs, fmt.Errorf("sound notification failed: %w", err))
		}
	}

	return errors.Join(errs...)
}
