package types

import (
	"time"
)

// TickMsg drives the animation. The app schedules one every PollInterval.
type TickMsg struct {
	Time time.Time
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeSuccess:
		return "success"
	case MessageTypeError:
		return "error"
	default:
		return "info"
	}
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status bar if MessageID still matches the
// message on display.
type ClearStatusMsg struct {
	MessageID int
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
