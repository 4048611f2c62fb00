package components

import (
	"github.com/renato0307/keyhelp/internal/types"
	"github.com/renato0307/keyhelp/internal/ui"
)

// StatusBar displays transient status messages (success, errors, info).
// Each message gets an id so a stale clear timer cannot wipe a newer one.
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{theme: theme}
}

// SetMessage shows msg and returns its id.
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) int {
	sb.messageID++
	sb.message = msg
	sb.messageType = msgType
	return sb.messageID
}

// ClearMessage clears the message if id is still the current one.
func (sb *StatusBar) ClearMessage(id int) {
	if id != sb.messageID {
		return
	}
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the text on display.
func (sb *StatusBar) Message() string {
	return sb.message
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

func (sb *StatusBar) View() string {
	return ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width)
}
