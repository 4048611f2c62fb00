// Package messages collects the conventions keyhelp uses to report outcomes.
//
// # Library packages (catalog, notation, search, config)
//
// Return plain Go errors. Add context with WrapError, which keeps the chain
// for errors.Is:
//
//	return nil, messages.WrapError(err, "reading catalog %s", path)
//
// Sentinel errors such as catalog.ErrUnknownCategory are exported for
// errors.Is checks. Library code never builds user facing text.
//
// # CLI (internal/cli)
//
// Errors bubble up from RunE and cobra prints them. Load failures for the
// catalog or config abort before the TUI starts.
//
// # TUI (internal/app, internal/components)
//
// User actions that can fail (copying a notation, for example) return a
// tea.Cmd producing a types.StatusMsg, built with the helpers here:
//
//	if err := clip.Copy(item.Notation); err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
//	return messages.SuccessCmd("Copied %s", item.Notation)
//
// The status bar shows the message and clears it after
// components.StatusBarDisplayDuration. Failures are also logged through
// internal/logging since the terminal is owned by the TUI.
package messages
