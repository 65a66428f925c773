package agenda

import "github.com/Leganyst/room-booking/internal/utils"

// Notifier receives user-facing notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// LogNotifier writes notifications to the shared logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { utils.Logger.Info(msg) }
func (LogNotifier) Error(msg string)   { utils.Logger.Error(msg) }

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
