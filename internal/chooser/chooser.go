// Package chooser abstracts "ask the operator for a directory" behind a
// small interface so the pipeline can run headlessly in tests or when
// directories are given as arguments, while the interactive tools open the
// platform's native folder dialog.
package chooser

import (
	"github.com/pkg/errors"
	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the operator dismisses a prompt without
// choosing a directory. Callers treat it as a clean exit, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// Chooser prompts the operator for a single directory and returns its
// absolute path, or ErrCancelled when the prompt is dismissed.
type Chooser interface {
	Choose(title string) (string, error)
}

// Native opens the operating system's directory-picker dialog. The dialog
// resources live only for the duration of the Choose call.
type Native struct{}

// Choose shows the native dialog with the given title.
func (Native) Choose(title string) (string, error) {
	dir, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "directory dialog")
	}
	if dir == "" {
		return "", ErrCancelled
	}
	return dir, nil
}

// Fixed satisfies Chooser with a preset path and no interaction. An empty
// Fixed behaves like a cancelled dialog.
type Fixed string

// Choose returns the preset path, ignoring the title.
func (f Fixed) Choose(string) (string, error) {
	if f == "" {
		return "", ErrCancelled
	}
	return string(f), nil
}
