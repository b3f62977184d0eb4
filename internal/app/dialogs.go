package app

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// Dialogs shows the modal dialogs pages can ask for.
type Dialogs interface {
	Alert(title, text string)
	// SelectFiles returns no paths and no error when the user cancels.
	SelectFiles(filters []string, multiple bool) ([]string, error)
}

type nativeDialogs struct{}

func (nativeDialogs) Alert(title, text string) {
	dialog.Message("%s", text).Title(title).Info()
}

// SelectFiles only ever returns one path; the native picker has no
// multiple selection.
func (nativeDialogs) SelectFiles(filters []string, multiple bool) ([]string, error) {
	b := dialog.File().Title("Open")
	if len(filters) > 0 {
		b = b.Filter("Web pages", filters...)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return []string{filepath.Clean(path)}, nil
}
