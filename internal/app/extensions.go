package app

import (
	"log/slog"

	"scrap/internal/embedder"
	"scrap/internal/platform"
)

// extensions answers the engine messages that need the desktop: titles,
// the clipboard, dialogs and shutdown.
type extensions struct {
	native    platform.Window
	clipboard Clipboard
	dialogs   Dialogs
	title     string
	log       *slog.Logger
}

func (x *extensions) handle(env embedder.Envelope) []embedder.Event {
	switch msg := env.Message.(type) {
	case embedder.ChangePageTitle:
		title := x.title
		if msg.Title != "" {
			title = msg.Title + " - " + x.title
		}
		x.native.SetTitle(title)
	case embedder.SetClipboardContents:
		if err := x.clipboard.WriteText(msg.Text); err != nil {
			x.log.Warn("write clipboard", "error", err)
		}
	case embedder.GetClipboardContents:
		text, err := x.clipboard.ReadText()
		if err != nil {
			x.log.Warn("read clipboard", "error", err)
			return nil
		}
		return []embedder.Event{embedder.ClipboardContents{Text: text}}
	case embedder.Alert:
		x.dialogs.Alert(x.title, msg.Text)
	case embedder.SelectFiles:
		paths, err := x.dialogs.SelectFiles(msg.Filters, msg.Multiple)
		if err != nil {
			x.log.Warn("select files", "error", err)
			paths = nil
		}
		return []embedder.Event{embedder.SelectedFiles{Paths: paths}}
	case embedder.LoadStart:
		x.log.Debug("load started", "browser", env.Browser)
	case embedder.LoadComplete:
		x.log.Debug("load complete", "browser", env.Browser)
	case embedder.Status:
		x.log.Debug("status", "browser", env.Browser, "text", msg.Text)
	case embedder.Shutdown:
		x.log.Info("engine shut down")
		x.native.Close()
	}
	return nil
}
