package app

import (
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

// Clipboard is the system clipboard as the shell sees it.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// systemClipboard talks to the display server directly when it can and
// falls back to the platform clipboard commands otherwise.
type systemClipboard struct {
	once   sync.Once
	native bool
}

func (c *systemClipboard) init() {
	c.once.Do(func() {
		c.native = clipboard.Init() == nil
	})
}

func (c *systemClipboard) ReadText() (string, error) {
	c.init()
	if c.native {
		return string(clipboard.Read(clipboard.FmtText)), nil
	}
	return atotto.ReadAll()
}

func (c *systemClipboard) WriteText(text string) error {
	c.init()
	if c.native {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
	return atotto.WriteAll(text)
}
