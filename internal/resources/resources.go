// Package resources serves the files the engine needs at startup from data
// compiled into the binary.
package resources

import (
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"path"

	"golang.org/x/crypto/blake2b"
)

// ErrUnknownResource is returned for a Kind outside the known set.
var ErrUnknownResource = errors.New("resources: unknown resource")

type Kind int

const (
	Preferences Kind = iota
	HSTSPreloadList
	SSLCertificates
	BadCertHTML
	NetErrorHTML
	UserAgentCSS
	EngineCSS
	PresentationalHintsCSS
	QuirksModeCSS
	RippyPNG
	DomainList
	BluetoothBlocklist
)

var files = map[Kind]string{
	Preferences:            "prefs.json",
	HSTSPreloadList:        "hsts_preload.json",
	SSLCertificates:        "certs",
	BadCertHTML:            "badcert.html",
	NetErrorHTML:           "neterror.html",
	UserAgentCSS:           "user-agent.css",
	EngineCSS:              "servo.css",
	PresentationalHintsCSS: "presentational-hints.css",
	QuirksModeCSS:          "quirks-mode.css",
	RippyPNG:               "rippy.png",
	DomainList:             "public_domains.txt",
	BluetoothBlocklist:     "gatt_blocklist.txt",
}

// Kinds lists every resource in a stable order.
func Kinds() []Kind {
	return []Kind{
		Preferences, HSTSPreloadList, SSLCertificates, BadCertHTML,
		NetErrorHTML, UserAgentCSS, EngineCSS, PresentationalHintsCSS,
		QuirksModeCSS, RippyPNG, DomainList, BluetoothBlocklist,
	}
}

func (k Kind) String() string {
	if name, ok := files[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//go:embed files
var embedded embed.FS

// Reader is what the engine uses to load resources.
type Reader interface {
	Read(kind Kind) ([]byte, error)
	SandboxAccessFiles() []string
	SandboxAccessDirs() []string
}

// Bundle is the compiled-in Reader.
type Bundle struct{}

func NewBundle() *Bundle { return &Bundle{} }

// Read returns a copy of the resource's bytes.
func (b *Bundle) Read(kind Kind) ([]byte, error) {
	name, ok := files[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownResource, int(kind))
	}
	data, err := embedded.ReadFile(path.Join("files", name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (b *Bundle) SandboxAccessFiles() []string { return nil }

func (b *Bundle) SandboxAccessDirs() []string { return nil }

// Digest hashes every resource, in Kinds order, into one hex string.
func (b *Bundle) Digest() (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	for _, kind := range Kinds() {
		data, err := b.Read(kind)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%s:%d:", kind, len(data))
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
