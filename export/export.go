// Package export renders a deck as a single self-contained HTML
// document. The output needs no network and no build step: styling,
// navigation, and quiz reveal logic are all inline, so the file can be
// opened straight from disk. The sync server serves the same document
// at its root route.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"github.com/lixenwraith/deckplay/deck"
)

//go:embed deck.html.tmpl
var deckTemplate string

var tmpl = template.Must(template.New("deck").Parse(deckTemplate))

// Render produces the HTML document for the deck.
func Render(d *deck.Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("failed to render deck template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the deck and writes it atomically (temp file →
// rename), so an interrupted export never leaves a truncated document
// at the target path.
func WriteFile(path string, d *deck.Deck) error {
	data, err := Render(d)
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	file, err := os.OpenFile(tempPath, os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	file.Close()

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
