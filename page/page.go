// Package page renders the Collatz conjecture page.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ardanlabs/collatz/collatz"
)

// MarkerStyle is the list marker used for sequence items.
type MarkerStyle string

// Supported marker styles.
const (
	MarkerSquare MarkerStyle = "square"
	MarkerCircle MarkerStyle = "circle"
)

// DefaultMarker is used when no marker style is configured.
const DefaultMarker = MarkerSquare

// ParseMarkerStyle returns the marker style named s. An empty s gives
// DefaultMarker.
func ParseMarkerStyle(s string) (MarkerStyle, error) {
	switch m := MarkerStyle(s); m {
	case "":
		return DefaultMarker, nil
	case MarkerSquare, MarkerCircle:
		return m, nil
	}
	return "", fmt.Errorf("unknown marker style %q", s)
}

// Options are the composition time settings of a Page.
type Options struct {
	Number   int64
	Link     string // reference for the conjecture
	Marker   MarkerStyle
	MaxSteps int // 0 means collatz.MaxSteps, negative means no limit
}

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page is the conjecture page: an explanation on the left and the sequence
// on the right.
type Page struct {
	link    string
	marker  MarkerStyle
	collatz *Collatz
}

// New composes a page. The sequence is computed here. An unknown marker
// style is replaced by DefaultMarker.
func New(opts Options) *Page {
	marker, err := ParseMarkerStyle(string(opts.Marker))
	if err != nil {
		marker = DefaultMarker
	}
	maxSteps := opts.MaxSteps
	switch {
	case maxSteps == 0:
		maxSteps = collatz.MaxSteps
	case maxSteps < 0:
		maxSteps = 0
	}
	return &Page{
		link:    opts.Link,
		marker:  marker,
		collatz: NewCollatz(opts.Number, collatz.WithMaxSteps(maxSteps)),
	}
}

// Component returns the sequence component.
func (p *Page) Component() *Collatz {
	return p.collatz
}

// Err returns the error that prevents the sequence from being shown.
func (p *Page) Err() error {
	return p.collatz.Err()
}

type pageData struct {
	Link   string
	Marker MarkerStyle
	Number int64
	Items  []Item
	Error  string
}

// Render writes the page as HTML. When the sequence could not be computed the
// list is replaced by the error message.
func (p *Page) Render(w io.Writer) error {
	data := pageData{
		Link:   p.link,
		Marker: p.marker,
		Number: p.collatz.Number(),
	}
	if err := p.collatz.Err(); err != nil {
		data.Error = err.Error()
	} else {
		data.Items = p.collatz.Items()
	}

	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}
