package face

import "strings"

// Logical canvas size shared by every document. Rasterizers scale from this
// canvas to the requested pixel size.
const (
	CanvasWidth  = 200
	CanvasHeight = 120
)

// Document is SVG markup for one face on the logical canvas.
type Document string

func (d Document) String() string { return string(d) }

// Stroke colors. Flat brows use their own color so they stand apart from
// the rest of the line work.
const (
	inkStroke       = "#000000"
	flatBrowsStroke = "#1E90FF"
)

const (
	svgOpen  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 120">`
	svgClose = `</svg>`

	leftPupil  = `<circle cx="65" cy="60" r="8"/>`
	rightPupil = `<circle cx="135" cy="60" r="8"/>`

	closedEyes = `<line x1="45" y1="60" x2="85" y2="60" stroke="` + inkStroke + `" stroke-width="3"/>` +
		`<line x1="115" y1="60" x2="155" y2="60" stroke="` + inkStroke + `" stroke-width="3"/>`

	browsUp = `<line x1="50" y1="35" x2="75" y2="42" stroke="` + inkStroke + `" stroke-width="3"/>` +
		`<line x1="150" y1="35" x2="125" y2="42" stroke="` + inkStroke + `" stroke-width="3"/>`
	browsDown = `<line x1="70" y1="35" x2="50" y2="42" stroke="` + inkStroke + `" stroke-width="3"/>` +
		`<line x1="125" y1="35" x2="150" y2="42" stroke="` + inkStroke + `" stroke-width="3"/>`
	browsFlat = `<line x1="55" y1="35" x2="75" y2="35" stroke="` + flatBrowsStroke + `" stroke-width="3"/>` +
		`<line x1="125" y1="35" x2="145" y2="35" stroke="` + flatBrowsStroke + `" stroke-width="3"/>`

	mouthW     = `<path d="M135 130 Q145 140 150 130 Q155 140 165 130" stroke="` + inkStroke + `" stroke-width="3" fill="none"/>`
	mouthO     = `<circle cx="100" cy="95" r="6" stroke="` + inkStroke + `" stroke-width="2" fill="none"/>`
	mouthSmile = `<path d="M90 85 Q100 95 110 85" stroke="` + inkStroke + `" stroke-width="2" fill="none"/>`
	mouthAngry = `<path d="M80 95 Q100 85 120 95" stroke="` + inkStroke + `" stroke-width="2" fill="none"/>`

	nose = `<circle cx="100" cy="80" r="3"/>`

	whiskers = `<line x1="30" y1="70" x2="45" y2="73" stroke="` + inkStroke + `" stroke-width="2"/>` +
		`<line x1="30" y1="80" x2="45" y2="80" stroke="` + inkStroke + `" stroke-width="2"/>` +
		`<line x1="30" y1="90" x2="45" y2="87" stroke="` + inkStroke + `" stroke-width="2"/>` +
		`<line x1="170" y1="70" x2="155" y2="73" stroke="` + inkStroke + `" stroke-width="2"/>` +
		`<line x1="170" y1="80" x2="155" y2="80" stroke="` + inkStroke + `" stroke-width="2"/>` +
		`<line x1="170" y1="90" x2="155" y2="87" stroke="` + inkStroke + `" stroke-width="2"/>`
)

// eyesFragment returns the markup for e. An open eye with a hidden pupil
// draws nothing.
func eyesFragment(e Eyes) string {
	if e.closed {
		return closedEyes
	}
	var s string
	if e.left == PupilShown {
		s += leftPupil
	}
	if e.right == PupilShown {
		s += rightPupil
	}
	return s
}

func browsFragment(b Brows) string {
	switch b {
	case BrowsUp:
		return browsUp
	case BrowsDown:
		return browsDown
	default:
		return browsFlat
	}
}

func mouthFragment(m Mouth) string {
	switch m {
	case MouthO:
		return mouthO
	case MouthSmile:
		return mouthSmile
	case MouthAngry:
		return mouthAngry
	default:
		return mouthW
	}
}

// Document assembles the SVG markup for c. Fragments are written in a
// fixed order: open tag, eyes, brows, mouth, nose, whiskers, close tag.
// The output is deterministic for a given configuration.
func (c Config) Document() Document {
	parts := [...]string{
		svgOpen,
		eyesFragment(c.Eyes),
		browsFragment(c.Brows),
		mouthFragment(c.Mouth),
		nose,
		whiskers,
		svgClose,
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p)
	}
	return Document(b.String())
}
