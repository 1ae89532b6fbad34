package face

import "fmt"

// Pupil selects whether an open eye shows its pupil.
type Pupil uint8

const (
	PupilShown Pupil = iota
	PupilHidden
)

// Eyes is either open, with a pupil setting per eye, or closed.
// The zero value is open with both pupils shown.
type Eyes struct {
	closed      bool
	left, right Pupil
}

// Open returns open eyes with the given pupils.
func Open(left, right Pupil) Eyes {
	return Eyes{left: left, right: right}
}

// Closed is a pair of closed eyes drawn as horizontal strokes.
var Closed = Eyes{closed: true}

// IsClosed reports whether the eyes are closed.
func (e Eyes) IsClosed() bool { return e.closed }

// Pupils returns the left and right pupil settings. Closed eyes report
// both pupils hidden.
func (e Eyes) Pupils() (left, right Pupil) {
	if e.closed {
		return PupilHidden, PupilHidden
	}
	return e.left, e.right
}

func (e Eyes) String() string {
	if e.closed {
		return "closed"
	}
	return fmt.Sprintf("open(%s,%s)", e.left, e.right)
}

func (p Pupil) String() string {
	if p == PupilHidden {
		return "hidden"
	}
	return "shown"
}

// Brows is the eyebrow shape. The zero value is [BrowsFlat].
type Brows uint8

const (
	BrowsFlat Brows = iota
	BrowsUp
	BrowsDown
)

func (b Brows) String() string {
	switch b {
	case BrowsUp:
		return "up"
	case BrowsDown:
		return "down"
	default:
		return "flat"
	}
}

// Mouth is the mouth shape. The zero value is [MouthW].
type Mouth uint8

const (
	MouthW Mouth = iota
	MouthO
	MouthSmile
	MouthAngry
)

func (m Mouth) String() string {
	switch m {
	case MouthO:
		return "o"
	case MouthSmile:
		return "smile"
	case MouthAngry:
		return "angry"
	default:
		return "w"
	}
}

// Config is one combination of eyes, brows and mouth. It is a value type;
// the With methods return modified copies.
type Config struct {
	Eyes  Eyes
	Brows Brows
	Mouth Mouth
}

// WithEyes returns a copy of c with the given eyes.
func (c Config) WithEyes(e Eyes) Config {
	c.Eyes = e
	return c
}

// WithBrows returns a copy of c with the given brows.
func (c Config) WithBrows(b Brows) Config {
	c.Brows = b
	return c
}

// WithMouth returns a copy of c with the given mouth.
func (c Config) WithMouth(m Mouth) Config {
	c.Mouth = m
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("eyes=%s brows=%s mouth=%s", c.Eyes, c.Brows, c.Mouth)
}
