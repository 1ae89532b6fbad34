package face

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/whisker/pkg/errors"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input   string
		want    Expression
		wantErr bool
	}{
		{"neutral", Neutral, false},
		{"Neutral", Neutral, false},
		{"normal", Neutral, false},
		{" happy ", Happy, false},
		{"ANGRY", Angry, false},
		{"sad", Neutral, true},
		{"", Neutral, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExpression(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExpression(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidExpression) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidExpression)
			}
			if got != tt.want {
				t.Errorf("ParseExpression(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpressionText(t *testing.T) {
	for _, e := range Expressions() {
		text, err := e.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", e, err)
		}
		var back Expression
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != e {
			t.Errorf("text round trip = %v, want %v", back, e)
		}
	}

	if _, err := Expression(42).MarshalText(); err == nil {
		t.Error("MarshalText of invalid expression should fail")
	}
	if Expression(42).String() != "unknown" {
		t.Errorf("String() of invalid expression = %q", Expression(42).String())
	}
}

func TestConfigFor(t *testing.T) {
	neutral := ConfigFor(Neutral)
	if neutral != (Config{}) {
		t.Errorf("ConfigFor(Neutral) = %v, want defaults", neutral)
	}
	if neutral.Eyes.IsClosed() || neutral.Brows != BrowsFlat || neutral.Mouth != MouthW {
		t.Errorf("neutral defaults wrong: %v", neutral)
	}

	angry := ConfigFor(Angry)
	if angry.Mouth != MouthAngry || angry.Brows != BrowsUp {
		t.Errorf("ConfigFor(Angry) = %v", angry)
	}

	// Happy has no glyph of its own and shares Angry's configuration.
	if ConfigFor(Happy) != angry {
		t.Errorf("ConfigFor(Happy) = %v, want %v", ConfigFor(Happy), angry)
	}
}

func TestDocumentFragmentOrder(t *testing.T) {
	doc := string(Config{}.Document())

	order := []string{svgOpen, leftPupil, rightPupil, browsFlat, mouthW, nose, whiskers, svgClose}
	pos := 0
	for _, frag := range order {
		i := strings.Index(doc[pos:], frag)
		if i < 0 {
			t.Fatalf("fragment %q missing or out of order", frag)
		}
		pos += i + len(frag)
	}
	if pos != len(doc) {
		t.Errorf("unexpected trailing content: %q", doc[pos:])
	}
}

func TestDocumentAxes(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		contains []string
		excludes []string
	}{
		{
			name:     "left pupil hidden",
			cfg:      Config{}.WithEyes(Open(PupilHidden, PupilShown)),
			contains: []string{rightPupil},
			excludes: []string{leftPupil, closedEyes},
		},
		{
			name:     "both pupils hidden",
			cfg:      Config{}.WithEyes(Open(PupilHidden, PupilHidden)),
			excludes: []string{leftPupil, rightPupil, closedEyes},
		},
		{
			name:     "closed eyes",
			cfg:      Config{}.WithEyes(Closed),
			contains: []string{closedEyes},
			excludes: []string{leftPupil, rightPupil},
		},
		{
			name:     "brows down",
			cfg:      Config{}.WithBrows(BrowsDown),
			contains: []string{browsDown},
			excludes: []string{browsUp, browsFlat},
		},
		{
			name:     "mouth o",
			cfg:      Config{}.WithMouth(MouthO),
			contains: []string{mouthO},
			excludes: []string{mouthW, mouthSmile, mouthAngry},
		},
		{
			name:     "mouth smile",
			cfg:      Config{}.WithMouth(MouthSmile),
			contains: []string{mouthSmile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := string(tt.cfg.Document())
			for _, s := range tt.contains {
				if !strings.Contains(doc, s) {
					t.Errorf("document missing %q", s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(doc, s) {
					t.Errorf("document unexpectedly contains %q", s)
				}
			}
			if !strings.Contains(doc, nose) || !strings.Contains(doc, whiskers) {
				t.Error("decorations must always be present")
			}
		})
	}
}

func TestFlatBrowsUseDistinctStroke(t *testing.T) {
	if !strings.Contains(browsFlat, flatBrowsStroke) {
		t.Error("flat brows should use their own stroke color")
	}
	for _, frag := range []string{browsUp, browsDown} {
		if strings.Contains(frag, flatBrowsStroke) {
			t.Errorf("fragment %q should not use the flat brow color", frag)
		}
	}
}

func TestDocumentIsWellFormedXML(t *testing.T) {
	configs := []Config{
		{},
		ConfigFor(Angry),
		Config{}.WithEyes(Closed).WithBrows(BrowsDown).WithMouth(MouthO),
	}
	for _, cfg := range configs {
		dec := xml.NewDecoder(strings.NewReader(string(cfg.Document())))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%v: malformed document: %v", cfg, err)
			}
		}
	}
}

func TestDocumentDeterministic(t *testing.T) {
	cfg := Config{}.WithMouth(MouthSmile).WithBrows(BrowsDown)
	if cfg.Document() != cfg.Document() {
		t.Error("Document() should be deterministic")
	}
}

func TestNewDocuments(t *testing.T) {
	docs := NewDocuments()

	for _, e := range Expressions() {
		if got, want := docs.Get(e), ConfigFor(e).Document(); got != want {
			t.Errorf("Get(%v) does not match its configuration", e)
		}
		if docs.Config(e) != ConfigFor(e) {
			t.Errorf("Config(%v) = %v", e, docs.Config(e))
		}
	}

	if docs.Get(Happy) != docs.Get(Angry) {
		t.Error("Happy and Angry should share a document")
	}
	if docs.Get(Neutral) == docs.Get(Angry) {
		t.Error("Neutral and Angry should differ")
	}
	if docs.Len() != 2 {
		t.Errorf("Len() = %d, want 2 distinct documents", docs.Len())
	}
	if docs.Get(Expression(99)) != docs.Get(Neutral) {
		t.Error("unknown expression should fall back to neutral")
	}
}
