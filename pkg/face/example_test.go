package face_test

import (
	"fmt"

	"github.com/matzehuels/whisker/pkg/face"
)

func ExampleConfigFor() {
	for _, e := range face.Expressions() {
		fmt.Printf("%s: %s\n", e, face.ConfigFor(e))
	}
	// Output:
	// neutral: eyes=open(shown,shown) brows=flat mouth=w
	// happy: eyes=open(shown,shown) brows=up mouth=angry
	// angry: eyes=open(shown,shown) brows=up mouth=angry
}

func ExampleConfig_Document() {
	cfg := face.Config{}.
		WithEyes(face.Closed).
		WithMouth(face.MouthSmile)

	doc := cfg.Document()
	fmt.Println(len(doc) > 0)
	// Output: true
}
