// Package face describes the cat-face expressions whisker can draw and turns
// them into SVG documents.
//
// # Overview
//
// A face is assembled from three independent axes:
//
//   - [Eyes]: open (each pupil may be hidden) or closed
//   - [Brows]: up, down or flat
//   - [Mouth]: W, O, smile or angry
//
// plus decorations every face carries (a nose and three whiskers per side).
// Each axis maps to a fixed markup fragment; [Config.Document] concatenates
// them in a fixed order on a logical canvas of [CanvasWidth] × [CanvasHeight]
// units.
//
// # Expressions
//
// The application only ever asks for a named [Expression]. [ConfigFor] maps
// each one to its configuration, and [NewDocuments] materializes all of them
// up front so the render loop never builds markup:
//
//	docs := face.NewDocuments()
//	svg := docs.Get(face.Neutral)
//
// Happy and Angry currently share one configuration (angry mouth, raised
// brows) and therefore one document.
package face
