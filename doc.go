// Package media provides device-independent color management and vector
// geometry for a 2D rendering layer.
//
// # Overview
//
// media covers two related areas:
//   - Colors: the Color value type holds sRGB bytes, linear scRGB floats,
//     and optionally the native channel values of an ICC profile
//     (ColorContext), and converts between them.
//   - Geometry: resolution-independent shapes (PathGeometry and friends)
//     with bounds, area, hit testing, flattening, widening, outlining and
//     boolean combination.
//
// # Quick Start
//
//	import "github.com/gogpu/media"
//
//	c := media.FromArgb(255, 128, 64, 32)
//	fmt.Println(c)            // #FF804020
//	fmt.Println(c.ScR())      // linear red
//
//	g, _ := media.ParseGeometry("M0,0 L100,0 L100,100 Z")
//	area, _ := g.Area(0.25, media.ToleranceAbsolute)
//
//	pen := media.NewPen(media.KnownColorBlack.Brush(), 2)
//	outline, _ := g.WidenedPathGeometry(pen, 0.25, media.ToleranceAbsolute)
//
// # Collaborators
//
// The heavy lifting is done by pluggable engines that are built in but may
// be replaced process-wide:
//   - GeometryEngine (SetGeometryEngine): the tessellation core
//   - ColorTransformer (SetColorTransformer): native <-> sRGB conversion
//   - ProfileFetcher (SetProfileFetcher): loading profile bytes by URI
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Color values and ColorContexts are immutable and safe to share. Frozen
// geometries may be queried concurrently; unfrozen ones must not be changed
// while in use.
package media

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
