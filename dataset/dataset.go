// Package dataset embeds the original non-rational Bezier teapot of Martin Newell and Jim Blinn
package dataset

import _ "embed"

// Teapot is the teapot's surface description, 28 bicubic patches of 4x4 control points
//
//go:embed teapot.tea
var Teapot string

// TeapotSurfaces is the amount of surfaces in Teapot
const TeapotSurfaces = 28
