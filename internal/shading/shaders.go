package shading

import _ "embed"

// VertexShader passes eye-space position and normal to the fragment stage.
//
//go:embed shaders/illum.vert
var VertexShader string

// FragmentShader lights per fragment when useFragShader is set and
// otherwise outputs the interpolated color.
//
//go:embed shaders/illum.frag
var FragmentShader string
