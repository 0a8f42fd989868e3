package hostapp

import _ "embed"

// blitShaderSource is the WGSL source for the fullscreen blit pipeline that
// turns a Universe's render view into pixels, embedded at build time rather
// than loaded from disk so the reference binary has no runtime asset
// dependency.
//
//go:embed shaders.wgsl
var blitShaderSource string
