package fill

import "sync/atomic"

// Process-wide identity counters. Zero is never handed out so a zero ID
// can mean "absent" in callers.
var (
	gradientIDs atomic.Uint64
	textureIDs  atomic.Uint64
)

func nextGradientID() uint64 { return gradientIDs.Add(1) }

func nextTextureID() uint64 { return textureIDs.Add(1) }
