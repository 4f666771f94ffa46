package avatar

// CenterCrop returns the region of a srcW x srcH image that, scaled uniformly
// to cover a dstW x dstH target, fills it exactly. The image is scaled so its
// shorter side (relative to the target's aspect) matches the target and the
// excess on the other axis is cut evenly from both ends.
//
// A degenerate source or target yields an empty Rect.
func CenterCrop(srcW, srcH int, dstW, dstH float32) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}
	sw, sh := float32(srcW), float32(srcH)

	// scale = max(dstW/sw, dstH/sh); the cropped region is dst/scale.
	if sw*dstH > dstW*sh {
		// Source is wider than the target: keep full height.
		w := dstW * sh / dstH
		return Rect{X: (sw - w) / 2, Y: 0, W: w, H: sh}
	}
	h := dstH * sw / dstW
	return Rect{X: 0, Y: (sh - h) / 2, W: sw, H: h}
}

// SquareCrop is CenterCrop for a square target, the case every circle uses.
func SquareCrop(srcW, srcH int) Rect {
	return CenterCrop(srcW, srcH, 1, 1)
}
