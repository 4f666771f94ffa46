package avatar

import (
	"errors"
	"image"
	"math"
	"sync"
)

// drawListPool provides efficient reuse of DrawList buffers.
// Hosts rebuild the draw list every frame, so buffers are recycled instead
// of reallocated.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// maxCmdVertices is the most vertices one command can address with uint16 indices.
const maxCmdVertices = math.MaxUint16 + 1

// DrawList accumulates triangles for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve ensures there's an active draw command able to address n more vertices.
func (dl *DrawList) reserve(n int) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxCmdVertices {
		dl.splitDraw()
	}
}

// addVertex adds one vertex and returns its index relative to the current command.
func (dl *DrawList) addVertex(v Vertex) uint16 {
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v)
	return idx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// CircleSegments returns how many rim segments a circle of radius r is
// tessellated into. Larger circles get more segments so the error between
// chord and arc stays under a quarter pixel.
func CircleSegments(r float32) int {
	const (
		minSegments = 12
		maxSegments = 512
		maxError    = 0.25
	)
	if r <= maxError {
		return minSegments
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-maxError/float64(r))))
	return clampi(n, minSegments, maxSegments)
}

// AddCircleFilled draws a filled circle as a triangle fan.
func (dl *DrawList) AddCircleFilled(cx, cy, r float32, color uint32) {
	if IsTransparent(color) || r <= 0 {
		return
	}
	dl.addFan(cx, cy, r, color, [4]float32{})
}

// AddImageCircle draws a textured circle. uv is the texture region (u0, v0,
// u1, v1) mapped onto the circle's bounding square; tint modulates it.
func (dl *DrawList) AddImageCircle(cx, cy, r float32, textureID uint32, uv [4]float32, tint uint32) {
	if r <= 0 || textureID == 0 {
		return
	}
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addFan(cx, cy, r, tint, uv)
	dl.SetTexture(prev)
}

// addFan emits a center vertex plus one vertex per rim segment.
func (dl *DrawList) addFan(cx, cy, r float32, color uint32, uv [4]float32) {
	n := CircleSegments(r)
	dl.reserve(n + 1)

	texAt := func(x, y float32) [2]float32 {
		u := (x - (cx - r)) / (2 * r)
		v := (y - (cy - r)) / (2 * r)
		return [2]float32{uv[0] + u*(uv[2]-uv[0]), uv[1] + v*(uv[3]-uv[1])}
	}

	center := dl.addVertex(Vertex{Pos: [2]float32{cx, cy}, TexCoord: texAt(cx, cy), Color: color})
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		dl.addVertex(Vertex{Pos: [2]float32{x, y}, TexCoord: texAt(x, y), Color: color})
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		dl.addIndices(center, center+1+uint16(i), center+1+uint16(next))
	}
}

// AddRing strokes a circle of radius r with the given thickness, centered on
// the radius. Each segment is a quad between the inner and outer rims.
func (dl *DrawList) AddRing(cx, cy, r, thickness float32, color uint32) {
	if IsTransparent(color) || thickness <= 0 || r <= 0 {
		return
	}
	inner := maxf(r-thickness/2, 0)
	outer := r + thickness/2

	n := CircleSegments(outer)
	dl.reserve(2 * n)

	base := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		dl.addVertex(Vertex{Pos: [2]float32{cx + outer*cos, cy + outer*sin}, Color: color})
		dl.addVertex(Vertex{Pos: [2]float32{cx + inner*cos, cy + inner*sin}, Color: color})
	}
	for i := 0; i < n; i++ {
		o0 := base + uint16(2*i)
		i0 := o0 + 1
		o1 := base + uint16(2*((i+1)%n))
		i1 := o1 + 1
		dl.addIndices(o0, o1, i1, o0, i1, i0)
	}
}

// AddImageRect draws a textured rectangle.
func (dl *DrawList) AddImageRect(x, y, w, h float32, textureID uint32, uv [4]float32, tint uint32) {
	if w <= 0 || h <= 0 || textureID == 0 {
		return
	}
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.reserve(4)

	idx := dl.addVertex(Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{uv[0], uv[1]}, Color: tint})
	dl.addVertex(Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{uv[2], uv[1]}, Color: tint})
	dl.addVertex(Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{uv[2], uv[3]}, Color: tint})
	dl.addVertex(Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{uv[0], uv[3]}, Color: tint})
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)

	dl.SetTexture(prev)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// ErrNoTextureResolver is returned when a DrawList canvas must draw an image
// but has no way to turn it into a texture.
var ErrNoTextureResolver = errors.New("no texture resolver")

// TextureResolver maps a source image to a backend texture ID.
type TextureResolver func(img image.Image) (uint32, error)

// Canvas adapts the DrawList to the Canvas interface. Images are turned into
// textures through resolve.
func (dl *DrawList) Canvas(resolve TextureResolver) Canvas {
	return drawListCanvas{dl: dl, resolve: resolve}
}

type drawListCanvas struct {
	dl      *DrawList
	resolve TextureResolver
}

func (c drawListCanvas) FillCircle(center Vec2, radius float32, p FillPaint) error {
	c.dl.AddCircleFilled(center.X, center.Y, radius, p.Color)
	return nil
}

func (c drawListCanvas) ImageCircle(center Vec2, radius float32, p ImagePaint) error {
	tex, err := c.texture(p)
	if err != nil {
		return err
	}
	c.dl.AddImageCircle(center.X, center.Y, radius, tex, p.UV(), ColorWhite)
	return nil
}

func (c drawListCanvas) StrokeCircle(center Vec2, radius float32, p StrokePaint) error {
	c.dl.AddRing(center.X, center.Y, radius, p.Width, p.Color)
	return nil
}

func (c drawListCanvas) ImageRect(dst Rect, p ImagePaint) error {
	tex, err := c.texture(p)
	if err != nil {
		return err
	}
	c.dl.AddImageRect(dst.X, dst.Y, dst.W, dst.H, tex, p.UV(), ColorWhite)
	return nil
}

func (c drawListCanvas) texture(p ImagePaint) (uint32, error) {
	if p.Image == nil {
		return 0, nil
	}
	if c.resolve == nil {
		return 0, ErrNoTextureResolver
	}
	return c.resolve(p.Image)
}
