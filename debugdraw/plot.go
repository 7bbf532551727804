// Package debugdraw renders top-down plots of a tetrabounds.Scene: each Object's world bounds colored by whether a Camera's frustum
// can see it, the frustum itself, and any test rays along with where they struck. Plots can be encoded to PNG or WebP.
package debugdraw

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetrabounds"
	"github.com/solarlune/tetrabounds/colors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options alters how a plot is drawn.
type Options struct {
	Width, Height int     // Size of the resulting image in pixels
	Supersample   int     // The plot is drawn this many times larger and then scaled down to smooth edges; 1 disables it
	LineWidth     float64 // Width of outlines, in pixels of the final image
	Padding       float64 // Fraction of the plotted area left empty around its edges
	Labels        bool    // Whether Objects are labeled with their names
	Grid          bool    // Whether world-unit grid lines are drawn

	Rays      []tetrabounds.Ray // Rays to cast into the Scene and plot
	RayLength float64           // How long rays that don't hit anything are drawn, in world units
}

// DefaultOptions returns an Options struct set up to draw a 512x512 plot with labels and a grid.
func DefaultOptions() *Options {
	return &Options{
		Width:       512,
		Height:      512,
		Supersample: 2,
		LineWidth:   1.5,
		Padding:     0.1,
		Labels:      true,
		Grid:        true,
		RayLength:   20,
	}
}

// Result holds a plot, along with the culling and raycasting results it illustrates.
type Result struct {
	Image *image.RGBA
	Cull  tetrabounds.CullResult
	Hits  []tetrabounds.RayHit  // The nearest hit for each ray that struck something, in the order of Options.Rays
	View  tetrabounds.Rectangle // The area of the XZ plane that was plotted, in world units
}

type plotter struct {
	options *Options
	img     *image.RGBA
	raster  *vector.Rasterizer
	view    tetrabounds.Rectangle
	scale   float64 // Pixels per world unit on the supersampled canvas
	offsetX float64
	offsetY float64
	ss      float64
}

// Plot draws the Scene as seen from above (looking down -Y, with -Z pointing up the image). Objects are filled according to
// whether the Camera's Frustum culls them. Passing nil for options uses DefaultOptions().
func Plot(scene *tetrabounds.Scene, camera *tetrabounds.Camera, options *Options) Result {

	if options == nil {
		options = DefaultOptions()
	}

	ss := max(options.Supersample, 1)
	width := max(options.Width, 1)
	height := max(options.Height, 1)

	frustum := camera.Frustum()

	result := Result{
		Cull: scene.Cull(frustum),
		Hits: []tetrabounds.RayHit{},
	}

	p := &plotter{
		options: options,
		img:     image.NewRGBA(image.Rect(0, 0, width*ss, height*ss)),
		raster:  vector.NewRasterizer(width*ss, height*ss),
		ss:      float64(ss),
	}

	p.fit(scene, camera, frustum)
	result.View = p.view

	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(colors.Background()), image.Point{}, draw.Src)

	if options.Grid {
		p.drawGrid()
	}

	for _, obj := range scene.Objects() {

		fill := colors.Culled()
		if result.Cull.IsVisible(obj) {
			fill = colors.Visible()
		}

		if box, ok := obj.WorldBox(); ok {
			r := p.worldRect(box)
			p.fillRect(r, fill)
			p.strokeRect(r, fill.WithAlpha(1))
		} else if sphere, ok := obj.WorldSphere(); ok {
			p.fillCircle(sphere.Center, sphere.Radius, fill)
		} else {
			pos := obj.WorldPosition()
			p.fillCircle(pos, 2/p.scale*p.ss, fill.WithAlpha(1))
		}

	}

	p.drawFrustum(frustum, camera.Transform().Translation())

	for _, ray := range options.Rays {

		end := ray.PointAt(options.RayLength)

		if hit, ok := scene.RaycastFirst(ray); ok {
			end = hit.Position
			result.Hits = append(result.Hits, hit)
			p.fillCircle(hit.Position, 3/p.scale*p.ss, colors.Ray())
		}

		p.line(ray.Origin(), end, colors.Ray())

	}

	final := p.img

	if ss > 1 {
		final = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(final, final.Bounds(), p.img, p.img.Bounds(), draw.Src, nil)
	}

	if options.Labels {
		p.drawLabels(final, scene)
	}

	result.Image = final

	return result

}

// fit picks the area of the XZ plane to plot, so every Object, the camera, and each ray's origin is in view.
func (p *plotter) fit(scene *tetrabounds.Scene, camera *tetrabounds.Camera, frustum tetrabounds.Frustum) {

	points := []mgl64.Vec3{camera.Transform().Translation()}

	for _, c := range frustum.NearCorners() {
		points = append(points, c)
	}

	for _, ray := range p.options.Rays {
		points = append(points, ray.Origin())
	}

	bounds := tetrabounds.NewBoundingBoxFromPoints(points...)

	if sceneBounds, ok := scene.Bounds(); ok {
		bounds.Merge(sceneBounds)
	}

	view := tetrabounds.NewRectangleFromEdges(bounds.Min.X(), bounds.Min.Z(), bounds.Max.X(), bounds.Max.Z())

	// At least a unit across, so a lone point still gets a sensible scale.
	view.Inflate(math.Max(0, 0.5-view.Width/2), math.Max(0, 0.5-view.Height/2))
	view.Inflate(view.Width*p.options.Padding, view.Height*p.options.Padding)

	canvas := p.img.Bounds()
	cw, ch := float64(canvas.Dx()), float64(canvas.Dy())

	p.scale = math.Min(cw/view.Width, ch/view.Height)

	// Grow the view along the shorter axis so the plot keeps a square aspect and stays centered.
	cx, cy := view.Center()
	view.Width = cw / p.scale
	view.Height = ch / p.scale
	view.SetPosition(cx-view.Width/2, cy-view.Height/2)

	p.view = view
	p.offsetX = -view.X * p.scale
	p.offsetY = -view.Y * p.scale

}

// toCanvas returns where the world position lands on the supersampled canvas.
func (p *plotter) toCanvas(pos mgl64.Vec3) (float64, float64) {
	return pos.X()*p.scale + p.offsetX, pos.Z()*p.scale + p.offsetY
}

func (p *plotter) worldRect(box tetrabounds.BoundingBox) tetrabounds.Rectangle {
	x0, y0 := p.toCanvas(box.Min)
	x1, y1 := p.toCanvas(box.Max)
	return tetrabounds.NewRectangleFromEdges(x0, y0, x1, y1)
}

func (p *plotter) canvasRect() tetrabounds.Rectangle {
	b := p.img.Bounds()
	return tetrabounds.NewRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
}

func (p *plotter) fill(c tetrabounds.Color) {
	p.raster.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
	b := p.img.Bounds()
	p.raster.Reset(b.Dx(), b.Dy())
}

func (p *plotter) fillRect(r tetrabounds.Rectangle, c tetrabounds.Color) {

	r, ok := tetrabounds.IntersectRectangles(r, p.canvasRect())
	if !ok || r.IsEmpty() {
		return
	}

	p.raster.MoveTo(float32(r.Left()), float32(r.Top()))
	p.raster.LineTo(float32(r.Right()), float32(r.Top()))
	p.raster.LineTo(float32(r.Right()), float32(r.Bottom()))
	p.raster.LineTo(float32(r.Left()), float32(r.Bottom()))
	p.raster.ClosePath()
	p.fill(c)

}

func (p *plotter) strokeRect(r tetrabounds.Rectangle, c tetrabounds.Color) {
	p.canvasLine(r.Left(), r.Top(), r.Right(), r.Top(), c)
	p.canvasLine(r.Right(), r.Top(), r.Right(), r.Bottom(), c)
	p.canvasLine(r.Right(), r.Bottom(), r.Left(), r.Bottom(), c)
	p.canvasLine(r.Left(), r.Bottom(), r.Left(), r.Top(), c)
}

func (p *plotter) fillCircle(center mgl64.Vec3, radius float64, c tetrabounds.Color) {

	cx, cy := p.toCanvas(center)
	r := radius * p.scale

	bounds := tetrabounds.NewRectangle(cx-r, cy-r, r*2, r*2)
	if !bounds.Intersects(p.canvasRect()) {
		return
	}

	const segments = 32

	for i := 0; i <= segments; i++ {
		angle := float64(i) / segments * math.Pi * 2
		x := float32(cx + math.Cos(angle)*r)
		y := float32(cy + math.Sin(angle)*r)
		if i == 0 {
			p.raster.MoveTo(x, y)
		} else {
			p.raster.LineTo(x, y)
		}
	}

	p.raster.ClosePath()
	p.fill(c)

}

func (p *plotter) line(from, to mgl64.Vec3, c tetrabounds.Color) {
	x0, y0 := p.toCanvas(from)
	x1, y1 := p.toCanvas(to)
	p.canvasLine(x0, y0, x1, y1, c)
}

// canvasLine draws a line as a thin quad, after clipping it to the canvas.
func (p *plotter) canvasLine(x0, y0, x1, y1 float64, c tetrabounds.Color) {

	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, p.canvasRect())
	if !ok {
		return
	}

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	half := p.options.LineWidth * p.ss / 2
	nx, ny := -dy/length*half, dx/length*half

	p.raster.MoveTo(float32(x0+nx), float32(y0+ny))
	p.raster.LineTo(float32(x1+nx), float32(y1+ny))
	p.raster.LineTo(float32(x1-nx), float32(y1-ny))
	p.raster.LineTo(float32(x0-nx), float32(y0-ny))
	p.raster.ClosePath()
	p.fill(c)

}

// clipSegment clips the line segment to the rectangle (Liang-Barsky), returning false if none of it lies inside.
func clipSegment(x0, y0, x1, y1 float64, r tetrabounds.Rectangle) (float64, float64, float64, float64, bool) {

	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	edges := [4][2]float64{
		{-dx, x0 - r.Left()},
		{dx, r.Right() - x0},
		{-dy, y0 - r.Top()},
		{dy, r.Bottom() - y0},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true

}

// drawGrid draws lines at regular world-unit intervals, spaced by a power of ten so they never crowd together.
func (p *plotter) drawGrid() {

	step := math.Pow(10, math.Ceil(math.Log10(16*p.ss/p.scale)))

	canvas := p.canvasRect()
	grid := colors.Grid()

	for x := math.Ceil(p.view.Left()/step) * step; x <= p.view.Right(); x += step {
		cx, _ := p.toCanvas(mgl64.Vec3{x, 0, 0})
		p.canvasLine(cx, canvas.Top(), cx, canvas.Bottom(), grid)
	}

	for z := math.Ceil(p.view.Top()/step) * step; z <= p.view.Bottom(); z += step {
		_, cy := p.toCanvas(mgl64.Vec3{0, 0, z})
		p.canvasLine(canvas.Left(), cy, canvas.Right(), cy, grid)
	}

}

func (p *plotter) drawFrustum(frustum tetrabounds.Frustum, eye mgl64.Vec3) {

	near := frustum.NearCorners()
	far := frustum.FarCorners()
	c := colors.Frustum()

	for i := 0; i < 4; i++ {
		p.line(near[i], near[(i+1)%4], c)
		p.line(far[i], far[(i+1)%4], c)
		// The near corners run left-top to right-top, the far corners the other way around.
		p.line(near[i], far[3-i], c)
	}

	p.fillCircle(eye, 3/p.scale*p.ss, c)

}

// drawLabels writes each Object's name next to its position on the final image, skipping labels that would overlap ones already drawn.
func (p *plotter) drawLabels(dst *image.RGBA, scene *tetrabounds.Scene) {

	face := basicfont.Face7x13

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colors.Label()),
		Face: face,
	}

	bounds := dst.Bounds()
	screen := tetrabounds.NewRectangle(0, 0, float64(bounds.Dx()), float64(bounds.Dy()))
	placed := []tetrabounds.Rectangle{}

	for _, obj := range scene.Objects() {

		if obj.Name == "" {
			continue
		}

		x, y := p.toCanvas(obj.WorldPosition())
		x /= p.ss
		y /= p.ss

		width := float64(font.MeasureString(face, obj.Name).Ceil())
		height := float64(face.Metrics().Height.Ceil())

		label := tetrabounds.NewRectangle(x+4, y-height/2, width, height)

		if !screen.ContainsRect(label) {
			continue
		}

		overlaps := false
		for _, other := range placed {
			if label.Intersects(other) {
				overlaps = true
				break
			}
		}

		if overlaps {
			continue
		}

		placed = append(placed, label)

		drawer.Dot = fixed.P(int(label.Left()), int(label.Top())+face.Metrics().Ascent.Ceil())
		drawer.DrawString(obj.Name)

	}

}
