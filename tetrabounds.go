package tetrabounds

// tetrabounds is a 3D geometry kernel for spatial queries and view culling: bounding boxes and spheres, planes, rays and
// frustums, along with a Transform that lazily caches its matrix and notifies listeners only when that matrix changes.

// Epsilon is the tolerance used throughout the package for comparisons against zero (degenerate plane determinants, rays
// starting on a plane, and so on).
const Epsilon = 1e-6

// Halfspace is the result of classifying a shape against a Plane: the shape either straddles the plane, lies entirely in front
// of it (on the side its normal points to), or lies entirely behind it.
type Halfspace int

const (
	Intersecting Halfspace = 0  // The shape touches or crosses the plane
	Front        Halfspace = 1  // The shape lies entirely on the side the plane's normal points to
	Back         Halfspace = -1 // The shape lies entirely behind the plane
)

// String returns a human-readable name for the Halfspace.
func (h Halfspace) String() string {
	switch h {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "intersecting"
}
