package tetrabounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoundingBoxDisjointAndMerge(t *testing.T) {

	a := NewBoundingBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := NewBoundingBox(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{3, 3, 3})

	if a.IntersectsBox(b) || b.IntersectsBox(a) {
		t.Fatal("disjoint boxes reported as intersecting")
	}

	merged := a
	merged.Merge(b)

	want := NewBoundingBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 3, 3})
	if merged != want {
		t.Errorf("merged = %v, want %v", merged, want)
	}

}

func TestBoundingBoxMergeProperties(t *testing.T) {

	boxes := []BoundingBox{
		NewBoundingBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
		NewBoundingBox(mgl64.Vec3{-4, 2, 0.5}, mgl64.Vec3{-1, 3, 9}),
		NewBoundingBox(mgl64.Vec3{10, -10, 3}, mgl64.Vec3{11, -9, 3.5}),
	}

	for i, a := range boxes {

		self := a
		self.Merge(a)
		if self != a {
			t.Errorf("box #%d: merging with itself changed it to %v", i, self)
		}

		for j, b := range boxes {
			ab, ba := a, b
			ab.Merge(b)
			ba.Merge(a)
			if ab != ba {
				t.Errorf("boxes #%d and #%d: merge is not commutative (%v vs %v)", i, j, ab, ba)
			}
			if !ab.IntersectsBox(a) || !ab.IntersectsBox(b) {
				t.Errorf("boxes #%d and #%d: merged box doesn't overlap its inputs", i, j)
			}
		}

	}

}

func TestBoundingBoxCorners(t *testing.T) {

	box := NewBoundingBox(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})
	corners := box.Corners()

	want := [8]mgl64.Vec3{
		{-1, 2, 3}, {-1, -2, 3}, {1, -2, 3}, {1, 2, 3},
		{1, 2, -3}, {1, -2, -3}, {-1, -2, -3}, {-1, 2, -3},
	}

	if corners != want {
		t.Errorf("corners = %v, want %v", corners, want)
	}

	seen := newSet[mgl64.Vec3]()
	for _, c := range corners {
		seen.Add(c)
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}

}

func TestBoundingBoxIntersectsPlane(t *testing.T) {

	box := NewBoundingBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})

	tests := []struct {
		name  string
		plane Plane
		want  Halfspace
	}{
		{"through center", NewPlane(VecY, 0), Intersecting},
		{"touching", NewPlane(VecY, 1), Intersecting},
		{"below", NewPlane(VecY, 2), Front},
		{"above", NewPlane(VecY, -2), Back},
		{"diagonal touching corner", NewPlaneFromPoint(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}), Intersecting},
		{"diagonal past corner", NewPlaneFromPoint(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1.1, 1.1, 1.1}), Back},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := box.IntersectsPlane(test.plane); got != test.want {
				t.Errorf("IntersectsPlane() = %v, want %v", got, test.want)
			}
		})
	}

}

func TestBoundingBoxTransform(t *testing.T) {

	t.Run("translate", func(t *testing.T) {
		box := NewBoundingBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		box.Transform(mgl64.Translate3D(5, -1, 2))
		want := NewBoundingBox(mgl64.Vec3{5, -1, 2}, mgl64.Vec3{6, 0, 3})
		if !vecApproxEqual(box.Min, want.Min) || !vecApproxEqual(box.Max, want.Max) {
			t.Errorf("translated box = %v, want %v", box, want)
		}
	})

	t.Run("rotate uses every corner", func(t *testing.T) {
		box := NewBoundingBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
		box.Transform(mgl64.HomogRotate3D(math.Pi/4, VecY))
		r := math.Sqrt2
		want := NewBoundingBox(mgl64.Vec3{-r, -1, -r}, mgl64.Vec3{r, 1, r})
		if !vecApproxEqual(box.Min, want.Min) || !vecApproxEqual(box.Max, want.Max) {
			t.Errorf("rotated box = %v, want %v", box, want)
		}
	})

	t.Run("mirror keeps min below max", func(t *testing.T) {
		box := NewBoundingBox(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 3, 4})
		box = box.Transformed(mgl64.Scale3D(-1, -1, -1))
		if box.Min != (mgl64.Vec3{-2, -3, -4}) || box.Max != (mgl64.Vec3{-1, -1, -1}) {
			t.Errorf("mirrored box = %v", box)
		}
	})

}

func TestBoundingBoxSpheres(t *testing.T) {

	box := BoundingBox{}
	box.SetFromSphere(NewBoundingSphere(mgl64.Vec3{1, 2, 3}, 2))

	if box.Min != (mgl64.Vec3{-1, 0, 1}) || box.Max != (mgl64.Vec3{3, 4, 5}) {
		t.Errorf("box from sphere = %v", box)
	}

	box.MergeSphere(NewBoundingSphere(mgl64.Vec3{10, 0, 0}, 1))

	if box.Max[0] != 11 || box.Min[1] != -1 {
		t.Errorf("box merged with sphere = %v", box)
	}

	if !box.IntersectsSphere(NewBoundingSphere(mgl64.Vec3{12, 0, 0}, 1.5)) {
		t.Error("overlapping sphere not detected")
	}

}

func TestBoundingBoxEmptyAndContains(t *testing.T) {

	if !(BoundingBox{}).IsEmpty() {
		t.Error("zero box should be empty")
	}

	box := NewBoundingBox(mgl64.Vec3{3, 3, 3}, mgl64.Vec3{1, 1, 1})

	if box.IsEmpty() {
		t.Error("box should not be empty")
	}

	if box.Min != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("NewBoundingBox didn't order its points: %v", box)
	}

	if !box.ContainsPoint(box.Center()) || box.ContainsPoint(mgl64.Vec3{0, 2, 2}) {
		t.Error("ContainsPoint gave the wrong answer")
	}

	fromPoints := NewBoundingBoxFromPoints(mgl64.Vec3{1, 5, 0}, mgl64.Vec3{-2, 0, 1}, mgl64.Vec3{0, 0, -7})
	if fromPoints.Min != (mgl64.Vec3{-2, 0, -7}) || fromPoints.Max != (mgl64.Vec3{1, 5, 1}) {
		t.Errorf("NewBoundingBoxFromPoints = %v", fromPoints)
	}

}

func BenchmarkBoundingBoxTransform(b *testing.B) {

	b.ReportAllocs()

	box := NewBoundingBox(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})
	m := mgl64.Translate3D(1, 4, -12).Mul4(mgl64.HomogRotate3D(0.24, VecY))

	for i := 0; i < b.N; i++ {
		box.Transformed(m)
	}

}
