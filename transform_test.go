package tetrabounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type countingListener struct {
	calls       int
	cookies     []int64
	translation mgl64.Vec3
}

func (l *countingListener) TransformChanged(t *Transform, cookie int64) {
	l.calls++
	l.cookies = append(l.cookies, cookie)
	l.translation = t.Translation()
}

func TestTransformDefaults(t *testing.T) {

	transform := NewTransform()

	if transform.Matrix() != mgl64.Ident4() {
		t.Errorf("new transform matrix = %v, want identity", transform.Matrix())
	}

	if transform.IsStatic() || transform.IsDirty() {
		t.Error("new transform should be neither static nor dirty")
	}

}

func TestTransformConstructors(t *testing.T) {

	rotation := mgl64.QuatRotate(math.Pi/2, VecY)
	want := mgl64.Translate3D(1, 2, 3).Mul4(rotation.Mat4()).Mul4(mgl64.Scale3D(2, 2, 2))

	trs := NewTransformTRS(mgl64.Vec3{1, 2, 3}, rotation, mgl64.Vec3{2, 2, 2})
	if !matApproxEqual(trs.Matrix(), want) {
		t.Errorf("TRS matrix = %v, want %v", trs.Matrix(), want)
	}

	fromMatrix := NewTransformFromMatrix(want)
	if !matApproxEqual(fromMatrix.Matrix(), want) {
		t.Errorf("decomposed matrix = %v, want %v", fromMatrix.Matrix(), want)
	}

	if fromMatrix.Scale() == (mgl64.Vec3{}) || fromMatrix.Rotation().Len() == 0 {
		t.Error("constructed transforms should never carry a zero scale or rotation")
	}

}

func TestTransformMatrixCache(t *testing.T) {

	transform := NewTransform()
	transform.SetTranslationXYZ(1, 2, 3)

	if !transform.IsDirty() {
		t.Fatal("changing the translation should dirty the matrix")
	}

	if transform.Matrix() != mgl64.Translate3D(1, 2, 3) {
		t.Errorf("matrix = %v", transform.Matrix())
	}

	if transform.IsDirty() {
		t.Error("reading the matrix should clean it")
	}

}

func TestTransformOrder(t *testing.T) {

	transform := NewTransform()
	transform.SetScaleUniform(2)
	transform.SetRotationAxisAngle(VecY, math.Pi/2)
	transform.SetTranslationXYZ(1, 0, 0)

	// Scale first, then rotate, then translate.
	p := transform.TransformPoint(mgl64.Vec3{1, 0, 0})
	if !vecApproxEqual(p, mgl64.Vec3{1, 0, -2}) {
		t.Errorf("TransformPoint = %v, want [1 0 -2]", p)
	}

	v := transform.TransformVector(mgl64.Vec3{1, 0, 0})
	if !vecApproxEqual(v, mgl64.Vec3{0, 0, -2}) {
		t.Errorf("TransformVector = %v, want [0 0 -2]", v)
	}

	roundTrip := NewTransformFromMatrix(transform.Matrix())
	if !matApproxEqual(roundTrip.Matrix(), transform.Matrix()) {
		t.Errorf("transform decomposed from its own matrix differs:\n%s\n%s", MatrixString(roundTrip.Matrix()), MatrixString(transform.Matrix()))
	}

}

func TestTransformNotifiesImmediately(t *testing.T) {

	transform := NewTransform()
	listener := &countingListener{}
	transform.AddListener(listener, 42)

	transform.TranslateX(1)
	transform.RotateY(0.5)
	transform.ScaleByUniform(3)

	if listener.calls != 3 {
		t.Errorf("listener called %d times, want 3", listener.calls)
	}

	for _, cookie := range listener.cookies {
		if cookie != 42 {
			t.Errorf("cookie = %d, want 42", cookie)
		}
	}

	// Setting a component to the value it already has isn't a change.
	transform.SetTranslationX(1)
	if listener.calls != 3 {
		t.Errorf("unchanged translation notified the listener")
	}

}

func TestTransformSuspendedTranslates(t *testing.T) {

	batch := NewTransformBatch()
	transform := NewTransform()
	transform.SetBatch(batch)

	first, second := &countingListener{}, &countingListener{}
	transform.AddListener(first, 1)
	transform.AddListener(second, 2)

	batch.Suspend()

	transform.TranslateX(1)
	transform.TranslateX(1)
	transform.TranslateX(1)

	if first.calls != 0 || second.calls != 0 {
		t.Fatal("listeners notified while suspended")
	}

	if !transform.NotificationPending() || batch.Pending() != 1 {
		t.Fatalf("transform should be queued exactly once; pending = %d", batch.Pending())
	}

	batch.Resume()

	for i, l := range []*countingListener{first, second} {
		if l.calls != 1 {
			t.Errorf("listener #%d called %d times, want 1", i, l.calls)
		}
		if l.translation != (mgl64.Vec3{3, 0, 0}) {
			t.Errorf("listener #%d saw translation %v, want [3 0 0]", i, l.translation)
		}
	}

	if transform.NotificationPending() || batch.Pending() != 0 {
		t.Error("resuming should clear the pending notification")
	}

}

func TestTransformBatchNesting(t *testing.T) {

	batch := NewTransformBatch()
	transform := NewTransform()
	transform.SetBatch(batch)
	listener := &countingListener{}
	transform.AddListener(listener, 0)

	batch.Suspend()
	batch.Suspend()
	transform.TranslateY(1)
	batch.Resume()

	if listener.calls != 0 || !batch.Suspended() {
		t.Fatal("inner Resume() shouldn't deliver notifications")
	}

	batch.Resume()

	if listener.calls != 1 || batch.Suspended() {
		t.Fatalf("outer Resume() should deliver; calls = %d", listener.calls)
	}

	// Unmatched resumes are ignored.
	batch.Resume()
	if batch.Depth() != 0 {
		t.Errorf("depth = %d after an unmatched Resume()", batch.Depth())
	}

	transform.TranslateY(1)
	if listener.calls != 2 {
		t.Error("running batch should let notifications through immediately")
	}

}

func TestTransformBatchRun(t *testing.T) {

	batch := NewTransformBatch()
	a, b := NewTransform(), NewTransform()
	a.SetBatch(batch)
	b.SetBatch(batch)

	order := []string{}
	a.AddListener(ListenerFunc(func(t *Transform, cookie int64) {
		order = append(order, "a")
		// Changing another transform while notifications are being delivered still gets delivered.
		b.TranslateZ(1)
	}), 0)
	b.AddListener(ListenerFunc(func(t *Transform, cookie int64) { order = append(order, "b") }), 0)

	batch.Run(func() {
		a.TranslateX(1)
		a.TranslateX(1)
	})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("notification order = %v, want [a b]", order)
	}

	if batch.Suspended() {
		t.Error("Run() should leave the batch running")
	}

}

func TestTransformStatic(t *testing.T) {

	transform := NewTransform()
	listener := &countingListener{}
	transform.AddListener(listener, 0)
	transform.SetStatic(true)

	transform.SetTranslationXYZ(5, 5, 5)
	transform.RotateX(1)
	transform.ScaleByUniform(2)
	transform.SetIdentity()

	if listener.calls != 0 || transform.Matrix() != mgl64.Ident4() {
		t.Error("static transform changed")
	}

}

func TestTransformRemoveListener(t *testing.T) {

	transform := NewTransform()
	listener := &countingListener{}

	transform.AddListener(listener, 1)
	transform.AddListener(listener, 2)

	if !transform.RemoveListener(listener) {
		t.Fatal("RemoveListener() didn't find the listener")
	}

	transform.TranslateX(1)

	if listener.calls != 1 || listener.cookies[0] != 2 {
		t.Errorf("only the first registration should be removed; cookies = %v", listener.cookies)
	}

	calls := 0
	fn := ListenerFunc(func(t *Transform, cookie int64) { calls++ })
	handle := transform.AddListener(fn, 0)

	if transform.RemoveListener(fn) {
		t.Error("ListenerFuncs can't be compared, so they can't be removed by value")
	}

	if !transform.RemoveListenerHandle(handle) || transform.RemoveListenerHandle(handle) {
		t.Error("handle should remove its registration exactly once")
	}

	transform.TranslateX(1)
	if calls != 0 {
		t.Error("removed ListenerFunc was still called")
	}

}

func TestTransformListenerRemovesItself(t *testing.T) {

	transform := NewTransform()
	other := &countingListener{}

	var handle ListenerHandle
	handle = transform.AddListener(ListenerFunc(func(t *Transform, cookie int64) {
		t.RemoveListenerHandle(handle)
	}), 0)
	transform.AddListener(other, 0)

	transform.TranslateX(1)
	transform.TranslateX(1)

	if other.calls != 2 {
		t.Errorf("listener after a self-removing listener called %d times, want 2", other.calls)
	}

	if transform.ListenerCount() != 1 {
		t.Errorf("listener count = %d, want 1", transform.ListenerCount())
	}

}

func TestTransformDirections(t *testing.T) {

	transform := NewTransform()

	if !vecApproxEqual(transform.Forward(), mgl64.Vec3{0, 0, -1}) {
		t.Errorf("Forward() = %v", transform.Forward())
	}

	transform.RotateY(math.Pi / 2)

	directions := []struct {
		name string
		got  mgl64.Vec3
		want mgl64.Vec3
	}{
		{"forward", transform.Forward(), mgl64.Vec3{-1, 0, 0}},
		{"back", transform.Back(), mgl64.Vec3{1, 0, 0}},
		{"right", transform.Right(), mgl64.Vec3{0, 0, -1}},
		{"left", transform.Left(), mgl64.Vec3{0, 0, 1}},
		{"up", transform.Up(), mgl64.Vec3{0, 1, 0}},
		{"down", transform.Down(), mgl64.Vec3{0, -1, 0}},
	}

	for _, d := range directions {
		if !vecApproxEqual(d.got, d.want) {
			t.Errorf("%s = %v, want %v", d.name, d.got, d.want)
		}
	}

	transform.TranslateForward(2)
	if !vecApproxEqual(transform.Translation(), mgl64.Vec3{-2, 0, 0}) {
		t.Errorf("TranslateForward moved to %v", transform.Translation())
	}

	aa := transform.RotationAxisAngle()
	if !approxEqual(aa.Angle, math.Pi/2) || !vecApproxEqual(aa.Axis, VecY) {
		t.Errorf("RotationAxisAngle() = %v", aa)
	}

}

func TestTransformTranslateSmooth(t *testing.T) {

	transform := NewTransform()
	transform.TranslateSmooth(mgl64.Vec3{10, 0, 0}, 1, 1)

	if !vecApproxEqual(transform.Translation(), mgl64.Vec3{5, 0, 0}) {
		t.Errorf("TranslateSmooth moved to %v, want [5 0 0]", transform.Translation())
	}

	transform.TranslateSmooth(mgl64.Vec3{10, 0, 0}, 0, 1)
	if transform.Translation()[0] != 5 {
		t.Error("zero elapsed time shouldn't move the transform")
	}

}

func BenchmarkTransformMatrix(b *testing.B) {

	b.ReportAllocs()

	transform := NewTransform()

	for i := 0; i < b.N; i++ {
		transform.TranslateX(0.01)
		transform.Matrix()
	}

}
