package tetrabounds

import (
	"github.com/go-gl/mathgl/mgl64"
)

type dirtyFlags uint8

const (
	dirtyScale dirtyFlags = 1 << iota
	dirtyRotation
	dirtyTranslation

	dirtyAll = dirtyScale | dirtyRotation | dirtyTranslation
)

var unitScale = mgl64.Vec3{1, 1, 1}

// Transform represents a scale, rotation, and translation in 3D space, along with the 4x4 matrix that combines them (T * R * S, so
// scale applies first, then rotation, then translation).
// The matrix is cached; changing any of the components only marks the cache as dirty, and it's recomputed the next time Matrix()
// is called. Each change also notifies the Transform's listeners (see AddListener()), either immediately or, if the Transform is
// attached to a suspended TransformBatch, once when the batch resumes.
// A Transform has no parent; composing transforms is left to the caller.
// The zero value isn't usable, as its scale and rotation are zero; create Transforms with NewTransform or the other New functions.
type Transform struct {
	scale       mgl64.Vec3
	rotation    mgl64.Quat
	translation mgl64.Vec3

	cachedMatrix mgl64.Mat4
	dirty        dirtyFlags

	notifyPending bool
	static        bool

	listeners  []listenerEntry
	nextHandle ListenerHandle
	batch      *TransformBatch
}

// NewTransform returns a new identity Transform (unit scale, no rotation, no translation).
func NewTransform() *Transform {
	return &Transform{
		scale:        unitScale,
		rotation:     mgl64.QuatIdent(),
		cachedMatrix: mgl64.Ident4(),
		listeners:    []listenerEntry{},
	}
}

// NewTransformTRS returns a new Transform with the given translation, rotation, and scale.
func NewTransformTRS(translation mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) *Transform {
	t := NewTransform()
	t.scale = scale
	t.rotation = rotation.Normalize()
	t.translation = translation
	t.dirty = dirtyAll
	return t
}

// NewTransformFromMatrix returns a new Transform decomposed from the given matrix. Shear can't be represented and is discarded.
func NewTransformFromMatrix(m mgl64.Mat4) *Transform {
	translation, scale, rotation := DecomposeMatrix(m)
	return NewTransformTRS(translation, rotation, scale)
}

// Scale returns the Transform's scale.
func (t *Transform) Scale() mgl64.Vec3 {
	return t.scale
}

// Rotation returns the Transform's rotation.
func (t *Transform) Rotation() mgl64.Quat {
	return t.rotation
}

// RotationAxisAngle returns the Transform's rotation as an axis and an angle in radians.
func (t *Transform) RotationAxisAngle() AxisAngle {
	return QuatToAxisAngle(t.rotation)
}

// Translation returns the Transform's translation.
func (t *Transform) Translation() mgl64.Vec3 {
	return t.translation
}

// Matrix returns the 4x4 matrix combining the Transform's translation, rotation, and scale. If nothing has changed since the previous
// Matrix() call, the cached matrix is returned; otherwise it's rebuilt first.
func (t *Transform) Matrix() mgl64.Mat4 {

	// T * R * S

	if t.dirty == 0 {
		return t.cachedMatrix
	}

	m := mgl64.Translate3D(t.translation[0], t.translation[1], t.translation[2])

	if !quatIsIdentity(t.rotation) {
		m = m.Mul4(t.rotation.Mat4())
	}

	if t.scale != unitScale {
		m = m.Mul4(mgl64.Scale3D(t.scale[0], t.scale[1], t.scale[2]))
	}

	t.cachedMatrix = m
	t.dirty = 0

	return m

}

// IsDirty returns if the Transform has changed since Matrix() was last called.
func (t *Transform) IsDirty() bool {
	return t.dirty != 0
}

// IsStatic returns if the Transform is static. Static Transforms ignore all changes.
func (t *Transform) IsStatic() bool {
	return t.static
}

// SetStatic sets whether the Transform is static (and so ignores all changes to it) or not.
func (t *Transform) SetStatic(static bool) {
	t.static = static
}

// Batch returns the TransformBatch the Transform is attached to, or nil if it isn't attached to one.
func (t *Transform) Batch() *TransformBatch {
	return t.batch
}

// SetBatch attaches the Transform to the given TransformBatch, so that its notifications are held back while the batch is suspended.
// Passing nil detaches it, so that it always notifies its listeners immediately. A notification already queued on the previous batch
// is still delivered by that batch.
func (t *Transform) SetBatch(batch *TransformBatch) {
	t.batch = batch
}

// markDirty marks the given components as changed, and then either notifies the listeners or, if the Transform's batch is suspended,
// queues the Transform to notify them when the batch resumes.
func (t *Transform) markDirty(flags dirtyFlags) {

	t.dirty |= flags

	if t.batch != nil && t.batch.Suspended() {
		if !t.notifyPending {
			t.notifyPending = true
			t.batch.enqueue(t)
		}
		return
	}

	t.notifyListeners()

}

// notifyListeners notifies every listener, in the order they were added.
func (t *Transform) notifyListeners() {
	// Listeners may remove themselves while being notified; removal never modifies this slice in place.
	listeners := t.listeners
	for _, entry := range listeners {
		entry.listener.TransformChanged(t, entry.cookie)
	}
}

// NotificationPending returns if the Transform has changed while its batch was suspended, and hasn't notified its listeners yet.
func (t *Transform) NotificationPending() bool {
	return t.notifyPending
}

// AddListener adds a listener to be notified whenever the Transform changes, along with a cookie that's passed back to it on every
// notification. The same listener may be added more than once. The returned handle can be used to remove this registration.
func (t *Transform) AddListener(listener TransformListener, cookie int64) ListenerHandle {
	t.nextHandle++
	t.listeners = append(t.listeners, listenerEntry{
		handle:   t.nextHandle,
		listener: listener,
		cookie:   cookie,
	})
	return t.nextHandle
}

// RemoveListener removes the first registration of the given listener, returning true if one was found.
// Listeners that can't be compared with ==, like ListenerFuncs, can only be removed with RemoveListenerHandle().
func (t *Transform) RemoveListener(listener TransformListener) bool {
	for i, entry := range t.listeners {
		if sameListener(entry.listener, listener) {
			t.removeListenerAt(i)
			return true
		}
	}
	return false
}

// RemoveListenerHandle removes the listener registration identified by the handle, returning true if it was found.
func (t *Transform) RemoveListenerHandle(handle ListenerHandle) bool {
	for i, entry := range t.listeners {
		if entry.handle == handle {
			t.removeListenerAt(i)
			return true
		}
	}
	return false
}

func (t *Transform) removeListenerAt(index int) {
	t.listeners = append(t.listeners[:index:index], t.listeners[index+1:]...)
}

// ListenerCount returns how many listener registrations the Transform has.
func (t *Transform) ListenerCount() int {
	return len(t.listeners)
}

// Set sets the Transform's translation, rotation, and scale all at once.
func (t *Transform) Set(translation mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) {

	if t.static {
		return
	}

	rotation = rotation.Normalize()

	var flags dirtyFlags
	if t.scale != scale {
		flags |= dirtyScale
	}
	if t.rotation != rotation {
		flags |= dirtyRotation
	}
	if t.translation != translation {
		flags |= dirtyTranslation
	}

	if flags == 0 {
		return
	}

	t.scale = scale
	t.rotation = rotation
	t.translation = translation
	t.markDirty(flags)

}

// SetFromTransform copies the translation, rotation, and scale of the other Transform.
func (t *Transform) SetFromTransform(other *Transform) {
	t.Set(other.translation, other.rotation, other.scale)
}

// SetMatrix sets the Transform's components by decomposing the given matrix. Shear can't be represented and is discarded.
func (t *Transform) SetMatrix(m mgl64.Mat4) {
	translation, scale, rotation := DecomposeMatrix(m)
	t.Set(translation, rotation, scale)
}

// SetIdentity resets the Transform to unit scale, no rotation, and no translation.
func (t *Transform) SetIdentity() {
	t.Set(mgl64.Vec3{}, mgl64.QuatIdent(), unitScale)
}

// Scale

// SetScale sets the Transform's scale.
func (t *Transform) SetScale(scale mgl64.Vec3) {
	if t.static || t.scale == scale {
		return
	}
	t.scale = scale
	t.markDirty(dirtyScale)
}

// SetScaleXYZ sets the Transform's scale on each axis.
func (t *Transform) SetScaleXYZ(x, y, z float64) {
	t.SetScale(mgl64.Vec3{x, y, z})
}

// SetScaleUniform sets the Transform's scale to the same value on every axis.
func (t *Transform) SetScaleUniform(scale float64) {
	t.SetScale(mgl64.Vec3{scale, scale, scale})
}

// SetScaleX sets the Transform's scale on the X axis.
func (t *Transform) SetScaleX(x float64) {
	t.SetScale(mgl64.Vec3{x, t.scale[1], t.scale[2]})
}

// SetScaleY sets the Transform's scale on the Y axis.
func (t *Transform) SetScaleY(y float64) {
	t.SetScale(mgl64.Vec3{t.scale[0], y, t.scale[2]})
}

// SetScaleZ sets the Transform's scale on the Z axis.
func (t *Transform) SetScaleZ(z float64) {
	t.SetScale(mgl64.Vec3{t.scale[0], t.scale[1], z})
}

// ScaleBy multiplies the Transform's current scale by the given scale, axis by axis.
func (t *Transform) ScaleBy(scale mgl64.Vec3) {
	t.SetScale(vecMultComp(t.scale, scale))
}

// ScaleByUniform multiplies the Transform's current scale on every axis by the given factor.
func (t *Transform) ScaleByUniform(factor float64) {
	t.SetScale(t.scale.Mul(factor))
}

// ScaleByX multiplies the Transform's current X scale by the given factor.
func (t *Transform) ScaleByX(factor float64) {
	t.SetScaleX(t.scale[0] * factor)
}

// ScaleByY multiplies the Transform's current Y scale by the given factor.
func (t *Transform) ScaleByY(factor float64) {
	t.SetScaleY(t.scale[1] * factor)
}

// ScaleByZ multiplies the Transform's current Z scale by the given factor.
func (t *Transform) ScaleByZ(factor float64) {
	t.SetScaleZ(t.scale[2] * factor)
}

// Rotation

// SetRotation sets the Transform's rotation. The quaternion is normalized.
func (t *Transform) SetRotation(rotation mgl64.Quat) {
	rotation = rotation.Normalize()
	if t.static || t.rotation == rotation {
		return
	}
	t.rotation = rotation
	t.markDirty(dirtyRotation)
}

// SetRotationAxisAngle sets the Transform's rotation to the given angle in radians around the given axis.
func (t *Transform) SetRotationAxisAngle(axis mgl64.Vec3, angle float64) {
	t.SetRotation(NewAxisAngle(axis, angle).Quat())
}

// SetRotationMatrix sets the Transform's rotation from the rotational part of the given matrix.
func (t *Transform) SetRotationMatrix(m mgl64.Mat4) {
	_, _, rotation := DecomposeMatrix(m)
	t.SetRotation(rotation)
}

// Rotate applies the given rotation on top of the Transform's current rotation, in the Transform's local space.
func (t *Transform) Rotate(rotation mgl64.Quat) {
	t.SetRotation(t.rotation.Mul(rotation))
}

// RotateAxisAngle rotates the Transform by the given angle in radians around the given (local) axis.
func (t *Transform) RotateAxisAngle(axis mgl64.Vec3, angle float64) {
	t.Rotate(NewAxisAngle(axis, angle).Quat())
}

// RotateMatrix rotates the Transform by the rotational part of the given matrix.
func (t *Transform) RotateMatrix(m mgl64.Mat4) {
	_, _, rotation := DecomposeMatrix(m)
	t.Rotate(rotation)
}

// RotateX rotates the Transform around its local X axis by the given angle in radians.
func (t *Transform) RotateX(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, VecX))
}

// RotateY rotates the Transform around its local Y axis by the given angle in radians.
func (t *Transform) RotateY(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, VecY))
}

// RotateZ rotates the Transform around its local Z axis by the given angle in radians.
func (t *Transform) RotateZ(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, VecZ))
}

// Translation

// SetTranslation sets the Transform's translation.
func (t *Transform) SetTranslation(translation mgl64.Vec3) {
	if t.static || t.translation == translation {
		return
	}
	t.translation = translation
	t.markDirty(dirtyTranslation)
}

// SetTranslationXYZ sets the Transform's translation on each axis.
func (t *Transform) SetTranslationXYZ(x, y, z float64) {
	t.SetTranslation(mgl64.Vec3{x, y, z})
}

// SetTranslationX sets the Transform's translation on the X axis.
func (t *Transform) SetTranslationX(x float64) {
	t.SetTranslation(mgl64.Vec3{x, t.translation[1], t.translation[2]})
}

// SetTranslationY sets the Transform's translation on the Y axis.
func (t *Transform) SetTranslationY(y float64) {
	t.SetTranslation(mgl64.Vec3{t.translation[0], y, t.translation[2]})
}

// SetTranslationZ sets the Transform's translation on the Z axis.
func (t *Transform) SetTranslationZ(z float64) {
	t.SetTranslation(mgl64.Vec3{t.translation[0], t.translation[1], z})
}

// Translate moves the Transform by the given offset.
func (t *Transform) Translate(offset mgl64.Vec3) {
	t.SetTranslation(t.translation.Add(offset))
}

// TranslateXYZ moves the Transform by the given offset on each axis.
func (t *Transform) TranslateXYZ(x, y, z float64) {
	t.Translate(mgl64.Vec3{x, y, z})
}

// TranslateX moves the Transform along the X axis.
func (t *Transform) TranslateX(x float64) {
	t.Translate(mgl64.Vec3{x, 0, 0})
}

// TranslateY moves the Transform along the Y axis.
func (t *Transform) TranslateY(y float64) {
	t.Translate(mgl64.Vec3{0, y, 0})
}

// TranslateZ moves the Transform along the Z axis.
func (t *Transform) TranslateZ(z float64) {
	t.Translate(mgl64.Vec3{0, 0, z})
}

// TranslateLeft moves the Transform by the given amount along its own left direction.
func (t *Transform) TranslateLeft(amount float64) {
	t.Translate(t.Left().Mul(amount))
}

// TranslateUp moves the Transform by the given amount along its own up direction.
func (t *Transform) TranslateUp(amount float64) {
	t.Translate(t.Up().Mul(amount))
}

// TranslateForward moves the Transform by the given amount along its own forward direction (-Z for an unrotated Transform).
func (t *Transform) TranslateForward(amount float64) {
	t.Translate(t.Forward().Mul(amount))
}

// TranslateSmooth moves the Transform part of the way towards the target translation. The larger the elapsed time is compared to the
// response time, the further it moves; a response time of 0 moves it all the way. Non-positive elapsed times do nothing.
func (t *Transform) TranslateSmooth(target mgl64.Vec3, elapsed, responseTime float64) {
	if elapsed <= 0 {
		return
	}
	t.Translate(target.Sub(t.translation).Mul(elapsed / (elapsed + responseTime)))
}

// Directions and transformation

// Forward returns the Transform's forward direction; for an unrotated Transform, this is -Z.
func (t *Transform) Forward() mgl64.Vec3 {
	return matrixBack(t.Matrix()).Mul(-1)
}

// Back returns the Transform's backward direction; for an unrotated Transform, this is +Z.
func (t *Transform) Back() mgl64.Vec3 {
	return matrixBack(t.Matrix())
}

// Up returns the Transform's upward direction; for an unrotated Transform, this is +Y.
func (t *Transform) Up() mgl64.Vec3 {
	return matrixUp(t.Matrix())
}

// Down returns the Transform's downward direction; for an unrotated Transform, this is -Y.
func (t *Transform) Down() mgl64.Vec3 {
	return matrixUp(t.Matrix()).Mul(-1)
}

// Right returns the Transform's right direction; for an unrotated Transform, this is +X.
func (t *Transform) Right() mgl64.Vec3 {
	return matrixRight(t.Matrix())
}

// Left returns the Transform's left direction; for an unrotated Transform, this is -X.
func (t *Transform) Left() mgl64.Vec3 {
	return matrixRight(t.Matrix()).Mul(-1)
}

// TransformPoint transforms the given point by the Transform's matrix.
func (t *Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return TransformPoint(t.Matrix(), point)
}

// TransformVector transforms the given vector by the Transform's matrix, ignoring translation.
func (t *Transform) TransformVector(vec mgl64.Vec3) mgl64.Vec3 {
	return TransformVector(t.Matrix(), vec)
}
