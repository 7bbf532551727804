package tetrabounds

import "reflect"

// TransformListener is implemented by anything that wants to be told when a Transform's matrix changes. The cookie is the value
// given when the listener was added, which lets one listener tell apart the transforms it's watching.
// Transforms only hold references to their listeners; a listener that goes away must remove itself from the transforms it was
// added to.
type TransformListener interface {
	TransformChanged(transform *Transform, cookie int64)
}

// ListenerFunc is a function that can be used as a TransformListener.
type ListenerFunc func(transform *Transform, cookie int64)

// TransformChanged calls the function.
func (f ListenerFunc) TransformChanged(transform *Transform, cookie int64) {
	f(transform, cookie)
}

// ListenerHandle identifies a single listener registration on a Transform. The zero ListenerHandle is never handed out.
type ListenerHandle uint64

type listenerEntry struct {
	handle   ListenerHandle
	listener TransformListener
	cookie   int64
}

// sameListener returns if the two listeners are the same listener. Listeners that can't be compared (like ListenerFuncs) are
// never the same as anything; those can only be removed by their handle.
func sameListener(a, b TransformListener) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
