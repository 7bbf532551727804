package tetrabounds

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newAnimatedScene(t *testing.T, mode FinishMode) (*Scene, *Object, *AnimationPlayer) {

	t.Helper()

	scene := NewScene("animated")
	cube := NewObject("cube")
	scene.Add(cube)

	animation := NewAnimation("slide")
	if _, err := animation.AddChannel("cube").AddTrack(TrackTypeTranslationX, 0, 10, 0, 2, "linear"); err != nil {
		t.Fatal(err)
	}

	player := NewAnimationPlayer(scene)
	player.FinishMode = mode
	player.Play(animation)

	return scene, cube, player

}

func TestAnimationTrackErrors(t *testing.T) {

	channel := NewAnimationChannel("cube")

	if _, err := channel.AddTrack("translation.w", 0, 1, 0, 1, "linear"); !errors.Is(err, ErrUnknownTrackType) {
		t.Errorf("unknown track type error = %v, want ErrUnknownTrackType", err)
	}

	if _, err := channel.AddTrack(TrackTypeScaleX, 0, 1, 0, 1, "wobble"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("unknown ease error = %v, want ErrUnknownEase", err)
	}

	track, err := channel.AddTrack(TrackTypeScaleX, 1, 3, 0, 1, "")
	if err != nil {
		t.Fatal(err)
	}

	if track.Ease != "linear" {
		t.Errorf("default ease = %q, want linear", track.Ease)
	}

}

func TestAnimationTrackValueAt(t *testing.T) {

	channel := NewAnimationChannel("cube")
	track, err := channel.AddTrack(TrackTypeTranslationY, 2, 6, 1, 2, "linear")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		time float64
		want float64
	}{
		{"before start", 0, 2},
		{"at start", 1, 2},
		{"halfway", 2, 4},
		{"at end", 3, 6},
		{"after end", 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := track.ValueAt(tt.time); !approxEqual(got, tt.want) {
				t.Errorf("ValueAt(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}

}

func TestAnimationLength(t *testing.T) {

	animation := NewAnimation("multi")
	animation.AddChannel("a").AddTrack(TrackTypeTranslationX, 0, 1, 0, 1, "linear")
	animation.AddChannel("b").AddTrack(TrackTypeScaleY, 0, 1, 2, 1.5, "outQuad")

	if got := animation.Length(); !approxEqual(got, 3.5) {
		t.Errorf("Length() = %v, want 3.5", got)
	}

	if animation.AddChannel("a") != animation.Channels["a"] {
		t.Error("AddChannel should return the existing channel")
	}

}

func TestAnimationPlayerStop(t *testing.T) {

	_, cube, player := newAnimatedScene(t, FinishModeStop)

	finished := 0
	player.OnFinish = func() { finished++ }

	player.Update(1)

	if x := cube.Transform().Translation().X(); !approxEqual(x, 5) {
		t.Errorf("x after 1s = %v, want 5", x)
	}

	player.Update(5)

	if x := cube.Transform().Translation().X(); !approxEqual(x, 10) {
		t.Errorf("x after end = %v, want 10", x)
	}

	if player.Playing || finished != 1 {
		t.Errorf("playing = %v, finished = %d; want stopped once", player.Playing, finished)
	}

	player.Update(1)

	if finished != 1 {
		t.Errorf("stopped player should not finish again, finished = %d", finished)
	}

}

func TestAnimationPlayerLoop(t *testing.T) {

	_, cube, player := newAnimatedScene(t, FinishModeLoop)

	finished := 0
	player.OnFinish = func() { finished++ }

	player.Update(2.5)

	if !approxEqual(player.Playhead, 0.5) {
		t.Errorf("playhead = %v, want 0.5", player.Playhead)
	}

	if x := cube.Transform().Translation().X(); !approxEqual(x, 2.5) {
		t.Errorf("x = %v, want 2.5", x)
	}

	if !player.Playing || finished != 1 {
		t.Errorf("playing = %v, finished = %d; want looping once", player.Playing, finished)
	}

}

func TestAnimationPlayerPingPong(t *testing.T) {

	_, cube, player := newAnimatedScene(t, FinishModePingPong)

	player.Update(2.5)

	if !approxEqual(player.Playhead, 1.5) || player.PlaySpeed != -1 {
		t.Fatalf("playhead = %v, speed = %v; want 1.5 heading backwards", player.Playhead, player.PlaySpeed)
	}

	if x := cube.Transform().Translation().X(); !approxEqual(x, 7.5) {
		t.Errorf("x = %v, want 7.5", x)
	}

	finished := 0
	player.OnFinish = func() { finished++ }

	player.Update(2)

	if !approxEqual(player.Playhead, 0.5) || player.PlaySpeed != 1 || finished != 1 {
		t.Errorf("playhead = %v, speed = %v, finished = %d; want 0.5 heading forwards after one finish", player.Playhead, player.PlaySpeed, finished)
	}

}

func TestAnimationPlayerBatchesNotifications(t *testing.T) {

	scene, cube, player := newAnimatedScene(t, FinishModeStop)

	if _, err := player.Animation.Channels["cube"].AddTrack(TrackTypeScaleX, 1, 2, 0, 2, "inOutSine"); err != nil {
		t.Fatal(err)
	}

	listener := &countingListener{}
	cube.Transform().AddListener(listener, 7)

	player.Update(0.5)

	if listener.calls != 1 {
		t.Errorf("listener calls = %d, want one per frame", listener.calls)
	}

	if scene.Batch().Suspended() {
		t.Error("scene batch should be resumed after Update")
	}

}

func TestAnimationPlayerRotation(t *testing.T) {

	scene := NewScene("spin")
	obj := NewObject("spinner")
	scene.Add(obj)

	animation := NewAnimation("turn")
	if _, err := animation.AddChannel("spinner").AddTrack(TrackTypeRotationY, 0, 90, 0, 1, "outCubic"); err != nil {
		t.Fatal(err)
	}

	// A channel for an object that isn't in the scene is skipped.
	animation.AddChannel("ghost").AddTrack(TrackTypeTranslationX, 0, 1, 0, 1, "linear")

	player := NewAnimationPlayer(scene)
	player.Play(animation)
	player.Update(1)

	got := obj.Transform().TransformVector(VecX)
	want := mgl64.Vec3{0, 0, -1}

	if !vecApproxEqual(got, want) {
		t.Errorf("rotated +X = %v, want %v", got, want)
	}

}
