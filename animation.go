package tetrabounds

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track types, naming the Transform component an AnimationTrack drives. Rotation tracks are in degrees, around the given local axis,
// on top of the rotation the Transform had when the animation started playing.
const (
	TrackTypeTranslationX = "translation.x"
	TrackTypeTranslationY = "translation.y"
	TrackTypeTranslationZ = "translation.z"
	TrackTypeScaleX       = "scale.x"
	TrackTypeScaleY       = "scale.y"
	TrackTypeScaleZ       = "scale.z"
	TrackTypeRotationX    = "rotation.x"
	TrackTypeRotationY    = "rotation.y"
	TrackTypeRotationZ    = "rotation.z"
)

const ErrorUnknownTrackType = "error: unknown animation track type"
const ErrorUnknownEase = "error: unknown easing function"

// ErrUnknownTrackType is returned when an AnimationTrack is created with a type that isn't one of the TrackType constants.
var ErrUnknownTrackType = errors.New(ErrorUnknownTrackType)

// ErrUnknownEase is returned when an AnimationTrack is created with an easing name that isn't one of EaseNames().
var ErrUnknownEase = errors.New(ErrorUnknownEase)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"inBack":     ease.InBack,
	"outBack":    ease.OutBack,
	"inOutBack":  ease.InOutBack,
	"inElastic":  ease.InElastic,
	"outElastic": ease.OutElastic,
	"inBounce":   ease.InBounce,
	"outBounce":  ease.OutBounce,
}

// EaseNames returns the names of the easing functions AnimationTracks can use, sorted alphabetically.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validTrackType(trackType string) bool {
	switch trackType {
	case TrackTypeTranslationX, TrackTypeTranslationY, TrackTypeTranslationZ,
		TrackTypeScaleX, TrackTypeScaleY, TrackTypeScaleZ,
		TrackTypeRotationX, TrackTypeRotationY, TrackTypeRotationZ:
		return true
	}
	return false
}

// AnimationTrack tweens a single Transform component from one value to another over a span of time, using an easing function.
type AnimationTrack struct {
	Type     string
	From, To float64
	Start    float64 // When the track starts, in seconds from the beginning of the Animation
	Duration float64 // How long the track lasts, in seconds
	Ease     string

	tween *gween.Tween
}

func newAnimationTrack(trackType string, from, to, start, duration float64, easeName string) (*AnimationTrack, error) {

	if !validTrackType(trackType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrackType, trackType)
	}

	if easeName == "" {
		easeName = "linear"
	}

	easing, ok := easings[easeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, easeName)
	}

	duration = math.Max(duration, 0)

	return &AnimationTrack{
		Type:     trackType,
		From:     from,
		To:       to,
		Start:    start,
		Duration: duration,
		Ease:     easeName,
		tween:    gween.New(float32(from), float32(to), float32(duration), easing),
	}, nil

}

// ValueAt returns the value of the track at the given time in seconds from the beginning of the Animation.
func (track *AnimationTrack) ValueAt(time float64) float64 {

	local := time - track.Start

	if local <= 0 {
		return track.From
	} else if local >= track.Duration {
		return track.To
	}

	value, _ := track.tween.Set(float32(local))
	return float64(value)

}

// End returns when the track ends, in seconds from the beginning of the Animation.
func (track *AnimationTrack) End() float64 {
	return track.Start + track.Duration
}

// AnimationChannel holds the tracks that animate a single Object, identified by its name.
type AnimationChannel struct {
	Name   string
	Tracks map[string]*AnimationTrack
}

// NewAnimationChannel returns a new AnimationChannel for the Object with the given name.
func NewAnimationChannel(name string) *AnimationChannel {
	return &AnimationChannel{
		Name:   name,
		Tracks: map[string]*AnimationTrack{},
	}
}

// AddTrack adds a track of the given type to the channel, replacing any track of the same type.
func (channel *AnimationChannel) AddTrack(trackType string, from, to, start, duration float64, easeName string) (*AnimationTrack, error) {
	track, err := newAnimationTrack(trackType, from, to, start, duration, easeName)
	if err != nil {
		return nil, err
	}
	channel.Tracks[trackType] = track
	return track, nil
}

// Animation is a named set of channels, each animating one Object's Transform.
type Animation struct {
	Name     string
	Channels map[string]*AnimationChannel
}

// NewAnimation returns a new, empty Animation.
func NewAnimation(name string) *Animation {
	return &Animation{
		Name:     name,
		Channels: map[string]*AnimationChannel{},
	}
}

// AddChannel adds a channel for the Object of the given name, or returns the existing one.
func (animation *Animation) AddChannel(name string) *AnimationChannel {
	if channel, exists := animation.Channels[name]; exists {
		return channel
	}
	newChannel := NewAnimationChannel(name)
	animation.Channels[name] = newChannel
	return newChannel
}

// Length returns the length of the Animation in seconds; that is, when its last track ends.
func (animation *Animation) Length() float64 {
	length := 0.0
	for _, channel := range animation.Channels {
		for _, track := range channel.Tracks {
			length = math.Max(length, track.End())
		}
	}
	return length
}

type boundChannel struct {
	channel      *AnimationChannel
	transform    *Transform
	baseRotation mgl64.Quat
}

// AnimationPlayer plays an Animation back on the Objects of a Scene, matching channels to Objects by name.
type AnimationPlayer struct {
	Scene      *Scene
	Animation  *Animation
	Playhead   float64
	PlaySpeed  float64
	Playing    bool
	FinishMode FinishMode
	OnFinish   func()

	bound []boundChannel
}

// NewAnimationPlayer returns a new AnimationPlayer for the given Scene.
func NewAnimationPlayer(scene *Scene) *AnimationPlayer {
	return &AnimationPlayer{
		Scene:      scene,
		PlaySpeed:  1,
		FinishMode: FinishModeStop,
	}
}

// Play starts playing the given Animation from the beginning, unless it's already playing.
func (ap *AnimationPlayer) Play(animation *Animation) {

	if ap.Animation != animation || !ap.Playing {
		ap.Animation = animation
		ap.Playhead = 0.0
		ap.Playing = true
		ap.assignChannels()
	}

}

func (ap *AnimationPlayer) assignChannels() {

	ap.bound = ap.bound[:0]

	names := make([]string, 0, len(ap.Animation.Channels))
	for name := range ap.Animation.Channels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {

		obj := ap.Scene.FindObject(name)

		if obj == nil {
			log.Println("Warning: Cannot find matching object for channel " + name + " in scene " + ap.Scene.Name)
			continue
		}

		ap.bound = append(ap.bound, boundChannel{
			channel:      ap.Animation.Channels[name],
			transform:    obj.Transform(),
			baseRotation: obj.Transform().Rotation(),
		})

	}

}

// Update advances the playhead by the given time in seconds (scaled by PlaySpeed) and applies the Animation to the Objects. The
// changes are made inside a Scene update, so each Object is notified at most once per call.
func (ap *AnimationPlayer) Update(dt float64) {

	if !ap.Playing || ap.Animation == nil {
		return
	}

	length := ap.Animation.Length()

	ap.Playhead += dt * ap.PlaySpeed

	finished := false

	if length <= 0 {
		ap.Playhead = 0
		finished = true
		if ap.FinishMode == FinishModeStop {
			ap.Playing = false
		}
	} else {

		switch ap.FinishMode {

		case FinishModeLoop:
			if ap.Playhead >= length || ap.Playhead < 0 {
				ap.Playhead = math.Mod(ap.Playhead, length)
				if ap.Playhead < 0 {
					ap.Playhead += length
				}
				finished = true
			}

		case FinishModePingPong:
			if ap.Playhead > length {
				ap.Playhead = length - (ap.Playhead - length)
				ap.PlaySpeed = -ap.PlaySpeed
			} else if ap.Playhead < 0 {
				ap.Playhead = -ap.Playhead
				ap.PlaySpeed = -ap.PlaySpeed
				finished = true
			}
			ap.Playhead = clamp(ap.Playhead, 0, length)

		default:
			if ap.Playhead >= length || ap.Playhead < 0 {
				ap.Playhead = clamp(ap.Playhead, 0, length)
				ap.Playing = false
				finished = true
			}

		}

	}

	ap.Scene.Update(func() {
		for _, b := range ap.bound {
			ap.apply(b)
		}
	})

	if finished && ap.OnFinish != nil {
		ap.OnFinish()
	}

}

func (ap *AnimationPlayer) apply(b boundChannel) {

	t := b.transform
	rotation := b.baseRotation
	rotated := false

	// Sorted so rotations around several axes always compose in the same order.
	trackTypes := make([]string, 0, len(b.channel.Tracks))
	for trackType := range b.channel.Tracks {
		trackTypes = append(trackTypes, trackType)
	}
	sort.Strings(trackTypes)

	for _, trackType := range trackTypes {

		value := b.channel.Tracks[trackType].ValueAt(ap.Playhead)

		switch trackType {
		case TrackTypeTranslationX:
			t.SetTranslationX(value)
		case TrackTypeTranslationY:
			t.SetTranslationY(value)
		case TrackTypeTranslationZ:
			t.SetTranslationZ(value)
		case TrackTypeScaleX:
			t.SetScaleX(value)
		case TrackTypeScaleY:
			t.SetScaleY(value)
		case TrackTypeScaleZ:
			t.SetScaleZ(value)
		case TrackTypeRotationX:
			rotation = rotation.Mul(mgl64.QuatRotate(ToRadians(value), VecX))
			rotated = true
		case TrackTypeRotationY:
			rotation = rotation.Mul(mgl64.QuatRotate(ToRadians(value), VecY))
			rotated = true
		case TrackTypeRotationZ:
			rotation = rotation.Mul(mgl64.QuatRotate(ToRadians(value), VecZ))
			rotated = true
		}

	}

	if rotated {
		t.SetRotation(rotation)
	}

}
