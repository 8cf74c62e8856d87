package precise

import (
	"sort"

	"github.com/solarlune/precise/math64"
	"github.com/tanema/gween/ease"
)

const (
	TrackTypePosition = "Pos"
	TrackTypeScale    = "Sca"
	TrackTypeRotation = "Rot"
)

// Interpolation controls how an AnimationTrack blends between keyframes.
type Interpolation int

const (
	InterpolationLinear Interpolation = iota // Lerp for vectors, Slerp for rotations
	InterpolationStep                        // Hold the previous keyframe until the next one is reached
)

// Data holds the value of a Keyframe; either a Vector3 (position and scale tracks) or a Quaternion (rotation tracks).
type Data struct {
	contents interface{}
}

// AsVector returns the Data as a Vector3; if it holds a Quaternion, its X, Y, and Z components are returned.
func (data Data) AsVector() Vector3 {
	switch v := data.contents.(type) {
	case Vector3:
		return v
	case Quaternion:
		return v.Vector()
	}
	return Vector3{}
}

// AsQuaternion returns the Data as a Quaternion, or the identity Quaternion if it holds anything else.
func (data Data) AsQuaternion() Quaternion {
	if q, ok := data.contents.(Quaternion); ok {
		return q
	}
	return NewQuaternionIdentity()
}

type Keyframe struct {
	Time float64
	Data Data
}

func newKeyframe(time float64, data Data) *Keyframe {
	return &Keyframe{
		Time: time,
		Data: data,
	}
}

// AnimationTrack is a time-sorted series of keyframes for one property (position, scale, or rotation) of a channel.
type AnimationTrack struct {
	Type          string
	Keyframes     []*Keyframe
	Interpolation Interpolation
	Easing        ease.TweenFunc // Optional; reshapes the blend between each pair of keyframes. Easing runs in float32, so the blend is only accurate to about 1e-7
}

func newAnimationTrack(trackType string) *AnimationTrack {
	return &AnimationTrack{
		Type:      trackType,
		Keyframes: []*Keyframe{},
	}
}

// AddKeyframe adds a keyframe holding a Vector3 or Quaternion at the given time, keeping the keyframes sorted by time.
// A keyframe already at that time is replaced.
func (track *AnimationTrack) AddKeyframe(time float64, data interface{}) {

	key := newKeyframe(time, Data{data})

	index := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time >= time })

	if index < len(track.Keyframes) && track.Keyframes[index].Time == time {
		track.Keyframes[index] = key
		return
	}

	track.Keyframes = append(track.Keyframes, nil)
	copy(track.Keyframes[index+1:], track.Keyframes[index:])
	track.Keyframes[index] = key

}

// Length returns the time of the last keyframe in the track.
func (track *AnimationTrack) Length() float64 {
	if len(track.Keyframes) == 0 {
		return 0
	}
	return track.Keyframes[len(track.Keyframes)-1].Time
}

// keyframesAt returns the keyframes bracketing the given time and how far along between them the time is.
// Outside the track, both keyframes are the nearest end.
func (track *AnimationTrack) keyframesAt(time float64) (*Keyframe, *Keyframe, float64) {

	if first := track.Keyframes[0]; time <= first.Time {
		return first, first, 0
	} else if last := track.Keyframes[len(track.Keyframes)-1]; time >= last.Time {
		return last, last, 0
	}

	index := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time >= time })

	last := track.Keyframes[index]

	if last.Time == time {
		return last, last, 0
	}

	first := track.Keyframes[index-1]

	if track.Interpolation == InterpolationStep {
		return first, first, 0
	}

	t := (time - first.Time) / (last.Time - first.Time)

	if track.Easing != nil {
		t = float64(track.Easing(float32(t), 0, 1, 1))
	}

	return first, last, t

}

// ValueAsVector returns the track's Vector3 value at the given time. An empty track returns a zero Vector3.
func (track *AnimationTrack) ValueAsVector(time float64) Vector3 {

	if len(track.Keyframes) == 0 {
		return Vector3{}
	}

	first, last, t := track.keyframesAt(time)

	if first == last {
		return first.Data.AsVector()
	}

	return first.Data.AsVector().LerpUnclamped(last.Data.AsVector(), t)

}

// ValueAsQuaternion returns the track's rotation at the given time. An empty track returns the identity Quaternion.
func (track *AnimationTrack) ValueAsQuaternion(time float64) Quaternion {

	if len(track.Keyframes) == 0 {
		return NewQuaternionIdentity()
	}

	first, last, t := track.keyframesAt(time)

	if first == last {
		return first.Data.AsQuaternion()
	}

	return first.Data.AsQuaternion().SlerpUnclamped(last.Data.AsQuaternion(), t)

}

// AnimationChannel groups the tracks that animate a single target, identified by Name.
type AnimationChannel struct {
	Name   string
	Tracks map[string]*AnimationTrack
}

func NewAnimationChannel(name string) *AnimationChannel {
	return &AnimationChannel{
		Name:   name,
		Tracks: map[string]*AnimationTrack{},
	}
}

func (channel *AnimationChannel) AddTrack(trackType string) *AnimationTrack {
	newTrack := newAnimationTrack(trackType)
	channel.Tracks[trackType] = newTrack
	return newTrack
}

// Sample returns the channel's Transform at the given time, starting from the rest Transform for any
// property the channel has no track for.
func (channel *AnimationChannel) Sample(time float64, rest Transform) Transform {

	if track, exists := channel.Tracks[TrackTypePosition]; exists && len(track.Keyframes) > 0 {
		rest.Position = track.ValueAsVector(time)
	}

	if track, exists := channel.Tracks[TrackTypeScale]; exists && len(track.Keyframes) > 0 {
		rest.Scale = track.ValueAsVector(time)
	}

	if track, exists := channel.Tracks[TrackTypeRotation]; exists && len(track.Keyframes) > 0 {
		rest.Rotation = track.ValueAsQuaternion(time)
	}

	return rest

}

type Animation struct {
	Name     string
	Channels map[string]*AnimationChannel
	Length   float64 // Length of the animation in seconds
}

func NewAnimation(name string) *Animation {
	return &Animation{
		Name:     name,
		Channels: map[string]*AnimationChannel{},
	}
}

func (animation *Animation) AddChannel(name string) *AnimationChannel {
	newChannel := NewAnimationChannel(name)
	animation.Channels[name] = newChannel
	return newChannel
}

// UpdateLength sets the Animation's Length to the time of its last keyframe, across all tracks.
func (animation *Animation) UpdateLength() {
	animation.Length = 0
	for _, channel := range animation.Channels {
		for _, track := range channel.Tracks {
			animation.Length = math64.Max(animation.Length, track.Length())
		}
	}
}

type FinishMode int

const (
	FinishModeLoop FinishMode = iota
	FinishModePingPong
	FinishModeStop
)

// AnimationPlayer plays back an Animation, sampling a Transform for each of its channels on every Update.
type AnimationPlayer struct {
	Animation  *Animation
	Playhead   float64
	PlaySpeed  float64
	Playing    bool
	FinishMode FinishMode
	OnFinish   func()

	Rest       map[string]Transform // Base Transforms for channels; channels not in here start from NewTransform()
	Transforms map[string]Transform // The sampled Transform per channel name, as of the last Update
}

func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{
		PlaySpeed:  1,
		FinishMode: FinishModeStop,
		Rest:       map[string]Transform{},
		Transforms: map[string]Transform{},
	}
}

func (ap *AnimationPlayer) Clone() *AnimationPlayer {
	newAP := NewAnimationPlayer()

	for name, t := range ap.Rest {
		newAP.Rest[name] = t
	}
	for name, t := range ap.Transforms {
		newAP.Transforms[name] = t
	}

	newAP.Animation = ap.Animation
	newAP.Playhead = ap.Playhead
	newAP.PlaySpeed = ap.PlaySpeed
	newAP.FinishMode = ap.FinishMode
	newAP.OnFinish = ap.OnFinish
	newAP.Playing = ap.Playing
	return newAP
}

// Play starts playing the given Animation from the beginning, unless it is already playing.
func (ap *AnimationPlayer) Play(animation *Animation) {

	if ap.Animation != animation || !ap.Playing {
		ap.Animation = animation
		ap.Playhead = 0.0
		ap.Playing = true
		ap.sample()
	}

}

// Transform returns the last sampled Transform for the named channel.
func (ap *AnimationPlayer) Transform(channelName string) (Transform, bool) {
	t, ok := ap.Transforms[channelName]
	return t, ok
}

func (ap *AnimationPlayer) sample() {

	for name, channel := range ap.Animation.Channels {

		rest, ok := ap.Rest[name]
		if !ok {
			rest = NewTransform()
		}

		ap.Transforms[name] = channel.Sample(ap.Playhead, rest)

	}

}

// Update advances the playhead by dt * PlaySpeed, handles reaching either end of the Animation according to the
// FinishMode, and then samples every channel at the new playhead.
func (ap *AnimationPlayer) Update(dt float64) {

	if !ap.Playing || ap.Animation == nil {
		return
	}

	ap.Playhead += dt * ap.PlaySpeed

	length := ap.Animation.Length

	if length <= 0 {

		ap.Playhead = 0

	} else if ap.FinishMode == FinishModeLoop && (ap.Playhead >= length || ap.Playhead < 0) {

		ap.Playhead = math64.Repeat(ap.Playhead, length)

		if ap.OnFinish != nil {
			ap.OnFinish()
		}

	} else if ap.FinishMode == FinishModePingPong && (ap.Playhead > length || ap.Playhead < 0) {

		finished := ap.Playhead < 0

		ap.Playhead = math64.PingPong(ap.Playhead, length)
		ap.PlaySpeed *= -1

		if finished && ap.OnFinish != nil {
			ap.OnFinish()
		}

	} else if ap.FinishMode == FinishModeStop && (ap.Playhead > length || ap.Playhead < 0) {

		ap.Playhead = math64.Clamp(ap.Playhead, 0, length)
		ap.Playing = false

		if ap.OnFinish != nil {
			ap.OnFinish()
		}

	}

	ap.sample()

}
