// Package sprite provides tick-driven frame animation and textured sprites.
package sprite

import (
	"errors"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// ErrEmptyClip is returned when a clip is built without frames.
var ErrEmptyClip = errors.New("sprite: clip has no frames")

// Frame is one animation cell: a source rectangle on the sprite's texture
// shown for Ticks simulation ticks.
type Frame struct {
	Src   core.Rect
	Ticks int
}

// Clip is an immutable frame sequence. A Clip can be shared by any number of
// animations; the playback state lives in Animation.
type Clip struct {
	frames  []Frame
	looping bool
	period  int
}

// NewClip builds a clip from frames. Durations below one tick are raised to
// one tick.
func NewClip(frames []Frame, looping bool) (*Clip, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyClip
	}

	c := &Clip{
		frames:  make([]Frame, len(frames)),
		looping: looping,
	}
	for i, f := range frames {
		if f.Ticks < 1 {
			f.Ticks = 1
		}
		c.frames[i] = f
		c.period += f.Ticks
	}
	return c, nil
}

// MustClip is like NewClip but panics on error. Intended for static tables.
func MustClip(frames []Frame, looping bool) *Clip {
	c, err := NewClip(frames, looping)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of frames.
func (c *Clip) Len() int {
	return len(c.frames)
}

// Looping reports whether playback wraps after the last frame.
func (c *Clip) Looping() bool {
	return c.looping
}

// Period returns the total duration of the clip in ticks.
func (c *Clip) Period() int {
	return c.period
}

// Frame returns frame i.
func (c *Clip) Frame(i int) Frame {
	return c.frames[i]
}

// Animation plays a Clip. It only advances when Advance is called, so two
// animations fed the same tick sequence are always in the same state.
type Animation struct {
	clip    *Clip
	index   int
	elapsed int
	done    bool
}

// NewAnimation starts clip at frame 0.
func NewAnimation(clip *Clip) *Animation {
	return &Animation{clip: clip}
}

// Advance moves the animation forward by dt ticks.
//
// Elapsed ticks accumulate in the current frame; whenever they reach the
// frame duration the duration is subtracted and playback moves to the next
// frame. Looping clips wrap to frame 0. Non-looping clips park on the last
// frame once its duration has elapsed and ignore further ticks.
func (a *Animation) Advance(dt int) {
	if dt <= 0 || a.done {
		return
	}

	frames := a.clip.frames
	if a.clip.looping {
		// A whole period brings every state back to itself.
		dt %= a.clip.period
	}
	a.elapsed += dt

	for a.elapsed >= frames[a.index].Ticks {
		if !a.clip.looping && a.index == len(frames)-1 {
			a.elapsed = frames[a.index].Ticks
			a.done = true
			return
		}
		a.elapsed -= frames[a.index].Ticks
		a.index++
		if a.index == len(frames) {
			a.index = 0
		}
	}
}

// Frame returns the frame currently visible.
func (a *Animation) Frame() Frame {
	return a.clip.frames[a.index]
}

// Index returns the current frame index.
func (a *Animation) Index() int {
	return a.index
}

// Elapsed returns the ticks spent in the current frame.
func (a *Animation) Elapsed() int {
	return a.elapsed
}

// Done reports whether a non-looping animation has finished its last frame.
// Looping animations are never done.
func (a *Animation) Done() bool {
	return a.done
}

// Clip returns the clip being played.
func (a *Animation) Clip() *Clip {
	return a.clip
}

// Reset rewinds to frame 0.
func (a *Animation) Reset() {
	a.index = 0
	a.elapsed = 0
	a.done = false
}

// SetClip switches to clip and rewinds. Setting the clip already playing
// keeps the current position.
func (a *Animation) SetClip(clip *Clip) {
	if clip == nil || clip == a.clip {
		return
	}
	a.clip = clip
	a.Reset()
}
