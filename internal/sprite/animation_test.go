package sprite

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var (
	rectA = core.NewRect(0, 0, 8, 8)
	rectB = core.NewRect(8, 0, 8, 8)
	rectC = core.NewRect(16, 0, 8, 8)
)

func TestNewClipEmpty(t *testing.T) {
	_, err := NewClip(nil, true)
	if !errors.Is(err, ErrEmptyClip) {
		t.Errorf("NewClip(nil) error = %v, expected %v", err, ErrEmptyClip)
	}
}

func TestNewClipRaisesZeroDurations(t *testing.T) {
	clip := MustClip([]Frame{{rectA, 0}, {rectB, -3}, {rectC, 4}}, true)

	if clip.Period() != 6 {
		t.Errorf("Period() = %d, expected 6", clip.Period())
	}
	if clip.Frame(0).Ticks != 1 {
		t.Errorf("Frame(0).Ticks = %d, expected 1", clip.Frame(0).Ticks)
	}
}

func TestNewClipCopiesFrames(t *testing.T) {
	frames := []Frame{{rectA, 2}}
	clip := MustClip(frames, false)
	frames[0].Ticks = 99

	if clip.Frame(0).Ticks != 2 {
		t.Error("clip should not alias the caller's frame slice")
	}
}

func TestAnimationLoopingScenario(t *testing.T) {
	anim := NewAnimation(MustClip([]Frame{{rectA, 2}, {rectB, 3}}, true))

	if anim.Index() != 0 || anim.Elapsed() != 0 {
		t.Fatalf("initial state = (%d, %d), expected (0, 0)", anim.Index(), anim.Elapsed())
	}

	anim.Advance(1)
	anim.Advance(1)
	if anim.Frame().Src != rectB {
		t.Errorf("after 2 ticks Frame() = %v, expected B", anim.Frame().Src)
	}

	for i := 0; i < 3; i++ {
		anim.Advance(1)
	}
	if anim.Frame().Src != rectA || anim.Elapsed() != 0 {
		t.Errorf("after 5 ticks state = (%v, %d), expected (A, 0)", anim.Frame().Src, anim.Elapsed())
	}
}

func TestAnimationPeriodicity(t *testing.T) {
	tests := []struct {
		name      string
		durations []int
		step      int
	}{
		{"single frame", []int{3}, 1},
		{"two frames unit steps", []int{2, 3}, 1},
		{"three frames unit steps", []int{1, 4, 2}, 1},
		{"whole period at once", []int{1, 4, 2}, 7},
		{"uneven steps", []int{5, 5}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frames := make([]Frame, len(tc.durations))
			total := 0
			for i, d := range tc.durations {
				frames[i] = Frame{Src: core.NewRect(float32(i*8), 0, 8, 8), Ticks: d}
				total += d
			}
			anim := NewAnimation(MustClip(frames, true))

			// Advance two full periods in steps of tc.step, leaving no remainder.
			remaining := 2 * total
			for remaining > 0 {
				dt := tc.step
				if dt > remaining {
					dt = remaining
				}
				anim.Advance(dt)
				remaining -= dt
			}

			if anim.Index() != 0 || anim.Elapsed() != 0 {
				t.Errorf("after %d ticks state = (%d, %d), expected (0, 0)", 2*total, anim.Index(), anim.Elapsed())
			}
			if anim.Done() {
				t.Error("looping animation should never be done")
			}
		})
	}
}

func TestAnimationLargeStepMatchesUnitSteps(t *testing.T) {
	clip := MustClip([]Frame{{rectA, 2}, {rectB, 3}, {rectC, 4}}, true)
	big := NewAnimation(clip)
	small := NewAnimation(clip)

	big.Advance(1000)
	for i := 0; i < 1000; i++ {
		small.Advance(1)
	}

	if big.Index() != small.Index() || big.Elapsed() != small.Elapsed() {
		t.Errorf("Advance(1000) = (%d, %d), expected (%d, %d)",
			big.Index(), big.Elapsed(), small.Index(), small.Elapsed())
	}
}

func TestAnimationClamping(t *testing.T) {
	anim := NewAnimation(MustClip([]Frame{{rectA, 2}, {rectB, 3}}, false))

	anim.Advance(4)
	if anim.Index() != 1 || anim.Done() {
		t.Errorf("after 4 ticks state = (%d, done=%v), expected (1, false)", anim.Index(), anim.Done())
	}

	anim.Advance(1)
	if anim.Index() != 1 || !anim.Done() {
		t.Errorf("after 5 ticks state = (%d, done=%v), expected (1, true)", anim.Index(), anim.Done())
	}

	for i := 0; i < 100; i++ {
		anim.Advance(7)
	}
	if anim.Index() != 1 {
		t.Errorf("Index() = %d, expected to stay parked on 1", anim.Index())
	}
	if anim.Elapsed() != 3 {
		t.Errorf("Elapsed() = %d, expected capped at 3", anim.Elapsed())
	}
}

func TestAnimationIgnoresNonPositiveTicks(t *testing.T) {
	anim := NewAnimation(MustClip([]Frame{{rectA, 2}, {rectB, 3}}, true))

	anim.Advance(0)
	anim.Advance(-5)

	if anim.Index() != 0 || anim.Elapsed() != 0 {
		t.Errorf("state = (%d, %d), expected (0, 0)", anim.Index(), anim.Elapsed())
	}
}

func TestAnimationResetAndSetClip(t *testing.T) {
	run := MustClip([]Frame{{rectA, 2}, {rectB, 2}}, true)
	jump := MustClip([]Frame{{rectC, 1}}, false)
	anim := NewAnimation(run)

	anim.Advance(3)
	anim.SetClip(run)
	if anim.Index() != 1 || anim.Elapsed() != 1 {
		t.Errorf("SetClip(same) should keep position, got (%d, %d)", anim.Index(), anim.Elapsed())
	}

	anim.SetClip(jump)
	if anim.Clip() != jump || anim.Index() != 0 || anim.Elapsed() != 0 {
		t.Errorf("SetClip(other) should rewind, got (%d, %d)", anim.Index(), anim.Elapsed())
	}

	anim.Advance(5)
	if !anim.Done() {
		t.Error("jump clip should be done")
	}
	anim.Reset()
	if anim.Done() || anim.Elapsed() != 0 {
		t.Error("Reset() should clear done and elapsed")
	}
}
