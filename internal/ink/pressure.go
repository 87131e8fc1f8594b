package ink

import (
	"time"

	"github.com/chewxy/math32"
)

const (
	// devicePressureRest is the constant mid-value that pointer devices
	// without a pressure sensor report for every sample. A device is only
	// trusted once it has been seen to leave that value.
	devicePressureRest = 0.5

	// pressureDefault is returned for the first sample of a gesture,
	// before any velocity history exists.
	pressureDefault = 0.6

	pressureFloor = 0.2
	pressureCeil  = 1.0

	// velocitySaturation is the pointer speed, in document units per
	// millisecond, at or beyond which simulated pressure bottoms out.
	velocitySaturation = 5.0
)

// Estimator derives a 0..1 drawing intensity per sample, either passed
// through from a genuine pressure device or simulated from pointer velocity.
// It is transient per-gesture state, like Smoother.
type Estimator struct {
	lastPos    Point
	lastTime   time.Time
	lastOut    float32
	haveSample bool

	// deviceLive flips once the reported device pressure leaves the
	// constant rest value, which marks the device as pressure-capable
	// for the remainder of the gesture.
	deviceLive bool

	// constant stays true while every estimate produced so far is
	// exactly 1 (pressure disabled); callers use it to commit nil
	// pressure arrays for constant-width strokes.
	constant bool
}

// NewEstimator returns a fresh per-gesture pressure estimator.
func NewEstimator() *Estimator {
	return &Estimator{constant: true}
}

// Estimate returns the intensity for one sample.
//
// Disabled estimation always yields 1. A device whose reported pressure has
// varied from the rest value is passed through. Otherwise intensity is
// simulated from pointer velocity: slow movement presses hard, fast movement
// presses lightly. The result is always finite and in [0,1].
func (e *Estimator) Estimate(pos Point, t time.Time, device float32, enabled bool) float32 {
	if !enabled {
		e.remember(pos, t, 1)
		return 1
	}

	if device != devicePressureRest && device > 0 && device <= 1 {
		e.deviceLive = true
	}
	if e.deviceLive {
		out := clamp01(device)
		e.remember(pos, t, out)
		return out
	}

	if !e.haveSample {
		e.remember(pos, t, pressureDefault)
		return pressureDefault
	}

	dt := float32(t.Sub(e.lastTime).Milliseconds())
	if dt <= 0 {
		// Coincident timestamps carry no velocity information;
		// reuse the previous estimate.
		e.remember(pos, t, e.lastOut)
		return e.lastOut
	}

	v := pos.Distance(e.lastPos) / dt
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		e.remember(pos, t, e.lastOut)
		return e.lastOut
	}
	if v > velocitySaturation {
		v = velocitySaturation
	}
	out := pressureCeil - (pressureCeil-pressureFloor)*(v/velocitySaturation)
	e.remember(pos, t, out)
	return out
}

// Constant reports whether every estimate so far was exactly 1, meaning the
// gesture has no usable pressure data and should commit a nil pressure array.
func (e *Estimator) Constant() bool {
	return e.constant
}

// Reset clears all state between gestures.
func (e *Estimator) Reset() {
	*e = Estimator{constant: true}
}

func (e *Estimator) remember(pos Point, t time.Time, out float32) {
	e.lastPos = pos
	e.lastTime = t
	e.lastOut = out
	e.haveSample = true
	if out != 1 {
		e.constant = false
	}
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
