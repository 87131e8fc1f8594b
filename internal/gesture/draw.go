// Package gesture holds the transient per-gesture sessions: one is created
// at pointer-down, consumed at pointer-up and discarded on cancel. All
// settings a gesture needs are snapshotted when it starts, so mid-gesture
// toolbar changes never bleed into an active stroke.
package gesture

import (
	"time"

	"github.com/google/uuid"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// Smoothing and curve constants for the draw pipeline.
const (
	emaFactor     = 0.55
	gaussianSigma = 1.2
)

// DrawSession accumulates one freehand stroke from pointer-down to
// pointer-up: raw samples are jitter-smoothed and pressure-estimated live,
// and the finalized point sequence gets one Gaussian pass before commit.
type DrawSession struct {
	settings state.ToolSettings

	smoother  *ink.Smoother
	estimator *ink.Estimator

	points    []ink.Point
	pressures []float32
}

// NewDrawSession snapshots the current tool settings and starts a gesture
// with its first sample. Pressure is the device-reported value, or the
// constant 0.5 for devices without a sensor.
func NewDrawSession(settings state.ToolSettings, pos ink.Point, t time.Time, devicePressure float32) *DrawSession {
	s := &DrawSession{
		settings:  settings,
		smoother:  ink.NewSmoother(emaFactor),
		estimator: ink.NewEstimator(),
	}
	s.Move(pos, t, devicePressure)
	return s
}

// Move feeds one pointer sample into the gesture. Malformed samples are
// dropped and the gesture continues; no accepted sample is ever discarded
// from the committed point list.
func (s *DrawSession) Move(pos ink.Point, t time.Time, devicePressure float32) {
	smoothed, ok := s.smoother.Process(pos)
	if !ok {
		return
	}
	p := s.estimator.Estimate(pos, t, devicePressure, s.settings.PressureEnabled)
	s.points = append(s.points, smoothed)
	s.pressures = append(s.pressures, p)
}

// Preview returns the in-progress stroke for live rendering. The widget
// throttles how often it rebuilds geometry from this; the data itself is
// complete at every call.
func (s *DrawSession) Preview() *ink.Stroke {
	return s.stroke(s.points, s.pressures)
}

// Finish finalizes the gesture: the point sequence gets its single Gaussian
// pass, the stroke receives an identity and ownership is ready to transfer
// to the board. Empty gestures report ink.ErrDegenerate.
func (s *DrawSession) Finish() (*ink.Stroke, error) {
	if len(s.points) == 0 {
		return nil, ink.ErrDegenerate
	}
	pts := ink.GaussianSmooth(s.points, gaussianSigma)
	st := s.stroke(pts, s.pressures)
	st.ID = uuid.NewString()
	return st, nil
}

// Cancel discards all transient state. The board is never touched.
func (s *DrawSession) Cancel() {
	s.smoother.Reset()
	s.estimator.Reset()
	s.points = nil
	s.pressures = nil
}

func (s *DrawSession) stroke(pts []ink.Point, pressures []float32) *ink.Stroke {
	st := &ink.Stroke{
		Points:    pts,
		BaseWidth: s.settings.BaseWidth,
		Color:     s.settings.Color,
		Style:     s.settings.Style,
		Brush:     s.settings.Brush,
	}
	if !s.estimator.Constant() {
		st.Pressures = pressures
	}
	return st
}
