package shadertrack

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame mixing metrics.
// Only populated when Config.Debug is set.
type debugStats struct {
	evalTime   time.Duration
	active     int
	writes     int
	crossfades int
	hardCuts   int
	swaps      int
}

func (s *debugStats) reset() {
	*s = debugStats{}
}

// DebugStats is a copy of the metrics of the last evaluated frame.
type DebugStats struct {
	EvalTime   time.Duration
	Active     int
	Writes     int
	Crossfades int
	HardCuts   int
	Swaps      int
}

// Stats returns the metrics gathered since the last reset. It is zero unless
// the environment was created in debug mode.
func (e *Env) Stats() DebugStats {
	if e.stats == nil {
		return DebugStats{}
	}
	s := e.stats
	return DebugStats{
		EvalTime:   s.evalTime,
		Active:     s.active,
		Writes:     s.writes,
		Crossfades: s.crossfades,
		HardCuts:   s.hardCuts,
		Swaps:      s.swaps,
	}
}

// debugLog logs the frame metrics at debug level.
func (e *Env) debugLog(frame int, at float64) {
	if e.stats == nil {
		return
	}
	s := e.stats
	Logger().Debug("frame mixed",
		slog.Int("frame", frame),
		slog.Float64("time", at),
		slog.Duration("eval", s.evalTime),
		slog.Int("clips", s.active),
		slog.Int("writes", s.writes),
		slog.Int("crossfades", s.crossfades),
		slog.Int("hard_cuts", s.hardCuts),
		slog.Int("swaps", s.swaps))
}

// debugTooManyClips warns when more than two clips of one track are active.
// Only the first two are mixed.
func (e *Env) debugTooManyClips(active []activeInput) {
	if e.stats == nil {
		return
	}
	names := make([]string, len(active))
	for i, in := range active {
		names[i] = in.clip.DisplayName()
	}
	Logger().Warn("more than two overlapping clips, extra clips ignored",
		slog.Int("active", len(active)),
		slog.Any("clips", names))
}
