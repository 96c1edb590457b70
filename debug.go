package signal

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	tickTime time.Duration
	drawTime time.Duration
	frames   int
}

// debugLogEvery is how many drawn frames pass between stats lines.
const debugLogEvery = 60

// logf prints an unconditional diagnostic to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[signal] "+format+"\n", args...)
}

// debugf prints to stderr only in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	logf(format, args...)
}

func (s *Scene) debugTick(d time.Duration) {
	s.stats.tickTime += d
}

// debugDraw accumulates draw time and periodically logs timing together
// with the last render's point counts.
func (s *Scene) debugDraw(d time.Duration) {
	s.stats.drawTime += d
	s.stats.frames++
	if s.stats.frames < debugLogEvery {
		return
	}
	n := time.Duration(s.stats.frames)
	logf("state: %s (%s) | tick: %v | draw: %v | avg over %d frames",
		s.state, s.driver.Phase(), s.stats.tickTime/n, s.stats.drawTime/n, s.stats.frames)
	logf("points: %d | drawn: %d | culled: %d | hidden: %d",
		len(s.points), s.lastRender.drawn, s.lastRender.culled, s.lastRender.hidden)
	s.stats = debugStats{}
}
