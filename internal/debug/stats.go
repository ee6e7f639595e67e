package debug

import (
	"time"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/jelloface/bouncy/internal/physics"
)

const reportInterval = 5 * time.Second

// Stats logs a periodic frame/physics summary. It replaces an on-screen
// overlay: the numbers land in the structured log instead of the frame.
type Stats struct {
	log    *zap.Logger
	frames int
	ticks  int
	last   time.Time
}

// NewStats returns a stats collector reporting through log.
func NewStats(log *zap.Logger) *Stats {
	return &Stats{log: log, last: time.Now()}
}

// Frame records one presented frame and how many physics ticks it ran. Every
// reportInterval it snapshots the bodies and logs frame rate, effective tick
// rate, and mean ball speed.
func (s *Stats) Frame(ticks int, bodies []*physics.Body) {
	s.frames++
	s.ticks += ticks
	elapsed := time.Since(s.last)
	if elapsed < reportInterval {
		return
	}

	// Deep-copy the bodies so the summary reads a stable snapshot.
	var snap []physics.Body
	if err := copier.Copy(&snap, &bodies); err != nil {
		s.log.Warn("stats snapshot failed", zap.Error(err))
	}

	s.log.Info("frame stats",
		zap.Float64("fps", float64(s.frames)/elapsed.Seconds()),
		zap.Float64("tick_rate", float64(s.ticks)/elapsed.Seconds()),
		zap.Int("balls", len(snap)),
		zap.Float32("mean_speed", meanSpeed(snap)),
	)
	s.frames, s.ticks = 0, 0
	s.last = time.Now()
}

func meanSpeed(bodies []physics.Body) float32 {
	if len(bodies) == 0 {
		return 0
	}
	var sum float32
	for _, b := range bodies {
		sum += b.Velocity.Len()
	}
	return sum / float32(len(bodies))
}
