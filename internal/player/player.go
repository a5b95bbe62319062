// Package player drives a blink queue from a ticker. The Player owns the
// queue: the queue itself does no locking, so all access goes through the
// run loop, with enqueues from other goroutines handed over on a channel.
package player

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/clambin/blinkq"
	"github.com/clambin/blinkq/pattern"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// Prometheus metrics
var (
	stepsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blinkq_steps_total",
		Help: "Number of steps played.",
	})
	queuedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blinkq_patterns_queued_total",
		Help: "Number of patterns accepted into the queue.",
	})
	droppedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blinkq_patterns_dropped_total",
		Help: "Number of patterns dropped because the queue was full.",
	})
	errorCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blinkq_led_errors_total",
		Help: "Number of failures driving the LED.",
	})
	queueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "blinkq_queue_length",
		Help: "Number of patterns waiting in the queue.",
	})
)

// Player structure
type Player struct {
	Interval time.Duration
	queue    *blinkq.Queue
	enqueue  chan pattern.Pattern
	length   atomic.Int64
}

// New creates a Player stepping queue every interval
func New(queue *blinkq.Queue, interval time.Duration) *Player {
	return &Player{
		Interval: interval,
		queue:    queue,
		enqueue:  make(chan pattern.Pattern, queue.Cap()),
	}
}

// Enqueue hands patterns to the run loop. Patterns are dropped (and counted)
// when there is no room for them.
func (p *Player) Enqueue(patterns ...pattern.Pattern) {
	for _, pat := range patterns {
		select {
		case p.enqueue <- pat:
		default:
			droppedCounter.Inc()
			log.WithField("pattern", pat.String()).Warning("queue full. dropping pattern")
		}
	}
}

// Length returns the number of queued patterns, including the one currently
// playing
func (p *Player) Length() int {
	return int(p.length.Load())
}

// Capacity returns the capacity of the queue
func (p *Player) Capacity() int {
	return p.queue.Cap()
}

// Run steps the queue every Interval until ctx is cancelled
func (p *Player) Run(ctx context.Context) error {
	log.WithField("interval", p.Interval).Info("player started")
	defer log.Info("player stopped")

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case pat := <-p.enqueue:
			if err := p.queue.Enqueue(pat); err != nil {
				droppedCounter.Inc()
				log.WithField("pattern", pat.String()).Warning("queue full. dropping pattern")
				break
			}
			queuedCounter.Inc()
			p.length.Store(int64(p.queue.Len()))
			queueLength.Set(float64(p.queue.Len()))
		case <-ticker.C:
			state, err := p.queue.Step()
			if err != nil {
				errorCounter.Inc()
				log.WithError(err).Warning("failed to drive LED")
			}
			stepsCounter.Inc()
			p.length.Store(int64(p.queue.Len()))
			queueLength.Set(float64(p.queue.Len()))
			log.WithField("state", state).Debug("step")
		}
	}
}
