package checkout

import (
	"sync"
	"time"

	"github.com/yogendra-08/vastraverse-api/models"
)

// StatusSequence is the delivery playback an order walks through after it
// is placed. It is cosmetic: a fixed-period timer, not a fulfillment system,
// and it does not survive a restart.
var StatusSequence = []models.OrderStatus{
	models.OrderStatusPlaced,
	models.OrderStatusPacked,
	models.OrderStatusShipped,
	models.OrderStatusOutForDelivery,
	models.OrderStatusDelivered,
}

// DefaultStatusStep is the delay between transitions.
const DefaultStatusStep = 10 * time.Second

// Playback is the cancellable handle returned by StartPlayback. The owning
// scope must call Stop when it no longer wants transitions; Stop is safe to
// call more than once and after completion.
type Playback struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartPlayback advances an order through the statuses after Placed, calling
// apply once per step. The order is assumed to already be Placed; the first
// transition fires one step after the call.
func StartPlayback(step time.Duration, apply func(models.OrderStatus)) *Playback {
	p := &Playback{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(step)
		defer ticker.Stop()

		for _, status := range StatusSequence[1:] {
			select {
			case <-ticker.C:
				apply(status)
			case <-p.stop:
				return
			}
		}
	}()

	return p
}

// Stop cancels any remaining transitions.
func (p *Playback) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// Done is closed once the playback has finished or been stopped.
func (p *Playback) Done() <-chan struct{} {
	return p.done
}
