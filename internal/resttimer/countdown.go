package resttimer

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type CountdownParams struct {
	Timer *Timer
	// Ticks drives the countdown; a one second ticker when nil.
	Ticks    <-chan time.Time
	OnTick   func(remaining int)
	OnExpire func()
}

// Countdown ticks a running Timer in its own goroutine, until the timer
// expires, is cancelled or the context is done. A paused timer skips ticks.
type Countdown struct {
	timer    *Timer
	ticks    <-chan time.Time
	ticker   *time.Ticker
	onTick   func(remaining int)
	onExpire func()

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func StartCountdown(ctx context.Context, params CountdownParams) *Countdown {
	c := &Countdown{
		timer:    params.Timer,
		ticks:    params.Ticks,
		onTick:   params.OnTick,
		onExpire: params.OnExpire,
	}
	if c.ticks == nil {
		c.ticker = time.NewTicker(time.Second)
		c.ticks = c.ticker.C
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.run(ctx)
	return c
}

func (c *Countdown) run(ctx context.Context) {
	defer c.wg.Done()
	if c.ticker != nil {
		defer c.ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-c.ticks:
			if !ok {
				return
			}
			switch c.timer.State() {
			case Paused:
				continue
			case Idle, Expired:
				log.Tracef("rest timer countdown done, timer %s", c.timer.State())
				return
			}

			state, err := c.timer.Tick()
			if err != nil {
				// paused or cancelled between the check and the tick
				continue
			}
			if c.onTick != nil {
				c.onTick(c.timer.Remaining())
			}
			if state == Expired {
				if c.onExpire != nil {
					c.onExpire()
				}
				return
			}
		}
	}
}

// Stop ends the countdown and waits for its goroutine to exit.
func (c *Countdown) Stop() {
	c.cancel()
	c.wg.Wait()
}

// Wait blocks until the countdown ends on its own.
func (c *Countdown) Wait() {
	c.wg.Wait()
}
