package game

import "time"

// Update advances the game by dt. It applies auto-shift, then gravity, then
// lock delay. Large steps are caught up in full: several shifts or drops may
// happen in a single call.
func (c *Controller) Update(dt time.Duration) {
	if c.state != Playing || dt <= 0 {
		return
	}
	c.autoShift(dt)
	c.lockDelay(c.gravity(dt))
}

func (c *Controller) autoShift(dt time.Duration) {
	if c.das.dir == 0 || c.active == nil {
		return
	}
	c.das.timer += dt
	if c.das.timer <= c.cfg.DAS {
		return
	}

	if c.cfg.ARR <= 0 {
		for c.shift(c.das.dir) {
		}
		c.das.timer = c.cfg.DAS
		return
	}

	elapsed := c.das.timer - c.cfg.DAS
	for range int(elapsed / c.cfg.ARR) {
		if !c.shift(c.das.dir) {
			break
		}
	}
	c.das.timer = c.cfg.DAS + elapsed%c.cfg.ARR
}

// gravity drops the piece and returns how much of dt it spent soft locked.
func (c *Controller) gravity(dt time.Duration) time.Duration {
	if c.active == nil {
		return 0
	}
	wasLocked := c.active.SoftLocked
	interval := c.DropInterval()
	c.dropTimer += dt
	for c.dropTimer >= interval {
		c.dropTimer -= interval
		if !c.descend() {
			// Further attempts this call would fail the same way.
			c.active.SoftLocked = true
			grounded := c.dropTimer
			c.dropTimer %= interval
			if wasLocked {
				return dt
			}
			return grounded
		}
		wasLocked = false
		if c.softDropHeld {
			c.stats.Score += SoftDropPoints
		}
	}
	if c.active.SoftLocked {
		return dt
	}
	return 0
}

func (c *Controller) lockDelay(dt time.Duration) {
	a := c.active
	if a == nil {
		return
	}
	if !a.SoftLocked {
		a.LockTimer = 0
		return
	}
	a.LockTimer += dt
	if a.LockTimer >= c.cfg.LockDelay {
		c.lock()
	}
}
