package softassert

import "fmt"

type chainStep struct {
	desc string
	fn   func() error
}

// Chain is the deferred command queue for one test: an ordered sequence of
// steps that run after the test body returns. Draining tolerates steps that
// queue further steps, and the aggregate report is always the last step
// appended, so every assertion a test queues runs, and is captured, before
// reporting happens.
type Chain struct {
	steps []chainStep
}

func (c *Chain) append(desc string, fn func() error) {
	c.steps = append(c.steps, chainStep{desc: desc, fn: fn})
}

// drain runs queued steps in order until the queue is empty. The first step
// error stops the chain, discards the remaining steps, and is returned as a
// hard failure.
func (c *Chain) drain() error {
	for len(c.steps) > 0 {
		step := c.steps[0]
		c.steps = c.steps[1:]
		if err := step.fn(); err != nil {
			c.steps = nil
			return fmt.Errorf("deferred step %q: %w", step.desc, err)
		}
	}
	return nil
}
