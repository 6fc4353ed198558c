package core

import (
	"context"
	"time"

	"github.com/mazen160/go-random"
)

// bounds, in delay units, for the randomized pause taken before every
// dispatched request; sampling is inclusive on both ends
const (
	evadeMinUnits = 2
	evadeMaxUnits = 5
)

type evadeFunc func(context.Context) error

// evadeDelay paces requests to resemble human usage. Every request
// through the dispatcher waits this out; there is no bypass.
func evadeDelay(unit time.Duration) evadeFunc {
	return func(ctx context.Context) error {
		n, err := random.IntRange(evadeMinUnits, evadeMaxUnits+1)
		if err != nil {
			return err
		}
		timer := time.NewTimer(time.Duration(n) * unit)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
