// sessions/janitor.go
package sessions

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartJanitor sweeps expired sessions out of a memory store on an
// interval so an instance that runs for weeks does not accumulate dead
// entries. Redis expires its own keys and never needs this.
func StartJanitor(store *MemoryStore, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if n := store.Sweep(); n > 0 {
				log.Printf("[Sessions] Swept %d expired sessions", n)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
