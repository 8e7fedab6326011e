// Package shutdown coordinates graceful teardown. Components register hooks
// (close the filesystem watcher, drain the sync engine); on SIGINT/SIGTERM
// the hooks run concurrently under a grace period, then the done channel is
// closed so main can exit.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rohanthewiz/logger"
)

const gracePeriod = 10 * time.Second

type HookFunc func(grace time.Duration) error

var (
	mu         sync.Mutex
	hooks      []HookFunc
	inProgress bool
)

// RegisterHook adds fn to the set run at shutdown.
func RegisterHook(fn HookFunc) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, fn)
}

// InProgress reports whether shutdown has begun. Long-lived surfaces (the
// push channel) refuse new work once this flips.
func InProgress() bool {
	mu.Lock()
	defer mu.Unlock()
	return inProgress
}

// InitShutdownService installs signal handling. When a shutdown signal
// arrives, all registered hooks run concurrently; done is closed once they
// complete or the grace period lapses.
func InitShutdownService(done chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(done)

		sig := <-sigChan
		logger.Info("Received shutdown signal", "signal", sig.String())

		mu.Lock()
		inProgress = true
		toRun := make([]HookFunc, len(hooks))
		copy(toRun, hooks)
		mu.Unlock()

		wg := sync.WaitGroup{}
		for _, hook := range toRun {
			wg.Add(1)
			go func(fn HookFunc) {
				defer wg.Done()
				if err := fn(gracePeriod); err != nil {
					logger.LogErr(err, "shutdown hook failed")
				}
			}(hook)
		}

		hooksDone := make(chan struct{})
		go func() {
			wg.Wait()
			close(hooksDone)
		}()

		select {
		case <-hooksDone:
			logger.Info("All shutdown hooks completed")
		case <-time.After(gracePeriod):
			logger.Log("warn", "Shutdown hooks timed out after "+gracePeriod.String())
		}
	}()
}
