package phase

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
	"github.com/rhel2centos/rhel2centos/pkg/retry"
)

// Lock acquires an exclusive migration lock on the hosts
type Lock struct {
	GenericPhase
	cfs        []func()
	instanceID string
	m          sync.Mutex
	wg         sync.WaitGroup
}

// Prepare the phase
func (p *Lock) Prepare(c *config.Migration) error {
	p.Config = c
	hn, err := os.Hostname()
	if err != nil {
		hn = "unknown"
	}
	p.instanceID = fmt.Sprintf("%s-%d", hn, os.Getpid())
	return nil
}

// Title for the phase
func (p *Lock) Title() string {
	return "Acquire exclusive host lock"
}

// Cancel releases the lock
func (p *Lock) Cancel() {
	p.m.Lock()
	defer p.m.Unlock()
	for _, f := range p.cfs {
		f()
	}
	p.cfs = nil
	p.wg.Wait()
}

// CleanUp calls Cancel to release the lock
func (p *Lock) CleanUp() {
	p.Cancel()
}

// UnlockPhase returns an unlock phase for this lock phase
func (p *Lock) UnlockPhase() Phase {
	return &Unlock{Cancel: p.Cancel}
}

// Run the phase
func (p *Lock) Run() error {
	if err := p.parallelDo(p.Config.Spec.Hosts, p.startLock); err != nil {
		return err
	}
	return p.parallelDo(p.Config.Spec.Hosts, p.startTicker)
}

func (p *Lock) startTicker(h *migration.Host) error {
	p.wg.Add(1)
	lfp := h.Configurer.LockFilePath()
	ticker := time.NewTicker(10 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	p.m.Lock()
	p.cfs = append(p.cfs, cancel)
	p.m.Unlock()

	go func() {
		log.Tracef("%s: started periodic update of lock file %s timestamp", h, lfp)
		for {
			select {
			case <-ticker.C:
				if err := h.Configurer.Touch(h, lfp); err != nil {
					log.Debugf("%s: failed to touch lock file: %s", h, err)
				}
			case <-ctx.Done():
				log.Tracef("%s: stopped lock cycle, removing file", h)
				ticker.Stop()
				if err := h.Configurer.DeleteFile(h, lfp); err != nil {
					log.Debugf("%s: failed to remove host lock file, the tool may have been previously aborted or crashed. the start of next invocation may be delayed until it expires: %s", h, err)
				}
				p.wg.Done()
				return
			}
		}
	}()

	return nil
}

// an existing lock expires 30 seconds after its last timestamp update, so
// the acquire window needs to outlast it
const lockAcquireTimeout = 2 * time.Minute

func (p *Lock) startLock(h *migration.Host) error {
	return retry.Timeout(context.Background(), lockAcquireTimeout, func(_ context.Context) error {
		return p.tryLock(h)
	})
}

func (p *Lock) tryLock(h *migration.Host) error {
	lfp := h.Configurer.LockFilePath()

	if err := h.Configurer.UpsertFile(h, lfp, p.instanceID); err != nil {
		content, err := h.Configurer.ReadFile(h, lfp)
		if err != nil {
			return fmt.Errorf("failed to read lock file: %w", err)
		}
		if content != p.instanceID {
			mtime, err := h.Configurer.ModTime(h, lfp)
			if err != nil {
				return fmt.Errorf("lock file disappeared: %w", err)
			}
			if time.Since(mtime) < 30*time.Second {
				return fmt.Errorf("another migration is currently operating on the host, delete %s or wait 30 seconds for it to expire", lfp)
			}
			_ = h.Configurer.DeleteFile(h, lfp)
			return fmt.Errorf("removed existing expired lock file, will retry")
		}
	}

	return nil
}
