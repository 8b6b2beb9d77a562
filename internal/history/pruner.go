package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"github.com/tevino/abool/v2"
)

// Pruner periodically soft-deletes runs older than the retention window.
type Pruner struct {
	store     *Store
	retention time.Duration
	log       *slog.Logger
	running   *abool.AtomicBool
	scheduler gocron.Scheduler
}

func NewPruner(store *Store, retention time.Duration, log *slog.Logger) *Pruner {
	if log == nil {
		log = slog.Default()
	}
	return &Pruner{
		store:     store,
		retention: retention,
		log:       log,
		running:   abool.NewBool(false),
	}
}

// Start schedules a prune every interval.
func (p *Pruner) Start(interval time.Duration) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return errors.Wrap(err, "creating prune scheduler")
	}
	if _, err := s.NewJob(gocron.DurationJob(interval), gocron.NewTask(func() { p.RunOnce() })); err != nil {
		s.Shutdown()
		return errors.Wrap(err, "scheduling prune job")
	}
	p.scheduler = s
	s.Start()
	return nil
}

func (p *Pruner) Stop() error {
	if p.scheduler == nil {
		return nil
	}
	return p.scheduler.Shutdown()
}

// RunOnce prunes now unless a prune is already in progress. It reports
// whether it ran.
func (p *Pruner) RunOnce() bool {
	if !p.running.SetToIf(false, true) {
		return false
	}
	defer p.running.UnSet()

	n, err := p.store.Prune(context.Background(), time.Now().Add(-p.retention))
	if err != nil {
		p.log.Error("history prune failed", "err", err)
		return true
	}
	if n > 0 {
		p.log.Info("history pruned", "runs", n, "retention", p.retention)
	}
	return true
}
