package reports

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/venue-tv-service/internal/logging"
)

// Pruner runs Writer.Prune once a day at a fixed UTC hour.
type Pruner struct {
	writer *Writer
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

// PruneSpec returns the cron expression for the given UTC hour.
func PruneSpec(hourUTC int) string {
	return fmt.Sprintf("0 %d * * *", hourUTC)
}

// NewPruner schedules the daily prune. Start must be called to run it.
func NewPruner(writer *Writer, hourUTC int, logger *slog.Logger) (*Pruner, error) {
	if hourUTC < 0 || hourUTC > 23 {
		return nil, fmt.Errorf("prune hour out of range: %d", hourUTC)
	}
	p := &Pruner{
		writer: writer,
		cron:   cron.New(cron.WithLocation(time.UTC)),
		logger: logger,
		now:    time.Now,
	}
	if _, err := p.cron.AddFunc(PruneSpec(hourUTC), p.RunOnce); err != nil {
		return nil, fmt.Errorf("schedule prune: %w", err)
	}
	return p, nil
}

// RunOnce prunes immediately.
func (p *Pruner) RunOnce() {
	if p == nil || p.writer == nil {
		return
	}
	removed, err := p.writer.Prune(p.now())
	if err != nil {
		logging.Error(p.logger, "report prune failed", err)
		return
	}
	if len(removed) > 0 {
		logging.Info(p.logger, "reports pruned", "dates", removed)
	}
}

// Start begins the schedule in its own goroutine.
func (p *Pruner) Start() {
	if p == nil {
		return
	}
	p.cron.Start()
}

// Stop halts the schedule and waits for a running prune to finish.
func (p *Pruner) Stop() {
	if p == nil {
		return
	}
	<-p.cron.Stop().Done()
}
