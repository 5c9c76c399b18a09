package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

const defaultResultsSyncInterval = 5 * time.Minute

type clientResultsSyncJob struct {
	forms   ClientFormService
	reports ClientReportService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientResultsSyncJob creates a job that refreshes the local raw results
// of every form owned by the logged-in user. The job is idle until Start is
// called.
func NewClientResultsSyncJob(forms ClientFormService, reports ClientReportService, logger *logger.Logger) ClientResultsSyncJob {
	return &clientResultsSyncJob{forms: forms, reports: reports, logger: logger}
}

func (j *clientResultsSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultResultsSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshAll(jobCtx)
			}
		}
	}()
}

// refreshAll keeps going after a failed form so one broken form does not
// starve the others.
func (j *clientResultsSyncJob) refreshAll(ctx context.Context) {
	forms, err := j.forms.List(ctx, adapter.ScopeOwned)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "*clientResultsSyncJob.refreshAll").Msg("listing owned forms failed")
		return
	}

	for _, form := range forms {
		if ctx.Err() != nil {
			return
		}
		if err = j.reports.RefreshResults(ctx, form.ID); err != nil {
			j.logger.Warn().Err(err).Int64("form_id", form.ID).Msg("results refresh failed")
		}
	}
}

// Stop is a no-op when the job is not running.
func (j *clientResultsSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
