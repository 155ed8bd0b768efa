package notifier

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	jobDailySummary  = "daily_summary"
	jobLimitCheck    = "limit_check"
	jobMonthlyReport = "monthly_report"
)

type jobState int

const (
	stateIdle jobState = iota
	stateDue
	stateRunning
)

type job struct {
	name    string
	trigger trigger
	run     func(ctx context.Context) error
	state   jobState
	lastRun time.Time
}

type schedulerConfig interface {
	PollInterval() time.Duration
	SummaryAt() time.Duration
	LimitsAt() time.Duration
	ReportAt() time.Duration
}

type jobs interface {
	DailySummary(ctx context.Context) error
	CheckLimits(ctx context.Context) error
	MonthlyReports(ctx context.Context) error
}

// Scheduler polls the clock and runs every job whose trigger was crossed since its last run.
type Scheduler struct {
	jobs         []*job
	pollInterval time.Duration
	location     *time.Location
	clock        func() time.Time
}

func NewScheduler(cfg schedulerConfig, location *time.Location, n jobs) *Scheduler {
	return &Scheduler{
		jobs: []*job{
			{name: jobDailySummary, trigger: daily{offset: cfg.SummaryAt()}, run: n.DailySummary},
			{name: jobLimitCheck, trigger: daily{offset: cfg.LimitsAt()}, run: n.CheckLimits},
			{name: jobMonthlyReport, trigger: monthly{offset: cfg.ReportAt()}, run: n.MonthlyReports},
		},
		pollInterval: cfg.PollInterval(),
		location:     location,
		clock:        time.Now,
	}
}

func (s *Scheduler) now() time.Time {
	return s.clock().In(s.location)
}

// Start marks every job as just run, so only triggers crossed after start fire.
func (s *Scheduler) Start() {
	started := s.now()
	for _, j := range s.jobs {
		j.lastRun = started
		j.state = stateIdle
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	s.Start()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	logger.Info("scheduler started", zap.Duration("poll", s.pollInterval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs due jobs one after another. A failing job still goes back to idle.
func (s *Scheduler) Tick(ctx context.Context) {
	current := s.now()
	for _, j := range s.jobs {
		if j.state == stateIdle && j.lastRun.Before(j.trigger.last(current)) {
			j.state = stateDue
		}
	}

	for _, j := range s.jobs {
		if j.state != stateDue {
			continue
		}
		j.state = stateRunning
		s.runJob(ctx, j)
		j.lastRun = current
		j.state = stateIdle
	}
}

func (s *Scheduler) runJob(ctx context.Context, j *job) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "job."+j.name)
	defer span.Finish()

	logger.Info("job started", zap.String("job", j.name))
	err := j.run(ctx)
	observeRun(j.name, err)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("job failed", zap.String("job", j.name), zap.Error(err))
		return
	}
	logger.Info("job finished", zap.String("job", j.name))
}
