package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testSchedule struct{}

func (testSchedule) PollInterval() time.Duration { return time.Minute }
func (testSchedule) SummaryAt() time.Duration    { return 20 * time.Hour }
func (testSchedule) LimitsAt() time.Duration     { return 20*time.Hour + 5*time.Minute }
func (testSchedule) ReportAt() time.Duration     { return 9 * time.Hour }

type countingJobs struct {
	runs map[string]int
	fail bool
}

func newCountingJobs() *countingJobs {
	return &countingJobs{runs: make(map[string]int)}
}

func (c *countingJobs) record(name string) error {
	c.runs[name]++
	if c.fail {
		return errors.New("boom")
	}
	return nil
}

func (c *countingJobs) DailySummary(context.Context) error   { return c.record(jobDailySummary) }
func (c *countingJobs) CheckLimits(context.Context) error    { return c.record(jobLimitCheck) }
func (c *countingJobs) MonthlyReports(context.Context) error { return c.record(jobMonthlyReport) }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestScheduler(jobs *countingJobs, start time.Time) (*Scheduler, *fakeClock) {
	clock := &fakeClock{now: start}
	s := NewScheduler(testSchedule{}, time.UTC, jobs)
	s.clock = clock.Now
	s.Start()
	return s, clock
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

func Test_OnTick_ShouldRunEachJobOncePerCrossedTrigger(t *testing.T) {
	jobs := newCountingJobs()
	s, clock := newTestScheduler(jobs, at(time.May, 31, 19, 0))
	ctx := context.Background()

	clock.now = at(time.May, 31, 19, 59)
	s.Tick(ctx)
	assert.Empty(t, jobs.runs)

	clock.now = at(time.May, 31, 20, 0)
	s.Tick(ctx)
	clock.now = at(time.May, 31, 20, 1)
	s.Tick(ctx)
	assert.Equal(t, map[string]int{jobDailySummary: 1}, jobs.runs)

	clock.now = at(time.May, 31, 20, 7)
	s.Tick(ctx)
	assert.Equal(t, map[string]int{jobDailySummary: 1, jobLimitCheck: 1}, jobs.runs)

	clock.now = at(time.June, 1, 9, 0)
	s.Tick(ctx)
	assert.Equal(t, map[string]int{jobDailySummary: 1, jobLimitCheck: 1, jobMonthlyReport: 1}, jobs.runs)

	clock.now = at(time.June, 1, 20, 10)
	s.Tick(ctx)
	assert.Equal(t, map[string]int{jobDailySummary: 2, jobLimitCheck: 2, jobMonthlyReport: 1}, jobs.runs)
}

func Test_OnStartAfterTrigger_ShouldWaitForNextCrossing(t *testing.T) {
	jobs := newCountingJobs()
	s, clock := newTestScheduler(jobs, at(time.June, 1, 20, 30))

	clock.now = at(time.June, 1, 20, 31)
	s.Tick(context.Background())

	assert.Empty(t, jobs.runs)
}

func Test_OnFailingJob_ShouldReturnToIdleAndRunAgainNextDay(t *testing.T) {
	jobs := newCountingJobs()
	jobs.fail = true
	s, clock := newTestScheduler(jobs, at(time.May, 10, 19, 0))
	ctx := context.Background()

	clock.now = at(time.May, 10, 20, 0)
	s.Tick(ctx)
	clock.now = at(time.May, 10, 20, 2)
	s.Tick(ctx)
	clock.now = at(time.May, 11, 20, 0)
	s.Tick(ctx)

	assert.Equal(t, 2, jobs.runs[jobDailySummary])
	for _, j := range s.jobs {
		assert.Equal(t, stateIdle, j.state)
	}
}

func Test_Triggers(t *testing.T) {
	d := daily{offset: 20 * time.Hour}
	assert.Equal(t, at(time.May, 10, 20, 0), d.last(at(time.May, 10, 20, 0)))
	assert.Equal(t, at(time.May, 9, 20, 0), d.last(at(time.May, 10, 19, 59)))
	assert.Equal(t, at(time.February, 29, 20, 0), d.last(at(time.March, 1, 8, 0)))

	m := monthly{offset: 9 * time.Hour}
	assert.Equal(t, at(time.March, 1, 9, 0), m.last(at(time.March, 20, 0, 0)))
	assert.Equal(t, at(time.February, 1, 9, 0), m.last(at(time.March, 1, 8, 59)))
	assert.Equal(t, time.Date(2023, time.December, 1, 9, 0, 0, 0, time.UTC), m.last(at(time.January, 1, 0, 0)))
}
