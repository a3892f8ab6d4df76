// Package jobs запускает периодические задачи по расписанию cron.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const defaultSweepTimeout = 30 * time.Second

// Scheduler переводит начавшиеся матчи в статус live, после чего ставки на них не принимаются.
type Scheduler struct {
	matches MatchStarter
	spec    string
	l       *logrus.Entry
	now     func() time.Time
}

func New(matches MatchStarter, spec string, l *logrus.Logger) *Scheduler {
	return &Scheduler{
		matches: matches,
		spec:    spec,
		l: l.WithFields(logrus.Fields{
			"component": "jobs",
			"module":    "scheduler",
		}),
		now: time.Now,
	}
}

// Run регистрирует задачи и работает до отмены контекста. Ошибка возвращается только при неверном расписании.
func (s *Scheduler) Run(ctx context.Context) error {
	cronLogger := cron.PrintfLogger(s.l)
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	if _, err := c.AddFunc(s.spec, func() { s.sweep(ctx) }); err != nil {
		return fmt.Errorf("schedule live sweeper `%s`: %w", s.spec, err)
	}

	s.l.WithField("schedule", s.spec).Info("Starting")
	c.Start()

	<-ctx.Done()
	s.l.Info("Got stop signal, waiting for running jobs...")
	<-c.Stop().Done()
	return nil
}

func (s *Scheduler) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, defaultSweepTimeout)
	defer cancel()

	affected, err := s.matches.MarkStartedLive(sweepCtx, s.now())
	if err != nil {
		s.l.WithError(err).Error("live sweep failed")
		return
	}
	if affected > 0 {
		s.l.WithField("matches", affected).Info("matches moved to live")
	}
}
