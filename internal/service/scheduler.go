// Package service содержит планировщик запусков.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler повторяет проходы по cron-расписанию. Проходы не перекрываются.
type Scheduler struct {
	schedule cron.Schedule
	cron     *cron.Cron
	job      func(ctx context.Context)
	logger   *zap.Logger
}

// NewScheduler создает планировщик для стандартного cron-выражения (5 полей или @every)
func NewScheduler(expr string, location *time.Location, job func(ctx context.Context), logger *zap.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	if location == nil {
		location = time.Local
	}

	cronLog := cronLogger{logger: logger}
	return &Scheduler{
		schedule: schedule,
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		job:    job,
		logger: logger,
	}, nil
}

// Run запускает планировщик и блокируется до отмены ctx.
// Перед возвратом дожидается завершения текущего прохода.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Schedule(s.schedule, cron.FuncJob(func() {
		s.job(ctx)
	}))

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Time("next_run", s.schedule.Next(time.Now())))

	<-ctx.Done()

	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
	return nil
}

// cronLogger направляет логи cron в zap
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
