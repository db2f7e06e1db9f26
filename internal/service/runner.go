package service

import (
	"context"

	"weatherscraper/internal/model"

	"go.uber.org/zap"
)

// Notifier сообщает о результате прохода
type Notifier interface {
	Notify(ctx context.Context, summary *model.RunSummary, runErr error) error
}

// NopNotifier ничего не отправляет
type NopNotifier struct{}

// Notify реализует Notifier
func (NopNotifier) Notify(context.Context, *model.RunSummary, error) error {
	return nil
}

// Runner выполняет проход и отправляет уведомление о результате
type Runner struct {
	collector *Collector
	notifier  Notifier
	logger    *zap.Logger
}

// NewRunner создает новый Runner
func NewRunner(collector *Collector, notifier Notifier, logger *zap.Logger) *Runner {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Runner{
		collector: collector,
		notifier:  notifier,
		logger:    logger,
	}
}

// RunOnce выполняет один проход. Ошибка уведомления только логируется.
func (r *Runner) RunOnce(ctx context.Context) (*model.RunSummary, error) {
	summary, err := r.collector.Run(ctx)

	if notifyErr := r.notifier.Notify(ctx, summary, err); notifyErr != nil {
		r.logger.Warn("Failed to send run notification", zap.Error(notifyErr))
	}

	return summary, err
}
