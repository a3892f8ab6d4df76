// Package notify доставляет доменные события после фиксации транзакции.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	defaultPublishTimeout      = 5 * time.Second
	defaultWorkers        uint = 4
)

// Dispatcher рассылает пачку событий через Publisher несколькими воркерами и собирает ошибки доставки.
type Dispatcher struct {
	pub            Publisher
	l              *logrus.Entry
	workers        uint
	publishTimeout time.Duration
}

func New(pub Publisher, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		pub: pub,
		l: l.WithFields(logrus.Fields{
			"component": "notify",
			"module":    "dispatcher",
		}),
		workers:        defaultWorkers,
		publishTimeout: defaultPublishTimeout,
	}
}

// SetWorkers устанавливает кол-во воркеров, публикующих события параллельно.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// SetPublishTimeout устанавливает таймаут публикации одного события.
func (d *Dispatcher) SetPublishTimeout(timeout time.Duration) *Dispatcher {
	d.publishTimeout = timeout
	return d
}

// Notify публикует события и ждет окончания доставки всех. Порядок публикации не гарантируется,
// брокер упорядочивает события по ключу. Возвращает объединенную ошибку по всем недоставленным событиям.
func (d *Dispatcher) Notify(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	var errs []error
	for result := range d.runWorkers(ctx, events) {
		if result.err == nil {
			continue
		}
		d.l.WithError(result.err).WithFields(logrus.Fields{
			"worker": result.workerID,
			"event":  result.event.ID,
			"type":   result.event.Type,
		}).Error("publish failed")
		errs = append(errs, fmt.Errorf("event %s `%s`: %w", result.event.ID, result.event.Type, result.err))
	}
	return errors.Join(errs...)
}

type workerResult struct {
	workerID uint
	event    *domain.Event
	err      error
}

// runWorkers раздает события воркерам (fan-out) и возвращает канал их результатов (fan-in),
// который закрывается после завершения всех воркеров.
func (d *Dispatcher) runWorkers(ctx context.Context, events []domain.Event) <-chan workerResult {
	taskCh := make(chan *domain.Event, len(events))
	for i := range events {
		taskCh <- &events[i]
	}
	close(taskCh)

	workers := min(d.workers, uint(len(events)))
	resultCh := make(chan workerResult, len(events))

	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) // nolint:gosec
	for i := range workers {
		go func(workerID uint) {
			defer wg.Done()
			for ev := range taskCh {
				resultCh <- workerResult{workerID: workerID, event: ev, err: d.publish(ctx, ev)}
			}
		}(i + 1)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()
	return resultCh
}

func (d *Dispatcher) publish(ctx context.Context, ev *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	pubCtx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()
	return d.pub.Publish(pubCtx, *ev) //nolint:wrapcheck
}
