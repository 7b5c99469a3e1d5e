package worker

import (
	"context"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/config"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 5 * time.Minute

type Sweeper interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

// Overdue runs the overdue sweep on a cron schedule.
type Overdue struct {
	cron    *cron.Cron
	sweeper Sweeper
	log     *zap.Logger
}

func NewOverdue(cfg config.Overdue, sweeper Sweeper, log *zap.Logger) (*Overdue, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "overdue time zone %q", cfg.TimeZone)
	}
	log = log.Named("overdue")
	cl := cronLogger{log: log.Sugar()}
	o := &Overdue{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		sweeper: sweeper,
		log:     log,
	}
	if _, err = o.cron.AddFunc(cfg.Schedule, o.Run); err != nil {
		return nil, errors.Wrapf(err, "overdue schedule %q", cfg.Schedule)
	}
	return o, nil
}

func (o *Overdue) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	n, err := o.sweeper.NotifyOverdue(ctx)
	if err != nil {
		o.log.Error("sweep", zap.Error(err))
		return
	}
	o.log.Info("sweep done", zap.Int("overdue", n))
}

func (o *Overdue) Start() {
	o.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (o *Overdue) Stop(ctx context.Context) error {
	select {
	case <-o.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
