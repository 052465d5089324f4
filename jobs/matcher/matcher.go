// Package matcher drives periodic crossing of the shared book.
package matcher

import (
	"context"
	"time"

	"go.uber.org/zap"

	"crux/service"
)

type Matcher struct {
	svc      *service.Engine
	interval time.Duration
	log      *zap.Logger
}

func New(svc *service.Engine, interval time.Duration, log *zap.Logger) *Matcher {
	return &Matcher{svc: svc, interval: interval, log: log}
}

// Run crosses the book on a timer until ctx is cancelled.
func (m *Matcher) Run(ctx context.Context) {
	m.log.Info("matcher started", zap.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("matcher stopped")
			return
		case <-ticker.C:
			if results := m.svc.MatchOnce(); len(results) > 0 {
				m.log.Debug("match pass complete", zap.Int("executions", len(results)))
			}
		}
	}
}
