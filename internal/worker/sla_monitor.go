package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/events"
	"github.com/spec-kit/itsm-backoffice/internal/service"
)

const sweepTimeout = 30 * time.Second

// SLAMonitor periodically sweeps open tickets against their contracts and
// publishes an event for every breach it finds.
type SLAMonitor struct {
	sla        *service.SLAService
	dispatcher events.Dispatcher
	logger     *zap.Logger
	schedule   string
	cron       *cron.Cron
}

// NewSLAMonitor constructs the monitor. Schedule accepts standard cron
// expressions and the @every shorthand.
func NewSLAMonitor(sla *service.SLAService, dispatcher events.Dispatcher, logger *zap.Logger, schedule string) *SLAMonitor {
	return &SLAMonitor{
		sla:        sla,
		dispatcher: dispatcher,
		logger:     logger,
		schedule:   schedule,
	}
}

// Start registers the sweep with the scheduler and begins running it.
func (m *SLAMonitor) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(m.schedule, m.sweep); err != nil {
		return err
	}
	c.Start()
	m.cron = c
	m.logger.Info("sla monitor started", zap.String("schedule", m.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (m *SLAMonitor) Stop() {
	if m.cron == nil {
		return
	}
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info("sla monitor stopped")
}

// Sweep runs one evaluation pass immediately. Exposed so operators can
// trigger a pass outside the schedule.
func (m *SLAMonitor) Sweep(ctx context.Context) error {
	alerts, err := m.sla.CollectAlerts(ctx, service.AlertScope{})
	if err != nil {
		return err
	}

	breached := 0
	for _, alert := range alerts {
		if alert.Status != domain.SLAAlertBreached {
			continue
		}
		breached++
		overdue := float64(0)
		if alert.HoursOverdue != nil {
			overdue = *alert.HoursOverdue
		}
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSLABreached,
			TicketID:  alert.TicketID,
			Timestamp: time.Now().UTC(),
			Payload: events.SLABreachedPayload{
				CompanyID:    alert.CompanyID,
				SLAHours:     alert.SLAHours,
				HoursOverdue: overdue,
			},
		}
		if err := m.dispatcher.Publish(ctx, event); err != nil {
			m.logger.Warn("failed to publish sla breach event",
				zap.String("ticket_id", alert.TicketID), zap.Error(err))
		}
	}

	m.logger.Info("sla sweep complete",
		zap.Int("alerts", len(alerts)),
		zap.Int("breached", breached),
	)
	return nil
}

func (m *SLAMonitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	if err := m.Sweep(ctx); err != nil {
		m.logger.Error("sla sweep failed", zap.Error(err))
	}
}

// RegisterBreachLogger subscribes a handler that records every breach in the
// application log. Serves as the default consumer when no notification
// channel is configured.
func RegisterBreachLogger(dispatcher events.Dispatcher, logger *zap.Logger) {
	dispatcher.Subscribe(events.EventSLABreached, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.SLABreachedPayload)
		if !ok {
			return nil
		}
		logger.Warn("sla breached",
			zap.String("ticket_id", event.TicketID),
			zap.String("company_id", payload.CompanyID),
			zap.Int("sla_hours", payload.SLAHours),
			zap.Float64("hours_overdue", payload.HoursOverdue),
		)
		return nil
	})
}
