package payment

import (
	"context"
	"fmt"
	"time"

	"leftoversaver/internal/pkg/config"
	"leftoversaver/internal/usecase/commands"

	"github.com/google/uuid"
)

// Simulator stands in for a real payment provider. It waits a configured
// processing delay and then approves or declines every charge uniformly.
type Simulator struct {
	delay   time.Duration
	approve bool
}

func NewSimulator(cfg config.PaymentConfig) commands.PaymentGateway {
	return &Simulator{
		delay:   cfg.ProcessingDelay,
		approve: cfg.AlwaysApprove,
	}
}

func (s *Simulator) Charge(ctx context.Context, userID uuid.UUID, amountCents int64, currency string) (commands.PaymentOutcome, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return commands.PaymentOutcome{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	return commands.PaymentOutcome{
		Paid:      s.approve,
		Reference: fmt.Sprintf("sim-%s-%d", userID, time.Now().UnixNano()),
	}, nil
}
