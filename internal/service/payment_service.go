package service

import (
	"context"
	"log"
	"time"

	"smartparking/internal/ledger"
)

// PaymentGateway charges a booking amount. The demo implementation only
// simulates the processing delay; real payment integration is out of scope.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int, method ledger.PaymentMethod) error
}

type simulatedGateway struct {
	latency time.Duration
}

// NewSimulatedGateway returns a gateway that approves every charge after a
// fixed latency. No declines are modeled.
func NewSimulatedGateway(latency time.Duration) PaymentGateway {
	return &simulatedGateway{latency: latency}
}

func (g *simulatedGateway) Charge(ctx context.Context, amount int, method ledger.PaymentMethod) error {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	log.Printf("Simulated payment of ₹%d processed via %s", amount, method)
	return nil
}
