// Package latency simula a latência de rede das operações: cada mutação
// espera um atraso fixo antes de ser aplicada.
package latency

import (
	"context"
	"time"
)

// Wait bloqueia por d ou até ctx ser cancelado, o que vier primeiro.
// Devolve ctx.Err() no cancelamento; nesse caso o chamador não deve mutar o estado.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
