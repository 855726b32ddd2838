package delivery

import "time"

// Policy política de reintentos para fallas transitorias.
type Policy struct {
	MaxAttempts int
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// DefaultPolicy valores por defecto.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 8, BackoffBase: 15 * time.Second, BackoffMax: time.Hour}
}

// Backoff espera antes del intento siguiente al número attempts: base·2^(attempts-1), con tope.
func (p Policy) Backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := p.BackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= p.BackoffMax || d <= 0 {
			return p.BackoffMax
		}
	}
	if d > p.BackoffMax {
		return p.BackoffMax
	}
	return d
}

// Stalled indica si el registro agotó los intentos automáticos.
func (p Policy) Stalled(attempts int) bool {
	return p.MaxAttempts > 0 && attempts >= p.MaxAttempts
}
