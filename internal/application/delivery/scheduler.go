package delivery

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Runner ejecuta un ciclo de envío. *Submitter lo implementa.
type Runner interface {
	RunOnce(ctx context.Context) (Report, error)
}

// Scheduler dispara ciclos del Submitter periódicamente y a demanda.
// Los ciclos corren siempre en su propia goroutine y nunca se solapan.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	log      zerolog.Logger

	trigger chan struct{}
	stopCh  chan struct{}
	wg      sync.WaitGroup

	mu       sync.RWMutex
	running  bool
	last     *Report
	lastErr  error
	online   bool
	onReport []func(Report)
}

// NewScheduler construye el planificador; interval <= 0 desactiva el ticker.
func NewScheduler(runner Runner, interval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		log:      log,
		trigger:  make(chan struct{}, 1),
		online:   true,
	}
}

// OnReport registra un callback que recibe el reporte de cada ciclo.
func (s *Scheduler) OnReport(fn func(Report)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReport = append(s.onReport, fn)
}

// Start lanza el bucle. Se detiene con Stop o al cancelarse ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx, stopCh)
	s.log.Info().Dur("intervalo", s.interval).Msg("planificador de envío iniciado")
}

// Stop detiene el bucle y espera a que termine el ciclo en curso.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Info().Msg("planificador de envío detenido")
}

// Trigger pide un ciclo lo antes posible. No bloquea; pedidos repetidos se fusionan.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// SetOnline informa el estado de conectividad; al recuperarla dispara un ciclo.
func (s *Scheduler) SetOnline(online bool) {
	s.mu.Lock()
	was := s.online
	s.online = online
	s.mu.Unlock()
	if online && !was {
		s.log.Info().Msg("conectividad restablecida")
		s.Trigger()
	}
}

// Online último estado de conectividad conocido.
func (s *Scheduler) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// LastReport devuelve el último reporte y error, o nil si aún no corrió ningún ciclo.
func (s *Scheduler) LastReport() (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastErr
}

func (s *Scheduler) loop(ctx context.Context, stopCh <-chan struct{}) {
	defer s.wg.Done()

	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-tick:
			s.runCycle(ctx)
		case <-s.trigger:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	report, err := s.runner.RunOnce(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("ciclo de envío con error local")
	}

	s.mu.Lock()
	s.last = &report
	s.lastErr = err
	s.online = !report.Offline()
	hooks := append([]func(Report){}, s.onReport...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(report)
	}
}
