package delivery

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// KindReport resultado de un ciclo para un tipo de registro.
type KindReport struct {
	Kind     entity.PendingKind
	Accepted int
	Rejected int
	Deferred int    // falla transitoria, sigue en cola con backoff
	Waiting  int    // no se intentaron en este ciclo (backoff vigente o ciclo cortado)
	Stalled  int    // agotaron los intentos automáticos, esperan "sincronizar ahora"
	Halted   string // motivo por el que se cortó el ciclo (offline, sesión)
}

// Report resultado de un ciclo completo.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Kinds      []KindReport
	Rejections []*entity.RejectedRecord
}

// Accepted total de registros retirados por confirmación.
func (r Report) Accepted() int {
	n := 0
	for _, k := range r.Kinds {
		n += k.Accepted
	}
	return n
}

// Offline indica si algún tipo se cortó por falta de conexión.
func (r Report) Offline() bool {
	for _, k := range r.Kinds {
		if k.Halted == haltOffline {
			return true
		}
	}
	return false
}

const (
	haltOffline      = "offline"
	haltUnauthorized = "sesión no válida"
)

// Submitter entrega los registros pendientes a la autoridad remota y los retira al confirmarse.
// Cada tipo se recorre en orden FIFO y cada registro recibe a lo sumo un intento por ciclo;
// una falla transitoria no impide intentar los siguientes. Solo la falta de conexión o de
// sesión corta el recorrido del tipo. Entre tipos no hay orden, se drenan en paralelo.
type Submitter struct {
	store  repository.PendingStore
	ledger repository.DeliveryLedger
	gw     Gateway
	policy Policy
	log    zerolog.Logger
	now    func() time.Time

	mu         sync.Mutex
	onRejected []func(*entity.RejectedRecord)
}

// NewSubmitter construye el submitter.
func NewSubmitter(store repository.PendingStore, ledger repository.DeliveryLedger, gw Gateway, policy Policy, log zerolog.Logger) *Submitter {
	return &Submitter{
		store:  store,
		ledger: ledger,
		gw:     gw,
		policy: policy,
		log:    log,
		now:    time.Now,
	}
}

// OnRejected registra un callback para cada registro rechazado por el servidor.
// Los callbacks corren en la goroutine del ciclo; no deben bloquear.
func (s *Submitter) OnRejected(fn func(*entity.RejectedRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRejected = append(s.onRejected, fn)
}

// Policy devuelve la política configurada.
func (s *Submitter) Policy() Policy { return s.policy }

// RunOnce ejecuta un ciclo de envío. Solo devuelve error ante fallas del almacén local;
// las fallas de entrega quedan en el reporte y en la bitácora.
func (s *Submitter) RunOnce(ctx context.Context) (Report, error) {
	report := Report{StartedAt: s.now(), Kinds: make([]KindReport, len(entity.PendingKinds))}
	rejections := make([][]*entity.RejectedRecord, len(entity.PendingKinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range entity.PendingKinds {
		g.Go(func() error {
			kr, rej, err := s.drain(gctx, kind)
			report.Kinds[i] = kr
			rejections[i] = rej
			return err
		})
	}
	err := g.Wait()
	for _, rej := range rejections {
		report.Rejections = append(report.Rejections, rej...)
	}
	report.FinishedAt = s.now()

	ev := s.log.Debug()
	if report.Accepted() > 0 || len(report.Rejections) > 0 {
		ev = s.log.Info()
	}
	ev.Int("aceptados", report.Accepted()).
		Int("rechazados", len(report.Rejections)).
		Bool("offline", report.Offline()).
		Dur("duracion", report.FinishedAt.Sub(report.StartedAt)).
		Msg("ciclo de envío")
	return report, err
}

func (s *Submitter) drain(ctx context.Context, kind entity.PendingKind) (KindReport, []*entity.RejectedRecord, error) {
	kr := KindReport{Kind: kind}
	var rejected []*entity.RejectedRecord

	recs, err := s.store.ListPending(ctx, kind)
	if err != nil {
		return kr, nil, err
	}
	for i, rec := range recs {
		if ctx.Err() != nil {
			kr.Waiting += len(recs) - i
			return kr, rejected, nil
		}
		meta := rec.Meta()
		log := s.log.With().Str("kind", string(kind)).Int64("local_id", meta.ID).Logger()

		att, err := s.ledger.Attempt(ctx, kind, meta.ID)
		if err != nil {
			return kr, rejected, err
		}
		if att != nil {
			if s.policy.Stalled(att.Attempts) {
				kr.Stalled++
				continue
			}
			if s.now().Before(att.NextAttemptAt) {
				kr.Waiting++
				continue
			}
		}

		receipt, derr := s.gw.Deliver(ctx, rec)
		switch {
		case derr == nil:
			if err := s.store.Retire(ctx, kind, meta.ID); err != nil {
				return kr, rejected, err
			}
			kr.Accepted++
			ev := log.Debug()
			if receipt != nil {
				ev = ev.Int64("server_id", receipt.ServerID).Bool("duplicado", receipt.Duplicate)
			}
			ev.Msg("registro confirmado y retirado")

		case domain.IsRejection(derr):
			var rej *domain.RejectionError
			errors.As(derr, &rej)
			rr, err := s.ledger.Reject(ctx, rec, rej)
			if err != nil {
				return kr, rejected, err
			}
			kr.Rejected++
			rejected = append(rejected, rr)
			log.Warn().Int("status", rej.Status).Str("motivo", rej.Message).Msg("registro rechazado por el servidor")
			s.notifyRejected(rr)

		case errors.Is(derr, domain.ErrOffline):
			kr.Halted = haltOffline
			kr.Waiting += len(recs) - i
			log.Debug().Err(derr).Msg("sin conexión, se reintenta en el próximo ciclo")
			return kr, rejected, nil

		case errors.Is(derr, domain.ErrUnauthorized), errors.Is(derr, domain.ErrSessionExpired):
			kr.Halted = haltUnauthorized
			kr.Waiting += len(recs) - i
			log.Warn().Err(derr).Msg("sesión no válida, envío suspendido")
			return kr, rejected, nil

		default:
			attempts := 1
			if att != nil {
				attempts = att.Attempts + 1
			}
			next := s.now().Add(s.policy.Backoff(attempts))
			if _, err := s.ledger.RecordFailure(ctx, kind, meta.ID, derr.Error(), next); err != nil {
				return kr, rejected, err
			}
			kr.Deferred++
			log.Warn().Err(derr).Int("intento", attempts).Time("proximo", next).Msg("entrega fallida, queda en cola")
		}
	}
	return kr, rejected, nil
}

func (s *Submitter) notifyRejected(rr *entity.RejectedRecord) {
	s.mu.Lock()
	hooks := append([]func(*entity.RejectedRecord){}, s.onRejected...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn(rr)
	}
}
