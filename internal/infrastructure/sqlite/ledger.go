package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

var _ repository.DeliveryLedger = (*DeliveryLedger)(nil)

// DeliveryLedger intentos de entrega y rechazos, en la misma base que la cola.
type DeliveryLedger struct {
	db    *sqlx.DB
	store *PendingStore
	now   func() time.Time
}

// NewDeliveryLedger construye la bitácora. store se usa para reencolar rechazos.
func NewDeliveryLedger(db *sqlx.DB, store *PendingStore) *DeliveryLedger {
	return &DeliveryLedger{db: db, store: store, now: time.Now}
}

type attemptRow struct {
	Kind          string `db:"kind"`
	LocalID       int64  `db:"local_id"`
	Attempts      int    `db:"attempts"`
	LastError     string `db:"last_error"`
	NextAttemptAt int64  `db:"next_attempt_at"`
	UpdatedAt     int64  `db:"updated_at"`
}

func (r attemptRow) toEntity() *entity.DeliveryAttempt {
	return &entity.DeliveryAttempt{
		Kind:          entity.PendingKind(r.Kind),
		LocalID:       r.LocalID,
		Attempts:      r.Attempts,
		LastError:     r.LastError,
		NextAttemptAt: fromMillis(r.NextAttemptAt),
		UpdatedAt:     fromMillis(r.UpdatedAt),
	}
}

type rejectedRow struct {
	ID         int64  `db:"id"`
	Kind       string `db:"kind"`
	LocalID    int64  `db:"local_id"`
	ClientRef  string `db:"client_ref"`
	Payload    []byte `db:"payload"`
	Status     int    `db:"status"`
	Code       string `db:"code"`
	Message    string `db:"message"`
	CreatedAt  int64  `db:"created_at"`
	RejectedAt int64  `db:"rejected_at"`
}

func (r rejectedRow) toEntity() *entity.RejectedRecord {
	return &entity.RejectedRecord{
		ID:         r.ID,
		Kind:       entity.PendingKind(r.Kind),
		LocalID:    r.LocalID,
		ClientRef:  r.ClientRef,
		Payload:    r.Payload,
		Status:     r.Status,
		Code:       r.Code,
		Message:    r.Message,
		CreatedAt:  fromMillis(r.CreatedAt),
		RejectedAt: fromMillis(r.RejectedAt),
	}
}

// Attempt devuelve nil, nil si el registro nunca falló.
func (l *DeliveryLedger) Attempt(ctx context.Context, kind entity.PendingKind, localID int64) (*entity.DeliveryAttempt, error) {
	var row attemptRow
	err := l.db.GetContext(ctx, &row, `SELECT * FROM delivery_attempts WHERE kind = ? AND local_id = ?`, string(kind), localID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer intento: %w", err)
	}
	return row.toEntity(), nil
}

// RecordFailure incrementa el contador de intentos y programa el siguiente.
func (l *DeliveryLedger) RecordFailure(ctx context.Context, kind entity.PendingKind, localID int64, lastErr string, next time.Time) (*entity.DeliveryAttempt, error) {
	now := toMillis(l.now())
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO delivery_attempts (kind, local_id, attempts, last_error, next_attempt_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?)
		ON CONFLICT (kind, local_id) DO UPDATE SET
			attempts = attempts + 1,
			last_error = excluded.last_error,
			next_attempt_at = excluded.next_attempt_at,
			updated_at = excluded.updated_at`,
		string(kind), localID, lastErr, toMillis(next), now)
	if err != nil {
		return nil, writeErr("registrar intento", err)
	}
	return l.Attempt(ctx, kind, localID)
}

// ResetAttempts habilita todos los registros para un envío inmediato (p. ej. "sincronizar ahora").
func (l *DeliveryLedger) ResetAttempts(ctx context.Context) (int, error) {
	res, err := l.db.ExecContext(ctx, `DELETE FROM delivery_attempts`)
	if err != nil {
		return 0, writeErr("reiniciar intentos", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// ListAttempts lista la bitácora completa ordenada por tipo e ID local.
func (l *DeliveryLedger) ListAttempts(ctx context.Context) ([]*entity.DeliveryAttempt, error) {
	var rows []attemptRow
	if err := l.db.SelectContext(ctx, &rows, `SELECT * FROM delivery_attempts ORDER BY kind, local_id`); err != nil {
		return nil, fmt.Errorf("listar intentos: %w", err)
	}
	out := make([]*entity.DeliveryAttempt, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// Reject guarda el rechazo y retira el registro de la cola en la misma transacción.
func (l *DeliveryLedger) Reject(ctx context.Context, rec entity.PendingRecord, rej *domain.RejectionError) (*entity.RejectedRecord, error) {
	table, err := tableFor(rec.Kind())
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serializar rechazo: %w", err)
	}
	meta := rec.Meta()
	row := rejectedRow{
		Kind:       string(rec.Kind()),
		LocalID:    meta.ID,
		ClientRef:  meta.ClientRef,
		Payload:    payload,
		Status:     rej.Status,
		Code:       rej.Code,
		Message:    rej.Message,
		CreatedAt:  toMillis(meta.CreatedAt),
		RejectedAt: toMillis(l.now()),
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("rechazar: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO rejected_records (kind, local_id, client_ref, payload, status, code, message, created_at, rejected_at)
		VALUES (:kind, :local_id, :client_ref, :payload, :status, :code, :message, :created_at, :rejected_at)`, row)
	if err != nil {
		return nil, writeErr("guardar rechazo", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, meta.ID); err != nil {
		return nil, writeErr("retirar rechazado", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM delivery_attempts WHERE kind = ? AND local_id = ?`, row.Kind, meta.ID); err != nil {
		return nil, writeErr("retirar intentos", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, writeErr("rechazar", err)
	}
	row.ID, _ = res.LastInsertId()
	return row.toEntity(), nil
}

// ListRejected lista los rechazos, el más antiguo primero.
func (l *DeliveryLedger) ListRejected(ctx context.Context) ([]*entity.RejectedRecord, error) {
	var rows []rejectedRow
	if err := l.db.SelectContext(ctx, &rows, `SELECT * FROM rejected_records ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("listar rechazos: %w", err)
	}
	out := make([]*entity.RejectedRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// DiscardRejected borra un rechazo; idempotente.
func (l *DeliveryLedger) DiscardRejected(ctx context.Context, id int64) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM rejected_records WHERE id = ?`, id); err != nil {
		return writeErr("descartar rechazo", err)
	}
	return nil
}

// Requeue vuelve a encolar un rechazo con ID local y referencia de cliente nuevos
// (es una solicitud nueva para el servidor). corrected trae la versión editada por
// el usuario y debe ser del mismo tipo; nil reenvía el contenido original.
func (l *DeliveryLedger) Requeue(ctx context.Context, id int64, corrected entity.PendingRecord) (entity.PendingRecord, error) {
	row, err := l.rejected(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := corrected
	if rec == nil {
		if rec, err = decodeRecord(entity.PendingKind(row.Kind), row.Payload); err != nil {
			return nil, err
		}
	} else if rec.Kind() != entity.PendingKind(row.Kind) {
		return nil, domain.Invalid("tipo", fmt.Sprintf("el rechazo es de tipo %s", row.Kind))
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reencolar: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	meta := entity.PendingMeta{ClientRef: uuid.NewString(), CreatedAt: l.now()}
	if _, err := l.store.insert(ctx, tx, rec, meta); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rejected_records WHERE id = ?`, id); err != nil {
		return nil, writeErr("reencolar", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, writeErr("reencolar", err)
	}
	return rec, nil
}

// GetRejected devuelve un rechazo con su contenido decodificado, para editarlo antes de reencolar.
func (l *DeliveryLedger) GetRejected(ctx context.Context, id int64) (*entity.RejectedRecord, entity.PendingRecord, error) {
	row, err := l.rejected(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rec, err := decodeRecord(entity.PendingKind(row.Kind), row.Payload)
	if err != nil {
		return nil, nil, err
	}
	return row.toEntity(), rec, nil
}

func (l *DeliveryLedger) rejected(ctx context.Context, id int64) (*rejectedRow, error) {
	var row rejectedRow
	if err := l.db.GetContext(ctx, &row, `SELECT * FROM rejected_records WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer rechazo: %w", err)
	}
	return &row, nil
}

func decodeRecord(kind entity.PendingKind, payload []byte) (entity.PendingRecord, error) {
	var rec entity.PendingRecord
	switch kind {
	case entity.PendingKindMovement:
		rec = &entity.PendingMovementRequest{}
	case entity.PendingKindInventoryCount:
		rec = &entity.PendingInventoryCount{}
	case entity.PendingKindMessage:
		rec = &entity.PendingMessage{}
	case entity.PendingKindLocationAssignment:
		rec = &entity.PendingLocationAssignment{}
	default:
		_, err := tableFor(kind)
		return nil, err
	}
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("decodificar rechazo: %w", err)
	}
	return rec, nil
}
