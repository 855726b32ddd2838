package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

var _ repository.PendingStore = (*PendingStore)(nil)

// PendingStore almacén local append-only de escrituras iniciadas por el usuario.
type PendingStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPendingStore construye el almacén sobre una base ya migrada (ver Open).
func NewPendingStore(db *sqlx.DB) *PendingStore {
	return &PendingStore{db: db, now: time.Now}
}

type movementRow struct {
	ID          int64         `db:"id"`
	ClientRef   string        `db:"client_ref"`
	Type        string        `db:"tipo_movimiento"`
	SKU         string        `db:"sku"`
	Quantity    int           `db:"cantidad"`
	Reason      string        `db:"motivo"`
	Source      sql.NullInt64 `db:"id_ubicacion_origen"`
	Destination sql.NullInt64 `db:"id_ubicacion_destino"`
	CreatedAt   int64         `db:"created_at"`
}

type countRow struct {
	ID               int64  `db:"id"`
	ClientRef        string `db:"client_ref"`
	SKU              string `db:"sku"`
	LocationID       int64  `db:"id_ubicacion"`
	PhysicalQuantity int    `db:"cantidad_fisica"`
	CreatedAt        int64  `db:"created_at"`
}

type messageRow struct {
	ID          int64         `db:"id"`
	ClientRef   string        `db:"client_ref"`
	RecipientID sql.NullInt64 `db:"id_destinatario"`
	Title       string        `db:"titulo"`
	Body        string        `db:"contenido"`
	Important   int           `db:"importante"`
	CreatedAt   int64         `db:"created_at"`
}

type assignmentRow struct {
	ID         int64  `db:"id"`
	ClientRef  string `db:"client_ref"`
	SKU        string `db:"sku"`
	LocationID int64  `db:"id_ubicacion"`
	Quantity   int    `db:"cantidad"`
	CreatedAt  int64  `db:"created_at"`
}

// Enqueue valida el registro y lo inserta en una sola sentencia (commit atómico por registro).
// Un registro inválido se rechaza sin escribir nada.
func (s *PendingStore) Enqueue(ctx context.Context, rec entity.PendingRecord) (int64, error) {
	if rec == nil {
		return 0, domain.Invalid("registro", "es requerido")
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	meta := entity.PendingMeta{ClientRef: uuid.NewString(), CreatedAt: s.now()}
	return s.insert(ctx, s.db, rec, meta)
}

// normalizer lo implementan los registros que descartan campos que no aplican.
type normalizer interface{ Normalize() }

// insert escribe rec con meta usando db o tx. rec ya fue validado.
func (s *PendingStore) insert(ctx context.Context, q sqlx.ExtContext, rec entity.PendingRecord, meta entity.PendingMeta) (int64, error) {
	if n, ok := rec.(normalizer); ok {
		n.Normalize()
	}
	var (
		res sql.Result
		err error
	)
	created := toMillis(meta.CreatedAt)
	switch r := rec.(type) {
	case *entity.PendingMovementRequest:
		res, err = sqlx.NamedExecContext(ctx, q, `
			INSERT INTO pending_movements (client_ref, tipo_movimiento, sku, cantidad, motivo, id_ubicacion_origen, id_ubicacion_destino, created_at)
			VALUES (:client_ref, :tipo_movimiento, :sku, :cantidad, :motivo, :id_ubicacion_origen, :id_ubicacion_destino, :created_at)`,
			movementRow{
				ClientRef: meta.ClientRef, Type: string(r.Type), SKU: r.SKU, Quantity: r.Quantity, Reason: r.Reason,
				Source: nullInt(r.SourceLocationID), Destination: nullInt(r.DestinationLocationID), CreatedAt: created,
			})
	case *entity.PendingInventoryCount:
		res, err = sqlx.NamedExecContext(ctx, q, `
			INSERT INTO pending_counts (client_ref, sku, id_ubicacion, cantidad_fisica, created_at)
			VALUES (:client_ref, :sku, :id_ubicacion, :cantidad_fisica, :created_at)`,
			countRow{ClientRef: meta.ClientRef, SKU: r.SKU, LocationID: r.LocationID, PhysicalQuantity: r.PhysicalQuantity, CreatedAt: created})
	case *entity.PendingMessage:
		res, err = sqlx.NamedExecContext(ctx, q, `
			INSERT INTO pending_messages (client_ref, id_destinatario, titulo, contenido, importante, created_at)
			VALUES (:client_ref, :id_destinatario, :titulo, :contenido, :importante, :created_at)`,
			messageRow{
				ClientRef: meta.ClientRef, RecipientID: nullInt(r.RecipientID), Title: r.Title, Body: r.Body,
				Important: boolInt(r.Important), CreatedAt: created,
			})
	case *entity.PendingLocationAssignment:
		res, err = sqlx.NamedExecContext(ctx, q, `
			INSERT INTO pending_location_assignments (client_ref, sku, id_ubicacion, cantidad, created_at)
			VALUES (:client_ref, :sku, :id_ubicacion, :cantidad, :created_at)`,
			assignmentRow{ClientRef: meta.ClientRef, SKU: r.SKU, LocationID: r.LocationID, Quantity: r.Quantity, CreatedAt: created})
	default:
		return 0, domain.Invalid("registro", fmt.Sprintf("tipo no soportado %T", rec))
	}
	if err != nil {
		return 0, writeErr("encolar "+string(rec.Kind()), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("id local: %w", err)
	}
	meta.ID = id
	setMeta(rec, meta)
	return id, nil
}

func setMeta(rec entity.PendingRecord, meta entity.PendingMeta) {
	switch r := rec.(type) {
	case *entity.PendingMovementRequest:
		r.PendingMeta = meta
	case *entity.PendingInventoryCount:
		r.PendingMeta = meta
	case *entity.PendingMessage:
		r.PendingMeta = meta
	case *entity.PendingLocationAssignment:
		r.PendingMeta = meta
	}
}

// Retire elimina el registro y su bitácora de intentos. Idempotente.
func (s *PendingStore) Retire(ctx context.Context, kind entity.PendingKind, localID int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("retirar: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, localID); err != nil {
		return writeErr("retirar", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM delivery_attempts WHERE kind = ? AND local_id = ?`, string(kind), localID); err != nil {
		return writeErr("retirar intentos", err)
	}
	if err := tx.Commit(); err != nil {
		return writeErr("retirar", err)
	}
	return nil
}

// ListPending lista los registros del tipo en orden FIFO (por ID local).
func (s *PendingStore) ListPending(ctx context.Context, kind entity.PendingKind) ([]entity.PendingRecord, error) {
	return s.list(ctx, kind, "", nil)
}

// Get obtiene un registro pendiente; nil, nil si no existe.
func (s *PendingStore) Get(ctx context.Context, kind entity.PendingKind, localID int64) (entity.PendingRecord, error) {
	list, err := s.list(ctx, kind, " WHERE id = ?", []any{localID})
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (s *PendingStore) list(ctx context.Context, kind entity.PendingKind, where string, args []any) ([]entity.PendingRecord, error) {
	var out []entity.PendingRecord
	switch kind {
	case entity.PendingKindMovement:
		var rows []movementRow
		if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM pending_movements`+where+` ORDER BY id ASC`, args...); err != nil {
			return nil, fmt.Errorf("listar movimientos pendientes: %w", err)
		}
		out = make([]entity.PendingRecord, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toEntity())
		}
	case entity.PendingKindInventoryCount:
		var rows []countRow
		if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM pending_counts`+where+` ORDER BY id ASC`, args...); err != nil {
			return nil, fmt.Errorf("listar conteos pendientes: %w", err)
		}
		out = make([]entity.PendingRecord, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toEntity())
		}
	case entity.PendingKindMessage:
		var rows []messageRow
		if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM pending_messages`+where+` ORDER BY id ASC`, args...); err != nil {
			return nil, fmt.Errorf("listar mensajes pendientes: %w", err)
		}
		out = make([]entity.PendingRecord, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toEntity())
		}
	case entity.PendingKindLocationAssignment:
		var rows []assignmentRow
		if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM pending_location_assignments`+where+` ORDER BY id ASC`, args...); err != nil {
			return nil, fmt.Errorf("listar asignaciones pendientes: %w", err)
		}
		out = make([]entity.PendingRecord, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toEntity())
		}
	default:
		_, err := tableFor(kind)
		return nil, err
	}
	return out, nil
}

// CountPending cuenta registros por tipo (incluye tipos en cero).
func (s *PendingStore) CountPending(ctx context.Context) (map[entity.PendingKind]int, error) {
	counts := make(map[entity.PendingKind]int, len(tableByKind))
	for _, kind := range entity.PendingKinds {
		var n int
		if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+tableByKind[kind]); err != nil {
			return nil, fmt.Errorf("contar %s: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}

func (r movementRow) toEntity() *entity.PendingMovementRequest {
	return &entity.PendingMovementRequest{
		PendingMeta:           entity.PendingMeta{ID: r.ID, ClientRef: r.ClientRef, CreatedAt: fromMillis(r.CreatedAt)},
		Type:                  entity.MovementKind(r.Type),
		SKU:                   r.SKU,
		Quantity:              r.Quantity,
		Reason:                r.Reason,
		SourceLocationID:      ptrInt(r.Source),
		DestinationLocationID: ptrInt(r.Destination),
	}
}

func (r countRow) toEntity() *entity.PendingInventoryCount {
	return &entity.PendingInventoryCount{
		PendingMeta:      entity.PendingMeta{ID: r.ID, ClientRef: r.ClientRef, CreatedAt: fromMillis(r.CreatedAt)},
		SKU:              r.SKU,
		LocationID:       r.LocationID,
		PhysicalQuantity: r.PhysicalQuantity,
	}
}

func (r messageRow) toEntity() *entity.PendingMessage {
	return &entity.PendingMessage{
		PendingMeta: entity.PendingMeta{ID: r.ID, ClientRef: r.ClientRef, CreatedAt: fromMillis(r.CreatedAt)},
		RecipientID: ptrInt(r.RecipientID),
		Title:       r.Title,
		Body:        r.Body,
		Important:   r.Important != 0,
	}
}

func (r assignmentRow) toEntity() *entity.PendingLocationAssignment {
	return &entity.PendingLocationAssignment{
		PendingMeta: entity.PendingMeta{ID: r.ID, ClientRef: r.ClientRef, CreatedAt: fromMillis(r.CreatedAt)},
		SKU:         r.SKU,
		LocationID:  r.LocationID,
		Quantity:    r.Quantity,
	}
}
