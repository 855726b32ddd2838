package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// isStorageFull verifica si un error es SQLITE_FULL (disco o cuota agotados).
func isStorageFull(err error) bool {
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code()&0xff == sqlite3.SQLITE_FULL
	}
	return strings.Contains(err.Error(), "database or disk is full")
}

// writeErr traduce un error de escritura; SQLITE_FULL se expone como domain.ErrStorageFull.
func writeErr(op string, err error) error {
	if isStorageFull(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStorageFull)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var tableByKind = map[entity.PendingKind]string{
	entity.PendingKindMovement:           "pending_movements",
	entity.PendingKindInventoryCount:     "pending_counts",
	entity.PendingKindMessage:            "pending_messages",
	entity.PendingKindLocationAssignment: "pending_location_assignments",
}

func tableFor(kind entity.PendingKind) (string, error) {
	t, ok := tableByKind[kind]
	if !ok {
		return "", domain.Invalid("kind", fmt.Sprintf("tipo de registro desconocido %q", kind))
	}
	return t, nil
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func ptrInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
