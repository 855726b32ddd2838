package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version     int
	description string
	statements  []string
}

// migrations se aplican en orden; nunca editar una ya publicada, agregar una nueva.
var migrations = []migration{
	{
		version:     1,
		description: "tablas de registros pendientes",
		statements: []string{
			`CREATE TABLE pending_movements (
				id                   INTEGER PRIMARY KEY AUTOINCREMENT,
				client_ref           TEXT    NOT NULL UNIQUE,
				tipo_movimiento      TEXT    NOT NULL CHECK (tipo_movimiento IN ('INGRESO','EGRESO','REUBICACION')),
				sku                  TEXT    NOT NULL CHECK (length(sku) > 0),
				cantidad             INTEGER NOT NULL CHECK (cantidad > 0),
				motivo               TEXT    NOT NULL,
				id_ubicacion_origen  INTEGER,
				id_ubicacion_destino INTEGER,
				created_at           INTEGER NOT NULL
			)`,
			`CREATE TABLE pending_counts (
				id              INTEGER PRIMARY KEY AUTOINCREMENT,
				client_ref      TEXT    NOT NULL UNIQUE,
				sku             TEXT    NOT NULL CHECK (length(sku) > 0),
				id_ubicacion    INTEGER NOT NULL CHECK (id_ubicacion > 0),
				cantidad_fisica INTEGER NOT NULL CHECK (cantidad_fisica >= 0),
				created_at      INTEGER NOT NULL
			)`,
			`CREATE TABLE pending_messages (
				id              INTEGER PRIMARY KEY AUTOINCREMENT,
				client_ref      TEXT    NOT NULL UNIQUE,
				id_destinatario INTEGER,
				titulo          TEXT    NOT NULL,
				contenido       TEXT    NOT NULL,
				importante      INTEGER NOT NULL DEFAULT 0,
				created_at      INTEGER NOT NULL
			)`,
			`CREATE TABLE pending_location_assignments (
				id           INTEGER PRIMARY KEY AUTOINCREMENT,
				client_ref   TEXT    NOT NULL UNIQUE,
				sku          TEXT    NOT NULL CHECK (length(sku) > 0),
				id_ubicacion INTEGER NOT NULL CHECK (id_ubicacion > 0),
				cantidad     INTEGER NOT NULL CHECK (cantidad > 0),
				created_at   INTEGER NOT NULL
			)`,
		},
	},
	{
		version:     2,
		description: "bitácora de entrega y rechazos",
		statements: []string{
			`CREATE TABLE delivery_attempts (
				kind            TEXT    NOT NULL,
				local_id        INTEGER NOT NULL,
				attempts        INTEGER NOT NULL,
				last_error      TEXT    NOT NULL DEFAULT '',
				next_attempt_at INTEGER NOT NULL,
				updated_at      INTEGER NOT NULL,
				PRIMARY KEY (kind, local_id)
			)`,
			`CREATE TABLE rejected_records (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				kind        TEXT    NOT NULL,
				local_id    INTEGER NOT NULL,
				client_ref  TEXT    NOT NULL,
				payload     BLOB    NOT NULL,
				status      INTEGER NOT NULL,
				code        TEXT    NOT NULL DEFAULT '',
				message     TEXT    NOT NULL DEFAULT '',
				created_at  INTEGER NOT NULL,
				rejected_at INTEGER NOT NULL
			)`,
		},
	},
	{
		version:     3,
		description: "sesión y credenciales en caché",
		statements: []string{
			`CREATE TABLE sessions (
				email         TEXT PRIMARY KEY,
				token         TEXT    NOT NULL,
				token_type    TEXT    NOT NULL DEFAULT 'Bearer',
				user_id       INTEGER NOT NULL,
				nombre        TEXT    NOT NULL,
				rol           TEXT    NOT NULL,
				expires_at    INTEGER NOT NULL DEFAULT 0,
				password_hash TEXT    NOT NULL,
				active        INTEGER NOT NULL DEFAULT 0,
				updated_at    INTEGER NOT NULL
			)`,
		},
	},
}

// Migrate crea schema_migrations si no existe y aplica cada versión pendiente en su propia transacción.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     INTEGER PRIMARY KEY CHECK (version > 0),
			description TEXT    NOT NULL,
			applied_at  INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}
	var current int
	if err := db.GetContext(ctx, &current, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`); err != nil {
		return fmt.Errorf("leer versión de esquema: %w", err)
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, db *sqlx.DB, m migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migración %d: %w", m.version, err)
	}
	defer func() { _ = tx.Rollback() }()
	for _, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d (%s): %w", m.version, m.description, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)`,
		m.version, m.description, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("registrar migración %d: %w", m.version, err)
	}
	return tx.Commit()
}

// SchemaVersion devuelve la última versión aplicada.
func SchemaVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var v int
	err := db.GetContext(ctx, &v, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	return v, err
}
