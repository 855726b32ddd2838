package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore guarda la sesión activa y el hash bcrypt del último login por email.
type SessionStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSessionStore construye el adaptador de sesión.
func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

type sessionRow struct {
	Email        string `db:"email"`
	Token        string `db:"token"`
	TokenType    string `db:"token_type"`
	UserID       int64  `db:"user_id"`
	Name         string `db:"nombre"`
	Role         string `db:"rol"`
	ExpiresAt    int64  `db:"expires_at"`
	PasswordHash string `db:"password_hash"`
	Active       int    `db:"active"`
	UpdatedAt    int64  `db:"updated_at"`
}

func (r sessionRow) toEntity() *entity.Session {
	return &entity.Session{
		Token:     r.Token,
		TokenType: r.TokenType,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		ExpiresAt: fromMillis(r.ExpiresAt),
	}
}

// Save guarda la sesión como activa (desactiva las demás) junto con el hash de credenciales.
func (s *SessionStore) Save(ctx context.Context, sess *entity.Session, passwordHash string) error {
	row := sessionRow{
		Email:        normalizeEmail(sess.Email),
		Token:        sess.Token,
		TokenType:    sess.TokenType,
		UserID:       sess.UserID,
		Name:         sess.Name,
		Role:         sess.Role,
		ExpiresAt:    toMillis(sess.ExpiresAt),
		PasswordHash: passwordHash,
		Active:       1,
		UpdatedAt:    toMillis(s.now()),
	}
	if sess.ExpiresAt.IsZero() {
		row.ExpiresAt = 0
	}
	if row.TokenType == "" {
		row.TokenType = "Bearer"
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET active = 0`); err != nil {
		return writeErr("guardar sesión", err)
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO sessions (email, token, token_type, user_id, nombre, rol, expires_at, password_hash, active, updated_at)
		VALUES (:email, :token, :token_type, :user_id, :nombre, :rol, :expires_at, :password_hash, :active, :updated_at)
		ON CONFLICT (email) DO UPDATE SET
			token = excluded.token, token_type = excluded.token_type, user_id = excluded.user_id,
			nombre = excluded.nombre, rol = excluded.rol, expires_at = excluded.expires_at,
			password_hash = excluded.password_hash, active = 1, updated_at = excluded.updated_at`, row); err != nil {
		return writeErr("guardar sesión", err)
	}
	return tx.Commit()
}

// Current devuelve la sesión activa o nil.
func (s *SessionStore) Current(ctx context.Context) (*entity.Session, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM sessions WHERE active = 1 LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return row.toEntity(), nil
}

// Credentials devuelve las credenciales en caché del email, o nil.
func (s *SessionStore) Credentials(ctx context.Context, email string) (*repository.CachedCredentials, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM sessions WHERE email = ?`, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer credenciales: %w", err)
	}
	return &repository.CachedCredentials{Session: *row.toEntity(), PasswordHash: row.PasswordHash}, nil
}

// Activate marca como activa la sesión en caché del email de sess.
func (s *SessionStore) Activate(ctx context.Context, sess *entity.Session) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("activar sesión: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET active = 0`); err != nil {
		return writeErr("activar sesión", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET active = 1, updated_at = ? WHERE email = ?`,
		toMillis(s.now()), normalizeEmail(sess.Email)); err != nil {
		return writeErr("activar sesión", err)
	}
	return tx.Commit()
}

// Clear cierra la sesión activa; las credenciales en caché se conservan.
func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE sessions SET active = 0`); err != nil {
		return writeErr("cerrar sesión", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
