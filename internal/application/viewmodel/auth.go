package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// AuthViewModel pantalla de inicio de sesión.
//
// El login va siempre primero al servidor. Solo si el servidor no responde se
// valida contra el hash bcrypt del último login exitoso con ese email, y la
// sesión queda marcada como Offline.
type AuthViewModel struct {
	scope    *Scope
	auth     repository.AuthGateway
	sessions repository.SessionStore
	cost     int
	now      func() time.Time
	log      zerolog.Logger
	state    *Container[*entity.Session]
}

// NewAuthViewModel construye el view-model. cost es el costo bcrypt (0 = bcrypt.DefaultCost).
func NewAuthViewModel(ctx context.Context, auth repository.AuthGateway, sessions repository.SessionStore, cost int, log zerolog.Logger) *AuthViewModel {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthViewModel{
		scope:    NewScope(ctx),
		auth:     auth,
		sessions: sessions,
		cost:     cost,
		now:      time.Now,
		log:      log.With().Str("vm", "auth").Logger(),
		state:    NewContainer[*entity.Session](),
	}
}

func (vm *AuthViewModel) State() *Container[*entity.Session] { return vm.state }

func (vm *AuthViewModel) Close() { vm.scope.Close() }

// Login autentica al usuario.
func (vm *AuthViewModel) Login(ctx context.Context, email, password string) State[*entity.Session] {
	return op(vm.scope, ctx, vm.state, func(ctx context.Context) (*entity.Session, error) {
		email = strings.TrimSpace(email)
		if email == "" {
			return nil, domain.Invalid("email", "es requerido")
		}
		if password == "" {
			return nil, domain.Invalid("password", "es requerido")
		}

		sess, err := vm.auth.Login(ctx, email, password)
		switch {
		case err == nil:
			hash, herr := bcrypt.GenerateFromPassword([]byte(password), vm.cost)
			if herr != nil {
				return nil, fmt.Errorf("hash de credenciales: %w", herr)
			}
			if err := vm.sessions.Save(ctx, sess, string(hash)); err != nil {
				return nil, err
			}
			vm.log.Info().Int64("user_id", sess.UserID).Str("role", sess.Role).Msg("Sesión iniciada")
			return sess, nil
		case isOffline(err):
			return vm.offlineLogin(ctx, email, password, err)
		default:
			return nil, err
		}
	})
}

func (vm *AuthViewModel) offlineLogin(ctx context.Context, email, password string, cause error) (*entity.Session, error) {
	creds, err := vm.sessions.Credentials(ctx, email)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, fmt.Errorf("%w: no hay credenciales guardadas para %s", cause, email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("verificar credenciales: %w", err)
	}
	sess := creds.Session
	sess.Offline = true
	if err := vm.sessions.Activate(ctx, &sess); err != nil {
		return nil, err
	}
	vm.log.Warn().Int64("user_id", sess.UserID).Msg("Sesión iniciada sin conexión")
	return &sess, nil
}

// Logout cierra la sesión activa. Las escrituras pendientes no se pierden.
func (vm *AuthViewModel) Logout(ctx context.Context) error {
	if err := vm.sessions.Clear(ctx); err != nil {
		return err
	}
	return vm.state.Reset()
}

// Session devuelve la sesión activa. Una sesión en línea vencida devuelve ErrSessionExpired.
func (vm *AuthViewModel) Session(ctx context.Context) (*entity.Session, error) {
	sess, err := vm.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if st := vm.state.Get(); st.Phase == PhaseSuccess && st.Data != nil && st.Data.Email == sess.Email {
		sess.Offline = st.Data.Offline
	}
	if !sess.Offline && sess.Expired(vm.now()) {
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}
