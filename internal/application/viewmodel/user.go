package viewmodel

import (
	"context"
	"strings"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

const minPasswordLen = 8

// UserForm alta de usuario.
type UserForm struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Validate revisa el formulario antes de enviarlo.
func (f UserForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return domain.Invalid("nombre", "es requerido")
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return domain.Invalid("email", "es requerido")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return domain.Invalid("email", "no es válido")
	}
	if len(f.Password) < minPasswordLen {
		return domain.Invalid("password", "debe tener al menos 8 caracteres")
	}
	if !entity.ValidRole(strings.ToUpper(strings.TrimSpace(f.Role))) {
		return domain.Invalid("rol", "debe ser ADMINISTRADOR, SUPERVISOR u OPERADOR")
	}
	return nil
}

// UserViewModel administración de usuarios.
type UserViewModel struct {
	scope    *Scope
	users    repository.UserRepository
	sessions SessionSource
	list     *Container[Listing[*entity.User]]
	action   *Container[*entity.User]
}

func NewUserViewModel(ctx context.Context, users repository.UserRepository, sessions SessionSource) *UserViewModel {
	return &UserViewModel{
		scope:    NewScope(ctx),
		users:    users,
		sessions: sessions,
		list:     NewContainer[Listing[*entity.User]](),
		action:   NewContainer[*entity.User](),
	}
}

func (vm *UserViewModel) List() *Container[Listing[*entity.User]] { return vm.list }
func (vm *UserViewModel) Action() *Container[*entity.User]       { return vm.action }
func (vm *UserViewModel) Close()                                 { vm.scope.Close() }

// Load filtra por rol (vacío = todos) y por nombre o email.
func (vm *UserViewModel) Load(ctx context.Context, role, search string) State[Listing[*entity.User]] {
	return op(vm.scope, ctx, vm.list, func(ctx context.Context) (Listing[*entity.User], error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Listing[*entity.User]{}, err
		}
		role = strings.ToUpper(strings.TrimSpace(role))
		if role != "" && !entity.ValidRole(role) {
			return Listing[*entity.User]{}, domain.Invalid("rol", "no es válido")
		}
		all, err := vm.users.List(ctx)
		if err != nil {
			return Listing[*entity.User]{}, err
		}
		var out Listing[*entity.User]
		for _, u := range all {
			if role != "" && u.Role != role {
				continue
			}
			if matches(search, u.Name, u.Email) {
				out.Items = append(out.Items, u)
			}
		}
		return out, nil
	})
}

// Create da de alta un usuario. Solo un administrador puede hacerlo y requiere conexión.
func (vm *UserViewModel) Create(ctx context.Context, form UserForm) State[*entity.User] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (*entity.User, error) {
		sess, err := requireSession(ctx, vm.sessions)
		if err != nil {
			return nil, err
		}
		if sess.Role != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if err := form.Validate(); err != nil {
			return nil, err
		}
		return vm.users.Create(ctx, repository.NewUser{
			Name:     strings.TrimSpace(form.Name),
			Email:    strings.ToLower(strings.TrimSpace(form.Email)),
			Password: form.Password,
			Role:     strings.ToUpper(strings.TrimSpace(form.Role)),
		})
	})
}
