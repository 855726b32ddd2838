package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
	pkgjwt "github.com/jhoicas/wms-sync-agent/pkg/jwt"
)

var (
	_ repository.AuthGateway         = (*Client)(nil)
	_ repository.InventoryRepository = (*Client)(nil)
	_ delivery.Gateway               = (*Client)(nil)
	_ repository.ApprovalRepository  = approvals{}
	_ repository.MessageRepository   = messages{}
	_ repository.UserRepository      = users{}
	_ repository.ProductRepository   = products{}
	_ repository.LocationRepository  = locations{}
)

// Login autentica contra POST /api/auth/login. La expiración se lee de los claims del token.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var out dto.LoginResponse
	_, err := c.do(ctx, call{
		method: fiber.MethodPost,
		path:   "/api/auth/login",
		body:   dto.LoginRequest{Email: email, Password: password},
		out:    &out,
	})
	if err != nil {
		if domain.IsRejection(err) {
			return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login: el servidor no devolvió token")
	}
	sess := &entity.Session{
		Token:     out.Token,
		TokenType: out.Type,
		UserID:    out.ID,
		Name:      out.Name,
		Email:     out.Email,
		Role:      out.Role,
	}
	if claims, err := pkgjwt.ReadClaims(out.Token); err == nil {
		sess.ExpiresAt = claims.Expiry()
	} else {
		c.log.Warn().Err(err).Msg("token sin claims legibles, la sesión no expira localmente")
	}
	return sess, nil
}

// listApprovals lista solicitudes; status vacío las devuelve todas.
func (c *Client) listApprovals(ctx context.Context, status string) ([]*entity.Approval, error) {
	path := "/api/aprobaciones"
	if status = strings.TrimSpace(status); status != "" {
		path += "?estado=" + url.QueryEscape(status)
	}
	var out []dto.ApprovalResponse
	if _, err := c.do(ctx, call{method: fiber.MethodGet, path: path, out: &out, auth: true}); err != nil {
		return nil, err
	}
	list := make([]*entity.Approval, 0, len(out))
	for _, a := range out {
		list = append(list, approvalFromDTO(a))
	}
	return list, nil
}

func (c *Client) decide(ctx context.Context, id int64, action, observations string) error {
	_, err := c.do(ctx, call{
		method: fiber.MethodPut,
		path:   fmt.Sprintf("/api/aprobaciones/%d/%s", id, action),
		body:   dto.DecisionRequest{Observations: observations},
		auth:   true,
	})
	return err
}

// Approvals adapta el cliente a repository.ApprovalRepository.
func (c *Client) Approvals() repository.ApprovalRepository { return approvals{c} }

type approvals struct{ c *Client }

func (a approvals) List(ctx context.Context, status string) ([]*entity.Approval, error) {
	return a.c.listApprovals(ctx, status)
}

func (a approvals) Approve(ctx context.Context, id int64, observations string) error {
	return a.c.decide(ctx, id, "aprobar", observations)
}

func (a approvals) Reject(ctx context.Context, id int64, observations string) error {
	return a.c.decide(ctx, id, "rechazar", observations)
}

// Progress avance de la toma física.
func (c *Client) Progress(ctx context.Context) (*entity.InventoryProgress, error) {
	var out dto.InventoryProgressResponse
	if _, err := c.do(ctx, call{method: fiber.MethodGet, path: "/api/inventario/progreso", out: &out, auth: true}); err != nil {
		return nil, err
	}
	return progressFromDTO(out), nil
}

// Finalize cierra la toma física en el servidor.
func (c *Client) Finalize(ctx context.Context) error {
	_, err := c.do(ctx, call{method: fiber.MethodPost, path: "/api/inventario/finalizar", auth: true})
	return err
}

// Messages adapta el cliente a repository.MessageRepository.
func (c *Client) Messages() repository.MessageRepository { return messages{c} }

type messages struct{ c *Client }

func (m messages) List(ctx context.Context) ([]*entity.Message, error) {
	var out []dto.MessageResponse
	if _, err := m.c.do(ctx, call{method: fiber.MethodGet, path: "/api/mensajes", out: &out, auth: true}); err != nil {
		return nil, err
	}
	list := make([]*entity.Message, 0, len(out))
	for _, msg := range out {
		list = append(list, messageFromDTO(msg))
	}
	return list, nil
}

// Users adapta el cliente a repository.UserRepository.
func (c *Client) Users() repository.UserRepository { return users{c} }

type users struct{ c *Client }

func (u users) List(ctx context.Context) ([]*entity.User, error) {
	var out []dto.UserResponse
	if _, err := u.c.do(ctx, call{method: fiber.MethodGet, path: "/api/usuarios", out: &out, auth: true}); err != nil {
		return nil, err
	}
	list := make([]*entity.User, 0, len(out))
	for _, usr := range out {
		list = append(list, userFromDTO(usr))
	}
	return list, nil
}

func (u users) Create(ctx context.Context, in repository.NewUser) (*entity.User, error) {
	var out dto.UserResponse
	_, err := u.c.do(ctx, call{
		method: fiber.MethodPost,
		path:   "/api/usuarios",
		body:   dto.CreateUserRequest{Name: in.Name, Email: in.Email, Password: in.Password, Role: in.Role},
		out:    &out,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return userFromDTO(out), nil
}

// Products adapta el cliente a repository.ProductRepository.
func (c *Client) Products() repository.ProductRepository { return products{c} }

type products struct{ c *Client }

func (p products) List(ctx context.Context) ([]*entity.Product, error) {
	var out []dto.ProductResponse
	if _, err := p.c.do(ctx, call{method: fiber.MethodGet, path: "/api/productos", out: &out, auth: true}); err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(out))
	for _, prod := range out {
		list = append(list, productFromDTO(prod))
	}
	return list, nil
}

// Locations adapta el cliente a repository.LocationRepository.
func (c *Client) Locations() repository.LocationRepository { return locations{c} }

type locations struct{ c *Client }

func (l locations) List(ctx context.Context) ([]*entity.Location, error) {
	var out []dto.LocationResponse
	if _, err := l.c.do(ctx, call{method: fiber.MethodGet, path: "/api/ubicaciones", out: &out, auth: true}); err != nil {
		return nil, err
	}
	list := make([]*entity.Location, 0, len(out))
	for _, loc := range out {
		list = append(list, locationFromDTO(loc))
	}
	return list, nil
}

// Deliver envía un registro pendiente con su referencia de cliente como clave de idempotencia.
func (c *Client) Deliver(ctx context.Context, rec entity.PendingRecord) (*delivery.Receipt, error) {
	path, body, ok := deliveryRequest(rec)
	if !ok {
		return nil, &domain.RejectionError{Status: fiber.StatusBadRequest, Message: fmt.Sprintf("tipo no soportado %T", rec)}
	}
	var out dto.CreatedResponse
	res, err := c.do(ctx, call{
		method:  fiber.MethodPost,
		path:    path,
		body:    body,
		out:     &out,
		auth:    true,
		headers: map[string]string{HeaderIdempotencyKey: rec.Meta().ClientRef},
	})
	if err != nil {
		return nil, err
	}
	if out.ID <= 0 && !res.replayed {
		return nil, fmt.Errorf("POST %s: %w", path, &TransientError{Status: res.status, Message: "respuesta sin id del servidor"})
	}
	return &delivery.Receipt{ServerID: out.ID, Duplicate: res.replayed}, nil
}
