// Package memory implementa los puertos del servidor WMS en memoria.
// Se usa en modo demo (sin REMOTE_BASE_URL) y en los tests de los view-models.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
	pkgjwt "github.com/jhoicas/wms-sync-agent/pkg/jwt"
)

const (
	issuer       = "wms-demo"
	tokenMinutes = 8 * 60
	codeInvalid  = "VALIDACION"
	codeUnknown  = "NO_EXISTE"
	codeCapacity = "CAPACIDAD_EXCEDIDA"
)

// TokenSource entrega el token con que el dispositivo llama al servidor.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type account struct {
	user entity.User
	hash []byte
}

// Server servidor WMS en memoria. Es seguro para uso concurrente.
type Server struct {
	secret string
	tokens TokenSource
	now    func() time.Time

	mu         sync.Mutex
	offline    bool
	nextID     int64
	accounts   []*account
	approvals  []*entity.Approval
	messages   []*entity.Message
	products   []*entity.Product
	locations  []*entity.Location
	stock      map[entity.StockKey]int
	counts     map[entity.StockKey]int
	seen       map[string]int64 // referencia de cliente → ID en el servidor
	finalized  bool
	deliveries int
}

var (
	_ repository.AuthGateway         = (*Server)(nil)
	_ repository.InventoryRepository = (*Server)(nil)
	_ delivery.Gateway               = (*Server)(nil)
)

// NewServer construye el servidor vacío. secret firma los tokens emitidos en Login.
func NewServer(secret string, tokens TokenSource) *Server {
	return &Server{
		secret: secret,
		tokens: tokens,
		now:    time.Now,
		nextID: 1000,
		stock:  make(map[entity.StockKey]int),
		counts: make(map[entity.StockKey]int),
		seen:   make(map[string]int64),
	}
}

// SetOffline simula pérdida de conectividad: toda llamada devuelve domain.ErrOffline.
func (s *Server) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

// Deliveries cantidad de registros aceptados vía Deliver (sin contar duplicados).
func (s *Server) Deliveries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveries
}

// AddUser registra una cuenta con su contraseña en claro.
func (s *Server) AddUser(u entity.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.accounts = append(s.accounts, &account{user: u, hash: hash})
	return nil
}

// AddProduct agrega un producto al catálogo.
func (s *Server) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, &p)
}

// AddLocation agrega una ubicación.
func (s *Server) AddLocation(l entity.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == 0 {
		l.ID = s.id()
	}
	s.locations = append(s.locations, &l)
}

// SetStock fija la cantidad del sistema de un SKU en una ubicación.
func (s *Server) SetStock(sku string, locationID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[entity.StockKey{SKU: sku, LocationID: locationID}] = qty
}

// AddApproval agrega una solicitud ya existente en el servidor.
func (s *Server) AddApproval(a entity.Approval) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.id()
	}
	if a.Status == "" {
		a.Status = entity.ApprovalPending
	}
	s.approvals = append(s.approvals, &a)
	return a.ID
}

// AddMessage agrega un mensaje ya entregado.
func (s *Server) AddMessage(m entity.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == 0 {
		m.ID = s.id()
	}
	s.messages = append(s.messages, &m)
}

// id asigna el siguiente ID; requiere s.mu.
func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

// caller valida el token de la llamada como lo haría el servidor real. Requiere s.mu.
func (s *Server) caller(ctx context.Context) (*entity.User, error) {
	if s.offline {
		return nil, domain.ErrOffline
	}
	if s.tokens == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := pkgjwt.Parse(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	for _, a := range s.accounts {
		if a.user.ID == claims.UserID() && a.user.Active {
			u := a.user
			return &u, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// Login valida credenciales contra las cuentas sembradas y emite un JWT.
func (s *Server) Login(_ context.Context, email, password string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline {
		return nil, domain.ErrOffline
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range s.accounts {
		if strings.ToLower(a.user.Email) != email {
			continue
		}
		if !a.user.Active || bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
			break
		}
		token, err := pkgjwt.Generate(s.secret, a.user.ID, a.user.Email, a.user.Role, issuer, tokenMinutes)
		if err != nil {
			return nil, err
		}
		return &entity.Session{
			Token:     token,
			TokenType: "Bearer",
			UserID:    a.user.ID,
			Name:      a.user.Name,
			Email:     a.user.Email,
			Role:      a.user.Role,
			ExpiresAt: s.now().Add(tokenMinutes * time.Minute),
		}, nil
	}
	return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
}

func rejection(status int, code, msg string) error {
	return &domain.RejectionError{Status: status, Code: code, Message: msg}
}

func (s *Server) productBySKU(sku string) *entity.Product {
	for _, p := range s.products {
		if strings.EqualFold(p.SKU, sku) {
			return p
		}
	}
	return nil
}

func (s *Server) locationByID(id int64) *entity.Location {
	for _, l := range s.locations {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *Server) userByID(id int64) *entity.User {
	for _, a := range s.accounts {
		if a.user.ID == id {
			return &a.user
		}
	}
	return nil
}
