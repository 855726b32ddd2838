package memory

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

var (
	_ repository.ApprovalRepository = approvals{}
	_ repository.MessageRepository  = messages{}
	_ repository.UserRepository     = users{}
	_ repository.ProductRepository  = products{}
	_ repository.LocationRepository = locations{}
)

// ── Aprobaciones ─────────────────────────────────────────────────────────────

// Approvals expone las solicitudes como repository.ApprovalRepository.
func (s *Server) Approvals() repository.ApprovalRepository { return approvals{s} }

type approvals struct{ s *Server }

func (r approvals) List(ctx context.Context, status string) ([]*entity.Approval, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	out := make([]*entity.Approval, 0, len(s.approvals))
	for _, a := range s.approvals {
		if status != "" && a.Status != status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	// Más recientes primero.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r approvals) Approve(ctx context.Context, id int64, observations string) error {
	return r.decide(ctx, id, entity.ApprovalApproved, observations)
}

func (r approvals) Reject(ctx context.Context, id int64, observations string) error {
	return r.decide(ctx, id, entity.ApprovalRejected, observations)
}

func (r approvals) decide(ctx context.Context, id int64, status, observations string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.caller(ctx)
	if err != nil {
		return err
	}
	if u.Role != entity.RoleAdmin && u.Role != entity.RoleSupervisor {
		return domain.ErrForbidden
	}
	d, err := entity.NewApprovalDecision(status, observations, u.ID)
	if err != nil {
		return err
	}
	for _, a := range s.approvals {
		if a.ID != id {
			continue
		}
		if err := d.Apply(a, s.now()); err != nil {
			return err
		}
		if a.Status == entity.ApprovalApproved {
			s.applyMovement(a)
		}
		return nil
	}
	return domain.ErrNotFound
}

// applyMovement refleja en el stock un movimiento aprobado. Requiere s.mu.
func (s *Server) applyMovement(a *entity.Approval) {
	if a.SourceLocationID != nil {
		k := entity.StockKey{SKU: a.SKU, LocationID: *a.SourceLocationID}
		s.stock[k] -= a.Quantity
		if s.stock[k] < 0 {
			s.stock[k] = 0
		}
	}
	if a.DestinationLocationID != nil {
		s.stock[entity.StockKey{SKU: a.SKU, LocationID: *a.DestinationLocationID}] += a.Quantity
	}
}

// ── Inventario ───────────────────────────────────────────────────────────────

// Progress calcula el avance de la toma con los conteos recibidos.
func (s *Server) Progress(ctx context.Context) (*entity.InventoryProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	total := 0
	for _, l := range s.locations {
		if l.Active {
			total++
		}
	}
	counted := make(map[int64]struct{})
	counts := make([]*entity.PendingInventoryCount, 0, len(s.counts))
	for k, qty := range s.counts {
		counted[k.LocationID] = struct{}{}
		counts = append(counts, &entity.PendingInventoryCount{SKU: k.SKU, LocationID: k.LocationID, PhysicalQuantity: qty})
	}
	p := entity.ComputeProgress(total, len(counted), entity.ComputeDifferences(s.stock, counts))
	return &p, nil
}

// Finalize cierra la toma. Una toma ya cerrada es conflicto.
func (s *Server) Finalize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.caller(ctx)
	if err != nil {
		return err
	}
	if u.Role == entity.RoleOperator {
		return domain.ErrForbidden
	}
	if s.finalized {
		return fmt.Errorf("%w: la toma de inventario ya fue finalizada", domain.ErrConflict)
	}
	s.finalized = true
	for k, qty := range s.counts {
		s.stock[k] = qty
	}
	return nil
}

// SystemStock copia del stock del sistema.
func (s *Server) SystemStock() map[entity.StockKey]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[entity.StockKey]int, len(s.stock))
	for k, v := range s.stock {
		out[k] = v
	}
	return out
}

// ── Mensajes ─────────────────────────────────────────────────────────────────

// Messages expone la bandeja como repository.MessageRepository.
func (s *Server) Messages() repository.MessageRepository { return messages{s} }

type messages struct{ s *Server }

// List devuelve lo enviado o recibido por el usuario y las difusiones, el más reciente primero.
func (r messages) List(ctx context.Context) ([]*entity.Message, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.RecipientID == nil || *m.RecipientID == u.ID || m.SenderID == u.ID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// Users expone las cuentas como repository.UserRepository.
func (s *Server) Users() repository.UserRepository { return users{s} }

type users struct{ s *Server }

func (r users) List(ctx context.Context) ([]*entity.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		u := a.user
		out = append(out, &u)
	}
	return out, nil
}

func (r users) Create(ctx context.Context, in repository.NewUser) (*entity.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return nil, fmt.Errorf("%w: el email ya está registrado", domain.ErrConflict)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := entity.User{ID: s.id(), Name: in.Name, Email: email, Role: in.Role, Active: true, CreatedAt: s.now()}
	s.accounts = append(s.accounts, &account{user: u, hash: hash})
	return &u, nil
}

// ── Catálogo y ubicaciones ───────────────────────────────────────────────────

// Products expone el catálogo como repository.ProductRepository.
func (s *Server) Products() repository.ProductRepository { return products{s} }

type products struct{ s *Server }

func (r products) List(ctx context.Context) ([]*entity.Product, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Locations expone las ubicaciones como repository.LocationRepository.
func (s *Server) Locations() repository.LocationRepository { return locations{s} }

type locations struct{ s *Server }

func (r locations) List(ctx context.Context) ([]*entity.Location, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	out := make([]*entity.Location, 0, len(s.locations))
	for _, l := range s.locations {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// ── Entrega de registros pendientes ──────────────────────────────────────────

// Deliver acepta un registro pendiente. Una referencia de cliente ya vista devuelve el mismo ID.
func (s *Server) Deliver(ctx context.Context, rec entity.PendingRecord) (*delivery.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	ref := rec.Meta().ClientRef
	if id, ok := s.seen[ref]; ok && ref != "" {
		return &delivery.Receipt{ServerID: id, Duplicate: true}, nil
	}
	if err := rec.Validate(); err != nil {
		return nil, rejection(http.StatusBadRequest, codeInvalid, err.Error())
	}

	var id int64
	switch r := rec.(type) {
	case *entity.PendingMovementRequest:
		id, err = s.acceptMovement(u, r)
	case *entity.PendingInventoryCount:
		id, err = s.acceptCount(r)
	case *entity.PendingMessage:
		id, err = s.acceptMessage(u, r)
	case *entity.PendingLocationAssignment:
		id, err = s.acceptAssignment(r)
	default:
		err = rejection(http.StatusBadRequest, codeInvalid, fmt.Sprintf("tipo no soportado %T", rec))
	}
	if err != nil {
		return nil, err
	}
	if ref != "" {
		s.seen[ref] = id
	}
	s.deliveries++
	return &delivery.Receipt{ServerID: id}, nil
}

func (s *Server) checkSKU(sku string) (*entity.Product, error) {
	p := s.productBySKU(sku)
	if p == nil {
		return nil, rejection(http.StatusUnprocessableEntity, codeUnknown, fmt.Sprintf("el SKU %s no existe", sku))
	}
	return p, nil
}

func (s *Server) checkLocation(id *int64) error {
	if id == nil {
		return nil
	}
	if s.locationByID(*id) == nil {
		return rejection(http.StatusUnprocessableEntity, codeUnknown, fmt.Sprintf("la ubicación %d no existe", *id))
	}
	return nil
}

func (s *Server) acceptMovement(u *entity.User, r *entity.PendingMovementRequest) (int64, error) {
	p, err := s.checkSKU(r.SKU)
	if err != nil {
		return 0, err
	}
	if err := s.checkLocation(r.SourceLocationID); err != nil {
		return 0, err
	}
	if err := s.checkLocation(r.DestinationLocationID); err != nil {
		return 0, err
	}
	a := &entity.Approval{
		ID:                    s.id(),
		Type:                  r.Type,
		SKU:                   p.SKU,
		ProductName:           p.Name,
		Quantity:              r.Quantity,
		Reason:                r.Reason,
		SourceLocationID:      r.SourceLocationID,
		DestinationLocationID: r.DestinationLocationID,
		Status:                entity.ApprovalPending,
		RequesterID:           u.ID,
		RequesterName:         u.Name,
		CreatedAt:             r.CreatedAt,
		ClientRef:             r.ClientRef,
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	s.approvals = append(s.approvals, a)
	return a.ID, nil
}

func (s *Server) acceptCount(r *entity.PendingInventoryCount) (int64, error) {
	if s.finalized {
		return 0, rejection(http.StatusConflict, "INVENTARIO_FINALIZADO", "la toma de inventario ya fue finalizada")
	}
	if _, err := s.checkSKU(r.SKU); err != nil {
		return 0, err
	}
	loc := r.LocationID
	if err := s.checkLocation(&loc); err != nil {
		return 0, err
	}
	s.counts[entity.StockKey{SKU: strings.ToUpper(r.SKU), LocationID: r.LocationID}] = r.PhysicalQuantity
	return s.id(), nil
}

func (s *Server) acceptMessage(u *entity.User, r *entity.PendingMessage) (int64, error) {
	if r.RecipientID != nil && s.userByID(*r.RecipientID) == nil {
		return 0, rejection(http.StatusUnprocessableEntity, codeUnknown, fmt.Sprintf("el destinatario %d no existe", *r.RecipientID))
	}
	m := &entity.Message{
		ID:          s.id(),
		SenderID:    u.ID,
		SenderName:  u.Name,
		RecipientID: r.RecipientID,
		Title:       r.Title,
		Body:        r.Body,
		Important:   r.Important,
		SentAt:      r.CreatedAt,
		ClientRef:   r.ClientRef,
	}
	if m.SentAt.IsZero() {
		m.SentAt = s.now()
	}
	s.messages = append(s.messages, m)
	return m.ID, nil
}

func (s *Server) acceptAssignment(r *entity.PendingLocationAssignment) (int64, error) {
	p, err := s.checkSKU(r.SKU)
	if err != nil {
		return 0, err
	}
	loc := s.locationByID(r.LocationID)
	if loc == nil {
		return 0, rejection(http.StatusUnprocessableEntity, codeUnknown, fmt.Sprintf("la ubicación %d no existe", r.LocationID))
	}
	if r.Quantity > loc.Available() {
		return 0, rejection(http.StatusUnprocessableEntity, codeCapacity,
			fmt.Sprintf("la ubicación %s solo tiene %d espacios libres", loc.Code(), loc.Available()))
	}
	loc.Occupied += r.Quantity
	s.stock[entity.StockKey{SKU: p.SKU, LocationID: loc.ID}] += r.Quantity
	return s.id(), nil
}
