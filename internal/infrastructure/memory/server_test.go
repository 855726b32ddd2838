package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/memory"
)

type tokenHolder struct{ token string }

func (h *tokenHolder) AccessToken(context.Context) (string, error) {
	if h.token == "" {
		return "", domain.ErrUnauthorized
	}
	return h.token, nil
}

func newDemo(t *testing.T) (*memory.Server, *tokenHolder) {
	t.Helper()
	h := &tokenHolder{}
	s, err := memory.NewDemoServer("secreto-demo", h)
	require.NoError(t, err)
	return s, h
}

func login(t *testing.T, s *memory.Server, h *tokenHolder, email string) *entity.Session {
	t.Helper()
	sess, err := s.Login(context.Background(), email, memory.DemoPassword)
	require.NoError(t, err)
	h.token = sess.Token
	return sess
}

func TestLogin_CuentasDeEjemplo(t *testing.T) {
	s, h := newDemo(t)
	sess := login(t, s, h, "Supervisor@WMS.co")
	assert.Equal(t, entity.RoleSupervisor, sess.Role)
	assert.False(t, sess.ExpiresAt.IsZero())

	_, err := s.Login(context.Background(), "supervisor@wms.co", "otra-clave")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = s.Login(context.Background(), "apena@wms.co", memory.DemoPassword)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "cuenta inactiva")
}

func TestCaller_SinTokenNoAutorizado(t *testing.T) {
	s, _ := newDemo(t)
	_, err := s.Products().List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDeliver_IdempotentePorReferencia(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")
	ctx := context.Background()

	dest := int64(1)
	rec := &entity.PendingMovementRequest{
		PendingMeta: entity.PendingMeta{ID: 1, ClientRef: "ref-abc"},
		Type:        entity.MovementIngreso, SKU: "AP30001", Quantity: 10, Reason: "Compra",
		DestinationLocationID: &dest,
	}
	first, err := s.Deliver(ctx, rec)
	require.NoError(t, err)
	second, err := s.Deliver(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, first.ServerID, second.ServerID)
	assert.True(t, second.Duplicate)
	assert.Equal(t, 1, s.Deliveries())

	list, err := s.Approvals().List(ctx, entity.ApprovalPending)
	require.NoError(t, err)
	var found int
	for _, a := range list {
		if a.ClientRef == "ref-abc" {
			found++
			assert.Equal(t, "Diana Torres", a.RequesterName)
		}
	}
	assert.Equal(t, 1, found)
}

func TestDeliver_SKUDesconocidoEsRechazo(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")

	_, err := s.Deliver(context.Background(), &entity.PendingInventoryCount{
		PendingMeta: entity.PendingMeta{ClientRef: "r1"}, SKU: "ZZ999", LocationID: 1, PhysicalQuantity: 1,
	})
	var rej *domain.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, 422, rej.Status)
}

func TestDeliver_CapacidadExcedida(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")

	_, err := s.Deliver(context.Background(), &entity.PendingLocationAssignment{
		PendingMeta: entity.PendingMeta{ClientRef: "r2"}, SKU: "AP30030", LocationID: 6, Quantity: 41,
	})
	assert.True(t, domain.IsRejection(err))
}

func TestDeliver_SinConexion(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")
	s.SetOffline(true)

	_, err := s.Deliver(context.Background(), &entity.PendingMessage{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrOffline)
}

func TestApprovals_MasRecientesPrimero(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "supervisor@wms.co")

	list, err := s.Approvals().List(context.Background(), "")
	require.NoError(t, err)
	ids := make([]int64, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{501, 502, 503, 504}, ids)

	pending, err := s.Approvals().List(context.Background(), entity.ApprovalPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.True(t, pending[0].CreatedAt.After(pending[1].CreatedAt))
}

func TestApprove_RolYDecisionTerminal(t *testing.T) {
	s, h := newDemo(t)
	ctx := context.Background()

	login(t, s, h, "operador@wms.co")
	assert.ErrorIs(t, s.Approvals().Approve(ctx, 501, ""), domain.ErrForbidden)

	login(t, s, h, "supervisor@wms.co")
	require.NoError(t, s.Approvals().Approve(ctx, 501, ""))
	assert.ErrorIs(t, s.Approvals().Reject(ctx, 501, "tarde"), domain.ErrConflict)
	assert.ErrorIs(t, s.Approvals().Reject(ctx, 502, ""), domain.ErrInvalidInput, "rechazar exige observación")
	assert.ErrorIs(t, s.Approvals().Approve(ctx, 9999, ""), domain.ErrNotFound)

	stock := s.SystemStock()
	assert.Equal(t, 22, stock[entity.StockKey{SKU: "AP30001", LocationID: 1}], "el ingreso aprobado suma al destino")
}

func TestProgress_ConConteosRecibidos(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")
	ctx := context.Background()

	for i, c := range []*entity.PendingInventoryCount{
		{SKU: "AP30001", LocationID: 1, PhysicalQuantity: 11},
		{SKU: "AP30002", LocationID: 2, PhysicalQuantity: 8},
	} {
		c.ClientRef = string(rune('a' + i))
		_, err := s.Deliver(ctx, c)
		require.NoError(t, err)
	}

	p, err := s.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, p.TotalLocations)
	assert.Equal(t, 2, p.CountedLocations)
	assert.Equal(t, 1, p.TotalShortages)
	assert.Equal(t, "28.57", p.CompletedPct.StringFixed(2))

	login(t, s, h, "supervisor@wms.co")
	require.NoError(t, s.Finalize(ctx))
	assert.ErrorIs(t, s.Finalize(ctx), domain.ErrConflict)
}

func TestMessages_DifusionYDirectos(t *testing.T) {
	s, h := newDemo(t)
	login(t, s, h, "operador@wms.co")
	list, err := s.Messages().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2, "difusión + directo al operador")

	login(t, s, h, "admin@wms.co")
	list, err = s.Messages().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1, "el administrador solo ve la difusión que envió")
}

func TestUsers_CrearSoloAdmin(t *testing.T) {
	s, h := newDemo(t)
	ctx := context.Background()
	in := struct{ name, email string }{"Nuevo", "nuevo@wms.co"}

	login(t, s, h, "supervisor@wms.co")
	_, err := s.Users().Create(ctx, newUser(in.name, in.email))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	login(t, s, h, "admin@wms.co")
	u, err := s.Users().Create(ctx, newUser(in.name, in.email))
	require.NoError(t, err)
	assert.True(t, u.Active)
	_, err = s.Users().Create(ctx, newUser(in.name, "NUEVO@wms.co"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.Login(ctx, "nuevo@wms.co", "clave-segura")
	require.NoError(t, err)
}
