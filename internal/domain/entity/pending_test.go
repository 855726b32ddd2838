package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de ubicaciones por tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestPendingMovement_ReubicacionSinDestinoEsInvalida(t *testing.T) {
	req := &entity.PendingMovementRequest{
		Type: entity.MovementReubicacion, SKU: "AP30001", Quantity: 2, Reason: "Reorden",
		SourceLocationID: ptr(4),
	}
	err := req.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "idUbicacionDestino", verr.Field)
}

func TestPendingMovement_ReubicacionSinOrigenEsInvalida(t *testing.T) {
	req := &entity.PendingMovementRequest{
		Type: entity.MovementReubicacion, SKU: "AP30001", Quantity: 2, Reason: "Reorden",
		DestinationLocationID: ptr(4),
	}
	assert.ErrorIs(t, req.Validate(), domain.ErrInvalidInput)
}

func TestPendingMovement_IngresoSoloDestino(t *testing.T) {
	req := &entity.PendingMovementRequest{
		Type: entity.MovementIngreso, SKU: " ap30001 ", Quantity: 10, Reason: " Compra ",
		SourceLocationID: ptr(1), DestinationLocationID: ptr(5),
	}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Nil(t, req.SourceLocationID, "INGRESO descarta el origen")
	assert.Equal(t, "AP30001", req.SKU)
	assert.Equal(t, "Compra", req.Reason)

	sinDestino := &entity.PendingMovementRequest{Type: entity.MovementIngreso, SKU: "X", Quantity: 1, Reason: "r"}
	assert.ErrorIs(t, sinDestino.Validate(), domain.ErrInvalidInput)
}

func TestPendingMovement_EgresoSoloOrigen(t *testing.T) {
	req := &entity.PendingMovementRequest{
		Type: entity.MovementEgreso, SKU: "AP30001", Quantity: 1, Reason: "Venta",
		SourceLocationID: ptr(2), DestinationLocationID: ptr(5),
	}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Nil(t, req.DestinationLocationID)
}

func TestPendingMovement_CamposRequeridos(t *testing.T) {
	base := func() *entity.PendingMovementRequest {
		return &entity.PendingMovementRequest{Type: entity.MovementIngreso, SKU: "AP30001", Quantity: 1, Reason: "x", DestinationLocationID: ptr(1)}
	}
	cases := map[string]func(r *entity.PendingMovementRequest){
		"tipoMovimiento": func(r *entity.PendingMovementRequest) { r.Type = "TRASPASO" },
		"sku":            func(r *entity.PendingMovementRequest) { r.SKU = "  " },
		"cantidad":       func(r *entity.PendingMovementRequest) { r.Quantity = 0 },
		"motivo":         func(r *entity.PendingMovementRequest) { r.Reason = "" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			r := base()
			mutate(r)
			var verr *domain.ValidationError
			require.ErrorAs(t, r.Validate(), &verr)
			assert.Equal(t, field, verr.Field)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Otros tipos
// ──────────────────────────────────────────────────────────────────────────────

func TestPendingInventoryCount_CeroEsValido(t *testing.T) {
	assert.NoError(t, (&entity.PendingInventoryCount{SKU: "A", LocationID: 1, PhysicalQuantity: 0}).Validate())
	assert.Error(t, (&entity.PendingInventoryCount{SKU: "A", LocationID: 0, PhysicalQuantity: 1}).Validate())
}

func TestPendingMessage_Validacion(t *testing.T) {
	assert.NoError(t, (&entity.PendingMessage{Title: "t", Body: "b"}).Validate())
	assert.Error(t, (&entity.PendingMessage{Title: "", Body: "b"}).Validate())
	assert.Error(t, (&entity.PendingMessage{Title: "t", Body: " "}).Validate())
	assert.Error(t, (&entity.PendingMessage{RecipientID: ptr(0), Title: "t", Body: "b"}).Validate())
}

func TestPendingKind_Valid(t *testing.T) {
	for _, k := range entity.PendingKinds {
		assert.True(t, k.Valid())
	}
	assert.False(t, entity.PendingKind("OTRO").Valid())
}
