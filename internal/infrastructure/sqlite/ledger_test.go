package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/sqlite"
)

func TestRecordFailure_IncrementaIntentos(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, ingreso("AP30001", 1))
	require.NoError(t, err)

	att, err := ledger.Attempt(ctx, entity.PendingKindMovement, id)
	require.NoError(t, err)
	assert.Nil(t, att, "sin fallas no hay bitácora")

	next := time.Now().Add(time.Minute).Truncate(time.Millisecond)
	_, err = ledger.RecordFailure(ctx, entity.PendingKindMovement, id, "503", next)
	require.NoError(t, err)
	att, err = ledger.RecordFailure(ctx, entity.PendingKindMovement, id, "timeout", next)
	require.NoError(t, err)
	assert.Equal(t, 2, att.Attempts)
	assert.Equal(t, "timeout", att.LastError)
	assert.True(t, next.Equal(att.NextAttemptAt))

	// Retirar limpia la bitácora.
	require.NoError(t, store.Retire(ctx, entity.PendingKindMovement, id))
	att, err = ledger.Attempt(ctx, entity.PendingKindMovement, id)
	require.NoError(t, err)
	assert.Nil(t, att)
}

func TestResetAttempts(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, ingreso("AP30001", 1))
	require.NoError(t, err)
	_, err = ledger.RecordFailure(ctx, entity.PendingKindMovement, id, "503", time.Now().Add(time.Hour))
	require.NoError(t, err)

	n, err := ledger.ResetAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	list, err := ledger.ListAttempts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReject_RetiraYConservaPayload(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	rec := &entity.PendingLocationAssignment{SKU: "AP30009", LocationID: 4, Quantity: 3}
	_, err := store.Enqueue(ctx, rec)
	require.NoError(t, err)

	rr, err := ledger.Reject(ctx, rec, &domain.RejectionError{Status: 422, Code: "SKU_DESCONOCIDO", Message: "SKU no existe"})
	require.NoError(t, err)
	assert.Positive(t, rr.ID)
	assert.Equal(t, entity.PendingKindLocationAssignment, rr.Kind)
	assert.Equal(t, rec.ClientRef, rr.ClientRef)
	assert.Equal(t, 422, rr.Status)

	pending, err := store.ListPending(ctx, entity.PendingKindLocationAssignment)
	require.NoError(t, err)
	assert.Empty(t, pending, "el rechazado sale de la cola")

	rejected, err := ledger.ListRejected(ctx)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "SKU no existe", rejected[0].Message)
}

func TestRequeue_NuevoIDYNuevaReferencia(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	rec := ingreso("AP30001", 4)
	oldID, err := store.Enqueue(ctx, rec)
	require.NoError(t, err)
	oldRef := rec.ClientRef
	rr, err := ledger.Reject(ctx, rec, &domain.RejectionError{Status: 400, Message: "stock insuficiente"})
	require.NoError(t, err)

	again, err := ledger.Requeue(ctx, rr.ID, nil)
	require.NoError(t, err)
	meta := again.Meta()
	assert.Greater(t, meta.ID, oldID)
	assert.NotEqual(t, oldRef, meta.ClientRef)

	list, err := store.ListPending(ctx, entity.PendingKindMovement)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0].(*entity.PendingMovementRequest)
	assert.Equal(t, "AP30001", got.SKU)
	assert.Equal(t, 4, got.Quantity)

	rejected, err := ledger.ListRejected(ctx)
	require.NoError(t, err)
	assert.Empty(t, rejected)

	_, err = ledger.Requeue(ctx, rr.ID, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequeue_ConCorreccionDelUsuario(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	rec := ingreso("AP30001", 400)
	_, err := store.Enqueue(ctx, rec)
	require.NoError(t, err)
	rr, err := ledger.Reject(ctx, rec, &domain.RejectionError{Status: 422, Message: "supera la capacidad"})
	require.NoError(t, err)

	got, original, err := ledger.GetRejected(ctx, rr.ID)
	require.NoError(t, err)
	assert.Equal(t, "supera la capacidad", got.Message)
	mv := original.(*entity.PendingMovementRequest)
	assert.Equal(t, 400, mv.Quantity)

	// Tipo distinto: no se reencola y el rechazo se conserva.
	_, err = ledger.Requeue(ctx, rr.ID, &entity.PendingMessage{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Corrección inválida: tampoco escribe.
	bad := *mv
	bad.Quantity = 0
	_, err = ledger.Requeue(ctx, rr.ID, &bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	rejected, err := ledger.ListRejected(ctx)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	fixed := *mv
	fixed.Quantity = 40
	fixed.SourceLocationID = ptr(9)
	again, err := ledger.Requeue(ctx, rr.ID, &fixed)
	require.NoError(t, err)

	stored, err := store.Get(ctx, entity.PendingKindMovement, again.Meta().ID)
	require.NoError(t, err)
	out := stored.(*entity.PendingMovementRequest)
	assert.Equal(t, 40, out.Quantity)
	assert.Nil(t, out.SourceLocationID, "INGRESO no guarda ubicación de origen")
	assert.NotEqual(t, rec.ClientRef, out.ClientRef)

	_, _, err = ledger.GetRejected(ctx, rr.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDiscardRejected(t *testing.T) {
	store, db := newStore(t)
	ledger := sqlite.NewDeliveryLedger(db, store)
	ctx := context.Background()

	rec := &entity.PendingMessage{Title: "x", Body: "y"}
	_, err := store.Enqueue(ctx, rec)
	require.NoError(t, err)
	rr, err := ledger.Reject(ctx, rec, &domain.RejectionError{Status: 400, Message: "destinatario inválido"})
	require.NoError(t, err)

	require.NoError(t, ledger.DiscardRejected(ctx, rr.ID))
	require.NoError(t, ledger.DiscardRejected(ctx, rr.ID))
	rejected, err := ledger.ListRejected(ctx)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}
