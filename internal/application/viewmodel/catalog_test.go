package viewmodel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestLocations_FiltroPorZonaOrdenadoPorCodigo(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewLocationViewModel(context.Background(), e.server.Locations(), e.store, e.sessions, e.trigger)
	defer vm.Close()

	st := vm.Load(context.Background(), "a")
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	var codes []string
	for _, l := range st.Data.Items {
		codes = append(codes, l.Code())
	}
	assert.Equal(t, []string{"A-01-01-1", "A-01-02-1", "A-03-02-1"}, codes)

	all := vm.Load(context.Background(), "")
	assert.Len(t, all.Data.Items, 7)
}

func TestLocations_SinConexionUsaUltimoListado(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewLocationViewModel(context.Background(), e.server.Locations(), e.store, e.sessions, e.trigger)
	defer vm.Close()

	e.server.SetOffline(true)
	st := vm.Load(context.Background(), "")
	assert.ErrorIs(t, st.Err, domain.ErrOffline, "sin listado previo no hay qué mostrar")

	e.server.SetOffline(false)
	require.Equal(t, viewmodel.PhaseSuccess, vm.Load(context.Background(), "").Phase)
	e.server.SetOffline(true)
	st = vm.Load(context.Background(), "C")
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.True(t, st.Data.Offline)
	assert.Len(t, st.Data.Items, 2)
}

func TestAssignProduct_RechazoPorCapacidad(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewLocationViewModel(context.Background(), e.server.Locations(), e.store, e.sessions, e.trigger)
	defer vm.Close()

	st := vm.AssignProduct(context.Background(), viewmodel.AssignForm{SKU: "AP30020", LocationID: 3, Quantity: 25})
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, "la capacidad la valida el servidor")

	report := e.drain(t)
	require.Len(t, report.Rejections, 1)
	assert.Equal(t, "CAPACIDAD_EXCEDIDA", report.Rejections[0].Code)
	assert.Zero(t, e.pending(t, entity.PendingKindLocationAssignment))
}

func TestAssignProduct_CantidadInvalida(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewLocationViewModel(context.Background(), e.server.Locations(), e.store, e.sessions, e.trigger)
	defer vm.Close()

	st := vm.AssignProduct(context.Background(), viewmodel.AssignForm{SKU: "AP30020", LocationID: 3})
	assert.ErrorIs(t, st.Err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_BusquedaSinTildes(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewProductViewModel(context.Background(), e.server.Products(), e.sessions)
	defer vm.Close()

	st := vm.Load(context.Background(), "camara", "")
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	assert.Len(t, st.Data.Items, 3)

	st = vm.Load(context.Background(), "canon", "camaras")
	require.Len(t, st.Data.Items, 1)
	assert.Equal(t, "AP30001", st.Data.Items[0].SKU)

	st = vm.Load(context.Background(), "", "Iluminacion")
	require.Len(t, st.Data.Items, 1)
	assert.Equal(t, "Godox", st.Data.Items[0].Brand)
}

func TestProducts_SinConexionConCache(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	vm := viewmodel.NewProductViewModel(context.Background(), e.server.Products(), e.sessions)
	defer vm.Close()
	require.Equal(t, viewmodel.PhaseSuccess, vm.Load(context.Background(), "", "").Phase)

	e.server.SetOffline(true)
	st := vm.Load(context.Background(), "lente", "")
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.True(t, st.Data.Offline)
	assert.Len(t, st.Data.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_FiltroPorRolYBusqueda(t *testing.T) {
	e := newEnv(t)
	e.login(t, "admin@wms.co")
	vm := viewmodel.NewUserViewModel(context.Background(), e.server.Users(), e.sessions)
	defer vm.Close()

	st := vm.Load(context.Background(), "operador", "")
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	assert.Len(t, st.Data.Items, 2)

	st = vm.Load(context.Background(), "", "pena")
	require.Len(t, st.Data.Items, 1)
	assert.Equal(t, "Andrés Peña", st.Data.Items[0].Name)

	st = vm.Load(context.Background(), "GERENTE", "")
	assert.ErrorIs(t, st.Err, domain.ErrInvalidInput)
}

func TestUserForm_Validate(t *testing.T) {
	ok := viewmodel.UserForm{Name: "Sofía Ríos", Email: "srios@wms.co", Password: "12345678", Role: "operador"}
	require.NoError(t, ok.Validate())

	cases := map[string]viewmodel.UserForm{
		"nombre":   {Email: ok.Email, Password: ok.Password, Role: ok.Role},
		"email":    {Name: ok.Name, Email: "srios", Password: ok.Password, Role: ok.Role},
		"password": {Name: ok.Name, Email: ok.Email, Password: "1234567", Role: ok.Role},
		"rol":      {Name: ok.Name, Email: ok.Email, Password: ok.Password, Role: "GERENTE"},
	}
	for field, form := range cases {
		t.Run(field, func(t *testing.T) {
			var verr *domain.ValidationError
			require.ErrorAs(t, form.Validate(), &verr)
			assert.Equal(t, field, verr.Field)
		})
	}
}

func TestUsers_CrearSoloAdministrador(t *testing.T) {
	e := newEnv(t)
	e.login(t, "supervisor@wms.co")
	vm := viewmodel.NewUserViewModel(context.Background(), e.server.Users(), e.sessions)
	defer vm.Close()

	form := viewmodel.UserForm{Name: "Sofía Ríos", Email: "SRios@wms.co", Password: "12345678", Role: "operador"}
	assert.ErrorIs(t, vm.Create(context.Background(), form).Err, domain.ErrForbidden)

	e.login(t, "admin@wms.co")
	st := vm.Create(context.Background(), form)
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	assert.Equal(t, "srios@wms.co", st.Data.Email)
	assert.Equal(t, entity.RoleOperator, st.Data.Role)

	assert.ErrorIs(t, vm.Create(context.Background(), form).Err, domain.ErrConflict)
}
