package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// DemoPassword contraseña de todas las cuentas de ejemplo.
const DemoPassword = "wms12345"

// NewDemoServer construye un servidor con datos de ejemplo de una tienda de equipo fotográfico.
func NewDemoServer(secret string, tokens TokenSource) (*Server, error) {
	s := NewServer(secret, tokens)
	now := s.now()

	accounts := []entity.User{
		{ID: 1, Name: "Laura Gómez", Email: "admin@wms.co", Role: entity.RoleAdmin, Active: true},
		{ID: 2, Name: "Carlos Ruiz", Email: "supervisor@wms.co", Role: entity.RoleSupervisor, Active: true},
		{ID: 3, Name: "Diana Torres", Email: "operador@wms.co", Role: entity.RoleOperator, Active: true},
		{ID: 4, Name: "Andrés Peña", Email: "apena@wms.co", Role: entity.RoleOperator, Active: false},
	}
	for _, u := range accounts {
		u.CreatedAt = now.AddDate(0, -6, 0)
		if err := s.AddUser(u, DemoPassword); err != nil {
			return nil, err
		}
	}

	for _, p := range []entity.Product{
		{SKU: "AP30001", Name: "Cámara Canon EOS R6 Mark II", Brand: "Canon", Category: "Cámaras", Price: decimal.RequireFromString("10499000"), Stock: 12},
		{SKU: "AP30002", Name: "Cámara Sony Alpha 7 IV", Brand: "Sony", Category: "Cámaras", Price: decimal.RequireFromString("9899000"), Stock: 8},
		{SKU: "AP30003", Name: "Cámara Nikon Z6 II", Brand: "Nikon", Category: "Cámaras", Price: decimal.RequireFromString("7999000"), Stock: 5},
		{SKU: "AP30010", Name: "Lente Canon RF 24-70mm f/2.8L", Brand: "Canon", Category: "Lentes", Price: decimal.RequireFromString("9299000"), Stock: 4},
		{SKU: "AP30011", Name: "Lente Sony FE 50mm f/1.8", Brand: "Sony", Category: "Lentes", Price: decimal.RequireFromString("1099000"), Stock: 15},
		{SKU: "AP30020", Name: "Trípode Manfrotto 190X Aluminio", Brand: "Manfrotto", Category: "Accesorios", Price: decimal.RequireFromString("899000"), Stock: 20},
		{SKU: "AP30030", Name: "Tarjeta SanDisk Extreme Pro 128GB", Brand: "SanDisk", Category: "Almacenamiento", Price: decimal.RequireFromString("189000"), Stock: 60},
		{SKU: "AP30040", Name: "Flash Godox V1 para Canon", Brand: "Godox", Category: "Iluminación", Price: decimal.RequireFromString("1249000"), Stock: 7},
		{SKU: "AP30050", Name: "Batería Canon LP-E6NH", Brand: "Canon", Category: "Energía", Price: decimal.RequireFromString("349000"), Stock: 30},
	} {
		p.Active = true
		s.AddProduct(p)
	}

	for _, l := range []entity.Location{
		{ID: 1, Zone: "A", Aisle: 1, Shelf: 1, Level: 1, Capacity: 40, Occupied: 12},
		{ID: 2, Zone: "A", Aisle: 1, Shelf: 2, Level: 1, Capacity: 40, Occupied: 8},
		{ID: 3, Zone: "A", Aisle: 3, Shelf: 2, Level: 1, Capacity: 30, Occupied: 9},
		{ID: 4, Zone: "B", Aisle: 2, Shelf: 1, Level: 2, Capacity: 60, Occupied: 35},
		{ID: 5, Zone: "B", Aisle: 2, Shelf: 3, Level: 1, Capacity: 60, Occupied: 20},
		{ID: 6, Zone: "C", Aisle: 1, Shelf: 1, Level: 1, Capacity: 100, Occupied: 60},
		{ID: 7, Zone: "C", Aisle: 4, Shelf: 2, Level: 3, Capacity: 100, Occupied: 0},
	} {
		l.Active = true
		s.AddLocation(l)
	}

	for _, st := range []struct {
		sku string
		loc int64
		qty int
	}{
		{"AP30001", 1, 12}, {"AP30002", 2, 8}, {"AP30003", 3, 5}, {"AP30010", 3, 4},
		{"AP30011", 4, 15}, {"AP30020", 4, 20}, {"AP30030", 6, 60}, {"AP30040", 5, 7},
		{"AP30050", 5, 13}, {"AP30050", 6, 17},
	} {
		s.SetStock(st.sku, st.loc, st.qty)
	}

	loc := func(id int64) *int64 { return &id }
	approver := int64(2)
	decided := now.Add(-20 * time.Hour)
	s.AddApproval(entity.Approval{
		ID: 501, Type: entity.MovementIngreso, SKU: "AP30001", ProductName: "Cámara Canon EOS R6 Mark II",
		Quantity: 10, Reason: "Compra a proveedor", DestinationLocationID: loc(1),
		Status: entity.ApprovalPending, RequesterID: 3, RequesterName: "Diana Torres", CreatedAt: now.Add(-2 * time.Hour),
	})
	s.AddApproval(entity.Approval{
		ID: 502, Type: entity.MovementReubicacion, SKU: "AP30020", ProductName: "Trípode Manfrotto 190X Aluminio",
		Quantity: 5, Reason: "Reorganización de zona B", SourceLocationID: loc(4), DestinationLocationID: loc(7),
		Status: entity.ApprovalPending, RequesterID: 3, RequesterName: "Diana Torres", CreatedAt: now.Add(-5 * time.Hour),
	})
	s.AddApproval(entity.Approval{
		ID: 503, Type: entity.MovementEgreso, SKU: "AP30030", ProductName: "Tarjeta SanDisk Extreme Pro 128GB",
		Quantity: 3, Reason: "Venta mostrador", SourceLocationID: loc(6),
		Status: entity.ApprovalApproved, RequesterID: 3, RequesterName: "Diana Torres", ApproverID: &approver,
		CreatedAt: now.Add(-26 * time.Hour), DecidedAt: &decided,
	})
	s.AddApproval(entity.Approval{
		ID: 504, Type: entity.MovementEgreso, SKU: "AP30002", ProductName: "Cámara Sony Alpha 7 IV",
		Quantity: 20, Reason: "Traslado a sucursal", SourceLocationID: loc(2),
		Status: entity.ApprovalRejected, RequesterID: 3, RequesterName: "Diana Torres", ApproverID: &approver,
		Observations: "Cantidad supera el stock disponible", CreatedAt: now.Add(-48 * time.Hour), DecidedAt: &decided,
	})

	operator := int64(3)
	s.AddMessage(entity.Message{
		ID: 801, SenderID: 1, SenderName: "Laura Gómez", Title: "Inventario trimestral",
		Body: "El conteo físico empieza el lunes a las 7:00. Zonas A y B primero.", Important: true,
		SentAt: now.Add(-24 * time.Hour),
	})
	s.AddMessage(entity.Message{
		ID: 802, SenderID: 2, SenderName: "Carlos Ruiz", RecipientID: &operator, Title: "Recepción Canon",
		Body: "Llega pedido de cámaras R6 hoy en la tarde, dejar espacio en A-01-01-1.",
		SentAt: now.Add(-3 * time.Hour),
	})
	return s, nil
}
