package remote

import (
	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

func approvalFromDTO(in dto.ApprovalResponse) *entity.Approval {
	return &entity.Approval{
		ID:                    in.ID,
		Type:                  entity.MovementKind(in.Type),
		SKU:                   in.SKU,
		ProductName:           in.ProductName,
		Quantity:              in.Quantity,
		Reason:                in.Reason,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		Status:                in.Status,
		RequesterID:           in.RequesterID,
		RequesterName:         in.RequesterName,
		ApproverID:            in.ApproverID,
		Observations:          in.Observations,
		CreatedAt:             in.CreatedAt,
		DecidedAt:             in.DecidedAt,
		ClientRef:             in.ClientRef,
	}
}

func messageFromDTO(in dto.MessageResponse) *entity.Message {
	return &entity.Message{
		ID:          in.ID,
		SenderID:    in.SenderID,
		SenderName:  in.SenderName,
		RecipientID: in.RecipientID,
		Title:       in.Title,
		Body:        in.Body,
		Important:   in.Important,
		Read:        in.Read,
		SentAt:      in.SentAt,
		ClientRef:   in.ClientRef,
	}
}

func userFromDTO(in dto.UserResponse) *entity.User {
	u := &entity.User{ID: in.ID, Name: in.Name, Email: in.Email, Role: in.Role, Active: in.Active}
	if in.CreatedAt != nil {
		u.CreatedAt = *in.CreatedAt
	}
	return u
}

func productFromDTO(in dto.ProductResponse) *entity.Product {
	return &entity.Product{
		SKU: in.SKU, Name: in.Name, Brand: in.Brand, Category: in.Category,
		Price: in.Price, Stock: in.Stock, Active: in.Active,
	}
}

func locationFromDTO(in dto.LocationResponse) *entity.Location {
	return &entity.Location{
		ID: in.ID, Zone: in.Zone, Aisle: in.Aisle, Shelf: in.Shelf, Level: in.Level,
		Capacity: in.Capacity, Occupied: in.Occupied, Active: in.Active,
	}
}

func progressFromDTO(in dto.InventoryProgressResponse) *entity.InventoryProgress {
	return &entity.InventoryProgress{
		TotalLocations:          in.TotalLocations,
		CountedLocations:        in.CountedLocations,
		PendingLocations:        in.PendingLocations,
		CompletedPct:            in.CompletedPct,
		TotalDifferences:        in.TotalDifferences,
		TotalShortages:          in.TotalShortages,
		TotalSurpluses:          in.TotalSurpluses,
		LocationsWithDifference: in.LocationsWithDifference,
	}
}

// deliveryRequest traduce un registro pendiente al endpoint y body que lo crean en el servidor.
func deliveryRequest(rec entity.PendingRecord) (path string, body any, ok bool) {
	switch r := rec.(type) {
	case *entity.PendingMovementRequest:
		return "/api/aprobaciones", dto.CreateMovementRequest{
			Type:                  string(r.Type),
			SKU:                   r.SKU,
			Quantity:              r.Quantity,
			Reason:                r.Reason,
			SourceLocationID:      r.SourceLocationID,
			DestinationLocationID: r.DestinationLocationID,
		}, true
	case *entity.PendingInventoryCount:
		qty := r.PhysicalQuantity
		return "/api/inventario/conteos", dto.RegisterCountRequest{
			SKU: r.SKU, LocationID: r.LocationID, PhysicalQuantity: &qty,
		}, true
	case *entity.PendingMessage:
		return "/api/mensajes", dto.SendMessageRequest{
			RecipientID: r.RecipientID, Title: r.Title, Body: r.Body, Important: r.Important,
		}, true
	case *entity.PendingLocationAssignment:
		return "/api/ubicaciones/asignaciones", dto.AssignLocationRequest{
			SKU: r.SKU, LocationID: r.LocationID, Quantity: r.Quantity,
		}, true
	}
	return "", nil, false
}
