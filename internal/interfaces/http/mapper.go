package http

import (
	"strings"
	"time"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

func toSessionResponse(s *entity.Session) dto.SessionResponse {
	out := dto.SessionResponse{UserID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role, Offline: s.Offline}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}

func toApprovalResponse(a *entity.Approval) dto.ApprovalResponse {
	return dto.ApprovalResponse{
		ID:                    a.ID,
		LocalID:               a.LocalID,
		Type:                  string(a.Type),
		SKU:                   a.SKU,
		ProductName:           a.ProductName,
		Quantity:              a.Quantity,
		Reason:                a.Reason,
		SourceLocationID:      a.SourceLocationID,
		DestinationLocationID: a.DestinationLocationID,
		Status:                a.Status,
		RequesterID:           a.RequesterID,
		RequesterName:         a.RequesterName,
		ApproverID:            a.ApproverID,
		Observations:          a.Observations,
		CreatedAt:             a.CreatedAt,
		DecidedAt:             a.DecidedAt,
		ClientRef:             a.ClientRef,
	}
}

func toProgressResponse(p *entity.InventoryProgress) dto.InventoryProgressResponse {
	return dto.InventoryProgressResponse{
		TotalLocations:          p.TotalLocations,
		CountedLocations:        p.CountedLocations,
		PendingLocations:        p.PendingLocations,
		CompletedPct:            p.CompletedPct,
		TotalDifferences:        p.TotalDifferences,
		TotalShortages:          p.TotalShortages,
		TotalSurpluses:          p.TotalSurpluses,
		LocationsWithDifference: p.LocationsWithDifference,
	}
}

func toPendingCountResponse(c *entity.PendingInventoryCount) dto.PendingCountResponse {
	return dto.PendingCountResponse{
		LocalID:          c.ID,
		SKU:              c.SKU,
		LocationID:       c.LocationID,
		PhysicalQuantity: c.PhysicalQuantity,
		CreatedAt:        c.CreatedAt.UnixMilli(),
	}
}

func toDifferenceResponse(d entity.CountDifference) dto.CountDifferenceResponse {
	return dto.CountDifferenceResponse{
		SKU:            d.SKU,
		LocationID:     d.LocationID,
		SystemQuantity: d.SystemQuantity,
		PhysicalCount:  d.PhysicalCount,
		Difference:     d.Difference,
		Type:           d.Type(),
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	out := dto.MessageResponse{
		ID:          m.ID,
		LocalID:     m.LocalID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		RecipientID: m.RecipientID,
		Title:       m.Title,
		Body:        m.Body,
		Important:   m.Important,
		Read:        m.Read,
		SentAt:      m.SentAt,
		ClientRef:   m.ClientRef,
	}
	if m.LocalID > 0 {
		out.Status = entity.ApprovalUnsent
	}
	return out
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        l.ID,
		Code:      l.Code(),
		Zone:      l.Zone,
		Aisle:     l.Aisle,
		Shelf:     l.Shelf,
		Level:     l.Level,
		Capacity:  l.Capacity,
		Occupied:  l.Occupied,
		Available: l.Available(),
		Active:    l.Active,
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	out := dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active}
	if !u.CreatedAt.IsZero() {
		created := u.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		SKU:      p.SKU,
		Name:     p.Name,
		Brand:    p.Brand,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		Active:   p.Active,
	}
}

func toAttemptResponse(a *entity.DeliveryAttempt) dto.DeliveryAttemptResponse {
	return dto.DeliveryAttemptResponse{
		Kind:          string(a.Kind),
		LocalID:       a.LocalID,
		Attempts:      a.Attempts,
		LastError:     a.LastError,
		NextAttemptAt: a.NextAttemptAt,
	}
}

func toRejectedResponse(r *entity.RejectedRecord) dto.RejectedRecordResponse {
	return dto.RejectedRecordResponse{
		ID:         r.ID,
		Kind:       string(r.Kind),
		LocalID:    r.LocalID,
		ClientRef:  r.ClientRef,
		Status:     r.Status,
		Code:       r.Code,
		Message:    r.Message,
		RejectedAt: r.RejectedAt,
	}
}

func toRejectedDetail(r *entity.RejectedRecord, rec entity.PendingRecord) dto.RejectedDetailResponse {
	out := dto.RejectedDetailResponse{RejectedRecordResponse: toRejectedResponse(r)}
	switch v := rec.(type) {
	case *entity.PendingMovementRequest:
		out.Movement = &dto.CreateMovementRequest{
			Type: string(v.Type), SKU: v.SKU, Quantity: v.Quantity, Reason: v.Reason,
			SourceLocationID: v.SourceLocationID, DestinationLocationID: v.DestinationLocationID,
		}
	case *entity.PendingInventoryCount:
		qty := v.PhysicalQuantity
		out.Count = &dto.RegisterCountRequest{SKU: v.SKU, LocationID: v.LocationID, PhysicalQuantity: &qty}
	case *entity.PendingMessage:
		out.Outgoing = &dto.SendMessageRequest{RecipientID: v.RecipientID, Title: v.Title, Body: v.Body, Important: v.Important}
	case *entity.PendingLocationAssignment:
		out.Assignment = &dto.AssignLocationRequest{SKU: v.SKU, LocationID: v.LocationID, Quantity: v.Quantity}
	}
	return out
}

// fromRequeueRequest arma la corrección enviada por el usuario; nil si el body no trae ninguna.
func fromRequeueRequest(in dto.RequeueRequest) (entity.PendingRecord, error) {
	var recs []entity.PendingRecord
	if m := in.Movement; m != nil {
		recs = append(recs, &entity.PendingMovementRequest{
			Type: entity.MovementKind(strings.ToUpper(strings.TrimSpace(m.Type))), SKU: m.SKU, Quantity: m.Quantity,
			Reason: m.Reason, SourceLocationID: m.SourceLocationID, DestinationLocationID: m.DestinationLocationID,
		})
	}
	if cnt := in.Count; cnt != nil {
		if cnt.PhysicalQuantity == nil {
			return nil, domain.Invalid("cantidadFisica", "es requerida")
		}
		recs = append(recs, &entity.PendingInventoryCount{
			SKU: strings.ToUpper(strings.TrimSpace(cnt.SKU)), LocationID: cnt.LocationID, PhysicalQuantity: *cnt.PhysicalQuantity,
		})
	}
	if msg := in.Outgoing; msg != nil {
		recs = append(recs, &entity.PendingMessage{
			RecipientID: msg.RecipientID, Title: strings.TrimSpace(msg.Title), Body: strings.TrimSpace(msg.Body), Important: msg.Important,
		})
	}
	if a := in.Assignment; a != nil {
		recs = append(recs, &entity.PendingLocationAssignment{
			SKU: strings.ToUpper(strings.TrimSpace(a.SKU)), LocationID: a.LocationID, Quantity: a.Quantity,
		})
	}
	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		return recs[0], nil
	}
	return nil, domain.Invalid("registro", "solo se admite una corrección")
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
