package dto

import (
	"time"

	"portico/internal/domain/permit"
)

// PermitDTO is the external representation of an entry permission joined
// with its visit, resident and optional order references.
type PermitDTO struct {
	ID                uint       `json:"id"`
	QRToken           string     `json:"qr_token"`
	PermissionType    string     `json:"permission_type"`
	Status            string     `json:"status"`
	Lifecycle         string     `json:"lifecycle"`
	Description       string     `json:"description,omitempty"`
	ValidFrom         time.Time  `json:"valid_from"`
	ValidUntil        time.Time  `json:"valid_until"`
	EntryTime         *time.Time `json:"entry_time"`
	DepartureTime     *time.Time `json:"departure_time"`
	VisitID           uint       `json:"visit_id"`
	VisitorName       string     `json:"visitor_name"`
	VisitorNationalID string     `json:"visitor_national_id"`
	ResidentID        uint       `json:"resident_id"`
	ResidentName      string     `json:"resident_name"`
	OrderID           *uint      `json:"order_id,omitempty"`
	SupplierName      string     `json:"supplier_name,omitempty"`
	Version           int        `json:"version"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// GateVerdictDTO is the verdict payload for the gate officer's UI.
type GateVerdictDTO struct {
	PermitID          uint   `json:"permit_id"`
	VisitorName       string `json:"visitor_name"`
	VisitorNationalID string `json:"visitor_national_id"`
	ResidentName      string `json:"resident_name"`
	Result            string `json:"result"`
	Message           string `json:"message"`
}

func ToPermitDTO(d *permit.Details) *PermitDTO {
	if d == nil || d.Permit == nil {
		return nil
	}

	p := d.Permit
	return &PermitDTO{
		ID:                p.ID(),
		QRToken:           p.QRToken(),
		PermissionType:    p.PermissionType().String(),
		Status:            p.Status().String(),
		Lifecycle:         p.Lifecycle().String(),
		Description:       p.Description(),
		ValidFrom:         p.ValidFrom(),
		ValidUntil:        p.ValidUntil(),
		EntryTime:         p.EntryTime(),
		DepartureTime:     p.DepartureTime(),
		VisitID:           p.VisitID(),
		VisitorName:       d.VisitorName,
		VisitorNationalID: d.VisitorNationalID,
		ResidentID:        p.ResidentID(),
		ResidentName:      d.ResidentName,
		OrderID:           p.OrderID(),
		SupplierName:      d.SupplierName,
		Version:           p.Version(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

// ToPermitDTOsAt builds listing DTOs with the expiry rule applied as of
// now, so stored pending rows past their window read as expired.
func ToPermitDTOsAt(details []*permit.Details, now time.Time) []*PermitDTO {
	dtos := make([]*PermitDTO, 0, len(details))
	for _, d := range details {
		out := ToPermitDTO(d)
		if out != nil {
			out.Status = d.Permit.EffectiveStatus(now).String()
		}
		dtos = append(dtos, out)
	}
	return dtos
}

func ToGateVerdictDTO(v *permit.GateVerdict) *GateVerdictDTO {
	if v == nil {
		return nil
	}

	return &GateVerdictDTO{
		PermitID:          v.PermitID,
		VisitorName:       v.VisitorName,
		VisitorNationalID: v.VisitorNationalID,
		ResidentName:      v.ResidentName,
		Result:            string(v.Result),
		Message:           v.Message,
	}
}
