package response

import (
	"time"

	"github.com/shopspring/decimal"

	"servitec/internal/domain/entities"
)

type AccessoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

type DeviceResponse struct {
	ID            string              `json:"id"`
	Brand         string              `json:"brand"`
	Model         string              `json:"model"`
	SerialNumber  string              `json:"serial_number,omitempty"`
	Type          string              `json:"type"`
	ReviewCost    decimal.Decimal     `json:"review_cost"`
	ReportedIssue string              `json:"reported_issue"`
	Diagnosis     string              `json:"diagnosis,omitempty"`
	Accessories   []AccessoryResponse `json:"accessories"`
}

type RepairOrderResponse struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
	CustomerDNI     string           `json:"customer_dni,omitempty"`
	CustomerAddress string           `json:"customer_address,omitempty"`
	Devices         []DeviceResponse `json:"devices"`
	Status          string           `json:"status"`
	TechnicianID    string           `json:"technician_id"`
	TechnicianName  string           `json:"technician_name,omitempty"`
	TotalCost       *decimal.Decimal `json:"total_cost,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	DeliveredAt     *time.Time       `json:"delivered_at,omitempty"`
}

func FromRepairOrder(o entities.RepairOrder) RepairOrderResponse {
	devices := make([]DeviceResponse, 0, len(o.Devices))
	for _, d := range o.Devices {
		accessories := make([]AccessoryResponse, 0, len(d.Accessories))
		for _, a := range d.Accessories {
			accessories = append(accessories, AccessoryResponse(a))
		}
		devices = append(devices, DeviceResponse{
			ID:            d.ID,
			Brand:         d.Brand,
			Model:         d.Model,
			SerialNumber:  d.SerialNumber,
			Type:          string(d.Type),
			ReviewCost:    d.ReviewCost,
			ReportedIssue: d.ReportedIssue,
			Diagnosis:     d.Diagnosis,
			Accessories:   accessories,
		})
	}

	return RepairOrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		CustomerDNI:     o.CustomerDNI,
		CustomerAddress: o.CustomerAddress,
		Devices:         devices,
		Status:          string(o.Status),
		TechnicianID:    o.TechnicianID,
		TechnicianName:  o.TechnicianName,
		TotalCost:       o.TotalCost,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		CompletedAt:     o.CompletedAt,
		DeliveredAt:     o.DeliveredAt,
	}
}

func FromRepairOrders(orders []entities.RepairOrder) []RepairOrderResponse {
	out := make([]RepairOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromRepairOrder(o))
	}
	return out
}
