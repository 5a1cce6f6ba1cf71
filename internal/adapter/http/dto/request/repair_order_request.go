package request

import (
	"servitec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AccessoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Included bool   `json:"included"`
}

type DeviceRequest struct {
	Brand         string             `json:"brand"`
	Model         string             `json:"model"`
	SerialNumber  string             `json:"serial_number"`
	Type          string             `json:"type"`
	ReviewCost    decimal.Decimal    `json:"review_cost"`
	ReportedIssue string             `json:"reported_issue"`
	Accessories   []AccessoryRequest `json:"accessories"`
}

// CreateRepairOrderRequest is the intake form payload. Field-level
// requirements (customer name/phone, per-device brand/model/issue) are
// validated in the usecase so failures come back field-scoped.
type CreateRepairOrderRequest struct {
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerDNI     string          `json:"customer_dni"`
	CustomerAddress string          `json:"customer_address"`
	TechnicianID    string          `json:"technician_id"`
	TechnicianName  string          `json:"technician_name"`
	Devices         []DeviceRequest `json:"devices"`
}

func (r CreateRepairOrderRequest) ToEntity() entities.RepairOrder {
	devices := make([]entities.Device, 0, len(r.Devices))
	for _, d := range r.Devices {
		accessories := make([]entities.Accessory, 0, len(d.Accessories))
		for _, a := range d.Accessories {
			accessories = append(accessories, entities.Accessory{Name: a.Name, Included: a.Included})
		}
		deviceType := entities.DeviceType(d.Type)
		if deviceType == "" {
			deviceType = entities.DeviceTypeOther
		}
		devices = append(devices, entities.Device{
			Brand:         d.Brand,
			Model:         d.Model,
			SerialNumber:  d.SerialNumber,
			Type:          deviceType,
			ReviewCost:    d.ReviewCost,
			ReportedIssue: d.ReportedIssue,
			Accessories:   accessories,
		})
	}

	return entities.RepairOrder{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerDNI:     r.CustomerDNI,
		CustomerAddress: r.CustomerAddress,
		TechnicianID:    r.TechnicianID,
		TechnicianName:  r.TechnicianName,
		Devices:         devices,
	}
}

type UpdateDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis"`
}
