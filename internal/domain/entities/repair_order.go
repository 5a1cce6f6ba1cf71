package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus represents the lifecycle of a repair order.
//
// Domain notes:
//   - The chain is strictly forward: pending -> in progress -> completed -> delivered.
//   - Cancelled is a terminal absorbing state reachable from any non-terminal
//     state (an admin escape hatch, never a deletion).

type RepairStatus string

const (
	RepairStatusPending    RepairStatus = "PENDING"
	RepairStatusInProgress RepairStatus = "IN_PROGRESS"
	RepairStatusCompleted  RepairStatus = "COMPLETED"
	RepairStatusDelivered  RepairStatus = "DELIVERED"
	RepairStatusCancelled  RepairStatus = "CANCELLED"
)

// Next returns the follow-up status in the forward chain. The second return
// is false when the order can no longer advance (delivered or cancelled).
func (s RepairStatus) Next() (RepairStatus, bool) {
	switch s {
	case RepairStatusPending:
		return RepairStatusInProgress, true
	case RepairStatusInProgress:
		return RepairStatusCompleted, true
	case RepairStatusCompleted:
		return RepairStatusDelivered, true
	default:
		return "", false
	}
}

// Terminal reports whether no transition (including cancellation) may leave s.
func (s RepairStatus) Terminal() bool {
	return s == RepairStatusDelivered || s == RepairStatusCancelled
}

// DeviceType tags the kind of appliance or device under repair.
type DeviceType string

const (
	DeviceTypeRefrigerator   DeviceType = "REFRIGERATOR"
	DeviceTypeWashingMachine DeviceType = "WASHING_MACHINE"
	DeviceTypeDryer          DeviceType = "DRYER"
	DeviceTypeStove          DeviceType = "STOVE"
	DeviceTypeMicrowave      DeviceType = "MICROWAVE"
	DeviceTypeTV             DeviceType = "TV"
	DeviceTypeLaptop         DeviceType = "LAPTOP"
	DeviceTypeDesktop        DeviceType = "DESKTOP"
	DeviceTypeTablet         DeviceType = "TABLET"
	DeviceTypeSmartphone     DeviceType = "SMARTPHONE"
	DeviceTypeOther          DeviceType = "OTHER"
)

// Accessory is an item the customer handed in together with a device.
type Accessory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// Device is one physical item inside a repair order.
type Device struct {
	ID            string          `json:"id"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	SerialNumber  string          `json:"serial_number"`
	Type          DeviceType      `json:"type"`
	ReviewCost    decimal.Decimal `json:"review_cost"`
	ReportedIssue string          `json:"reported_issue"`
	Diagnosis     string          `json:"diagnosis,omitempty"`
	Accessories   []Accessory     `json:"accessories"`
}

// RepairOrder is a customer repair job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
//
// Invariant: an order always carries at least one device. Cancellation is a
// status change; orders are never physically deleted.

type RepairOrder struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
	CustomerDNI     string           `json:"customer_dni,omitempty"`
	CustomerAddress string           `json:"customer_address,omitempty"`
	Devices         []Device         `json:"devices"`
	Status          RepairStatus     `json:"status"`
	TechnicianID    string           `json:"technician_id"`
	TechnicianName  string           `json:"technician_name,omitempty"`
	TotalCost       *decimal.Decimal `json:"total_cost,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	DeliveredAt     *time.Time       `json:"delivered_at,omitempty"`
}
