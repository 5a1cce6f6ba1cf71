package repository

import (
	"context"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRepairOrdersTableName = "repair_orders"
	repairOrdersTechnicianIndex  = "technician_id-index"
)

type accessoryItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Included bool   `dynamodbav:"included"`
}

type deviceItem struct {
	ID            string          `dynamodbav:"id"`
	Brand         string          `dynamodbav:"brand"`
	Model         string          `dynamodbav:"model"`
	SerialNumber  string          `dynamodbav:"serial_number,omitempty"`
	Type          string          `dynamodbav:"type"`
	ReviewCost    string          `dynamodbav:"review_cost"`
	ReportedIssue string          `dynamodbav:"reported_issue"`
	Diagnosis     string          `dynamodbav:"diagnosis,omitempty"`
	Accessories   []accessoryItem `dynamodbav:"accessories,omitempty"`
}

type repairOrderItem struct {
	ID              string       `dynamodbav:"id"`
	CustomerName    string       `dynamodbav:"customer_name"`
	CustomerPhone   string       `dynamodbav:"customer_phone"`
	CustomerEmail   string       `dynamodbav:"customer_email,omitempty"`
	CustomerDNI     string       `dynamodbav:"customer_dni,omitempty"`
	CustomerAddress string       `dynamodbav:"customer_address,omitempty"`
	Devices         []deviceItem `dynamodbav:"devices"`
	Status          string       `dynamodbav:"status"`
	TechnicianID    string       `dynamodbav:"technician_id"`
	TechnicianName  string       `dynamodbav:"technician_name,omitempty"`
	TotalCost       string       `dynamodbav:"total_cost,omitempty"`
	CreatedAt       string       `dynamodbav:"created_at"`
	UpdatedAt       string       `dynamodbav:"updated_at"`
	CompletedAt     string       `dynamodbav:"completed_at,omitempty"`
	DeliveredAt     string       `dynamodbav:"delivered_at,omitempty"`
}

// RepairOrderDynamoRepository persists RepairOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: technician_id-index (PK: technician_id)
//
// Updates write the whole aggregate snapshot behind an attribute_exists
// condition; orders are never deleted (cancellation is a status).

type RepairOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairOrderRepository = (*RepairOrderDynamoRepository)(nil)

func NewRepairOrderDynamoRepository(ddb *dynamodb.Client) *RepairOrderDynamoRepository {
	return &RepairOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPAIR_ORDERS_TABLE", defaultRepairOrdersTableName),
	}
}

func (r *RepairOrderDynamoRepository) Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	av, err := attributevalue.MarshalMap(toRepairOrderItem(o))
	if err != nil {
		return entities.RepairOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	return o, nil
}

func (r *RepairOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it repairOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromRepairOrderItem(it), nil
}

func (r *RepairOrderDynamoRepository) List(ctx context.Context) ([]entities.RepairOrder, error) {
	orders := make([]entities.RepairOrder, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it repairOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromRepairOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *RepairOrderDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(repairOrdersTechnicianIndex),
		KeyConditionExpression: aws.String("technician_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: technicianID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.RepairOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromRepairOrderItem(it))
	}
	return orders, nil
}

func (r *RepairOrderDynamoRepository) Update(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	av, err := attributevalue.MarshalMap(toRepairOrderItem(o))
	if err != nil {
		return entities.RepairOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	return o, nil
}

func toRepairOrderItem(o entities.RepairOrder) repairOrderItem {
	devices := make([]deviceItem, 0, len(o.Devices))
	for _, d := range o.Devices {
		accessories := make([]accessoryItem, 0, len(d.Accessories))
		for _, a := range d.Accessories {
			accessories = append(accessories, accessoryItem(a))
		}
		devices = append(devices, deviceItem{
			ID:            d.ID,
			Brand:         d.Brand,
			Model:         d.Model,
			SerialNumber:  d.SerialNumber,
			Type:          string(d.Type),
			ReviewCost:    decimalToString(d.ReviewCost),
			ReportedIssue: d.ReportedIssue,
			Diagnosis:     d.Diagnosis,
			Accessories:   accessories,
		})
	}

	it := repairOrderItem{
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
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
		CompletedAt:     timePtrToString(o.CompletedAt),
		DeliveredAt:     timePtrToString(o.DeliveredAt),
	}
	if o.TotalCost != nil {
		it.TotalCost = decimalToString(*o.TotalCost)
	}
	return it
}

func fromRepairOrderItem(it repairOrderItem) entities.RepairOrder {
	devices := make([]entities.Device, 0, len(it.Devices))
	for _, d := range it.Devices {
		accessories := make([]entities.Accessory, 0, len(d.Accessories))
		for _, a := range d.Accessories {
			accessories = append(accessories, entities.Accessory(a))
		}
		devices = append(devices, entities.Device{
			ID:            d.ID,
			Brand:         d.Brand,
			Model:         d.Model,
			SerialNumber:  d.SerialNumber,
			Type:          entities.DeviceType(d.Type),
			ReviewCost:    decimalFromString(d.ReviewCost),
			ReportedIssue: d.ReportedIssue,
			Diagnosis:     d.Diagnosis,
			Accessories:   accessories,
		})
	}

	o := entities.RepairOrder{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		CustomerEmail:   it.CustomerEmail,
		CustomerDNI:     it.CustomerDNI,
		CustomerAddress: it.CustomerAddress,
		Devices:         devices,
		Status:          entities.RepairStatus(it.Status),
		TechnicianID:    it.TechnicianID,
		TechnicianName:  it.TechnicianName,
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
		CompletedAt:     timePtrFromString(it.CompletedAt),
		DeliveredAt:     timePtrFromString(it.DeliveredAt),
	}
	if it.TotalCost != "" {
		cost := decimalFromString(it.TotalCost)
		o.TotalCost = &cost
	}
	return o
}
