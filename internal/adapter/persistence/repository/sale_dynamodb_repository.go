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

const defaultSalesTableName = "sales"

type saleLineItem struct {
	ID          string `dynamodbav:"id"`
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
}

type salePaymentItem struct {
	Method         string `dynamodbav:"method"`
	Amount         string `dynamodbav:"amount"`
	ReceivedAmount string `dynamodbav:"received_amount,omitempty"`
	Change         string `dynamodbav:"change,omitempty"`
	PhoneNumber    string `dynamodbav:"phone_number,omitempty"`
	Reference      string `dynamodbav:"reference,omitempty"`
}

type saleItemRecord struct {
	ID            string          `dynamodbav:"id"`
	Items         []saleLineItem  `dynamodbav:"items"`
	Subtotal      string          `dynamodbav:"subtotal"`
	Tax           string          `dynamodbav:"tax"`
	Total         string          `dynamodbav:"total"`
	Payment       salePaymentItem `dynamodbav:"payment"`
	CustomerName  string          `dynamodbav:"customer_name,omitempty"`
	CustomerPhone string          `dynamodbav:"customer_phone,omitempty"`
	CustomerEmail string          `dynamodbav:"customer_email,omitempty"`
	CreatedAt     string          `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists finalized sales in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Sales are immutable receipts: create-only with a conditional put, no
// update path.

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItemRecord(s))
	if err != nil {
		return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItemRecord(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context) ([]entities.Sale, error) {
	sales := make([]entities.Sale, 0)
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
			var it saleItemRecord
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sales = append(sales, fromSaleItemRecord(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return sales, nil
}

func toSaleItemRecord(s entities.Sale) saleItemRecord {
	lines := make([]saleLineItem, 0, len(s.Items))
	for _, it := range s.Items {
		lines = append(lines, saleLineItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   decimalToString(it.UnitPrice),
			TotalPrice:  decimalToString(it.TotalPrice),
		})
	}

	payment := salePaymentItem{
		Method:      string(s.Payment.Method),
		Amount:      decimalToString(s.Payment.Amount),
		PhoneNumber: s.Payment.PhoneNumber,
		Reference:   s.Payment.Reference,
	}
	if s.Payment.ReceivedAmount != nil {
		payment.ReceivedAmount = decimalToString(*s.Payment.ReceivedAmount)
	}
	if s.Payment.Change != nil {
		payment.Change = decimalToString(*s.Payment.Change)
	}

	return saleItemRecord{
		ID:            s.ID,
		Items:         lines,
		Subtotal:      decimalToString(s.Subtotal),
		Tax:           decimalToString(s.Tax),
		Total:         decimalToString(s.Total),
		Payment:       payment,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CustomerEmail: s.CustomerEmail,
		CreatedAt:     timeToString(s.CreatedAt),
	}
}

func fromSaleItemRecord(it saleItemRecord) entities.Sale {
	items := make([]entities.SaleItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.SaleItem{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   decimalFromString(l.UnitPrice),
			TotalPrice:  decimalFromString(l.TotalPrice),
		})
	}

	payment := entities.PaymentDetails{
		Method:      entities.PaymentMethod(it.Payment.Method),
		Amount:      decimalFromString(it.Payment.Amount),
		PhoneNumber: it.Payment.PhoneNumber,
		Reference:   it.Payment.Reference,
	}
	if it.Payment.ReceivedAmount != "" {
		received := decimalFromString(it.Payment.ReceivedAmount)
		payment.ReceivedAmount = &received
	}
	if it.Payment.Change != "" {
		change := decimalFromString(it.Payment.Change)
		payment.Change = &change
	}

	return entities.Sale{
		ID:            it.ID,
		Items:         items,
		Subtotal:      decimalFromString(it.Subtotal),
		Tax:           decimalFromString(it.Tax),
		Total:         decimalFromString(it.Total),
		Payment:       payment,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		CustomerEmail: it.CustomerEmail,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
