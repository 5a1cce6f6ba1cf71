package repository

import (
	"context"
	"errors"
	"time"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName   = "budgets"
	budgetsRepairOrderIDIndex = "repair_order_id-index"
)

type budgetItem struct {
	ID                         string `dynamodbav:"id"`
	RepairOrderID              string `dynamodbav:"repair_order_id"`
	LaborCost                  string `dynamodbav:"labor_cost"`
	PartsCost                  string `dynamodbav:"parts_cost"`
	AdditionalCosts            string `dynamodbav:"additional_costs"`
	AdditionalCostsDescription string `dynamodbav:"additional_costs_description,omitempty"`
	TotalCost                  string `dynamodbav:"total_cost"`
	Approved                   bool   `dynamodbav:"approved"`
	CreatedAt                  string `dynamodbav:"created_at"`
	UpdatedAt                  string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: repair_order_id-index (PK: repair_order_id)
//
// Approval updates only touch the approved flag and updated_at; the cost
// breakdown written at create time is never rewritten.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) GetByRepairOrderID(ctx context.Context, repairOrderID string) (entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsRepairOrderIDIndex),
		KeyConditionExpression: aws.String("repair_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: repairOrderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Items) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) UpdateApprovalByID(ctx context.Context, id string, approved bool) (entities.Budget, error) {
	now := timeToString(time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #approved = :approved, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved":   &types.AttributeValueMemberBOOL{Value: approved},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#approved":   "approved",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                         b.ID,
		RepairOrderID:              b.RepairOrderID,
		LaborCost:                  decimalToString(b.LaborCost),
		PartsCost:                  decimalToString(b.PartsCost),
		AdditionalCosts:            decimalToString(b.AdditionalCosts),
		AdditionalCostsDescription: b.AdditionalCostsDescription,
		TotalCost:                  decimalToString(b.TotalCost),
		Approved:                   b.Approved,
		CreatedAt:                  timeToString(b.CreatedAt),
		UpdatedAt:                  timeToString(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:                         it.ID,
		RepairOrderID:              it.RepairOrderID,
		LaborCost:                  decimalFromString(it.LaborCost),
		PartsCost:                  decimalFromString(it.PartsCost),
		AdditionalCosts:            decimalFromString(it.AdditionalCosts),
		AdditionalCostsDescription: it.AdditionalCostsDescription,
		TotalCost:                  decimalFromString(it.TotalCost),
		Approved:                   it.Approved,
		CreatedAt:                  timeFromString(it.CreatedAt),
		UpdatedAt:                  timeFromString(it.UpdatedAt),
	}
}
