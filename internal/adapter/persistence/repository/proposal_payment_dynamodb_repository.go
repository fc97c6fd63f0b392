package repository

import (
	"context"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "proposal_payments"
	paymentsProposalIDIndex  = "proposal_id-index"
)

type proposalPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	ProposalID   string                 `dynamodbav:"proposal_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// ProposalPaymentDynamoRepository persists ProposalPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id, SK: date)
type ProposalPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalPaymentRepository = (*ProposalPaymentDynamoRepository)(nil)

func NewProposalPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *ProposalPaymentDynamoRepository {
	return &ProposalPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, defaultPaymentsTableName),
	}
}

func (r *ProposalPaymentDynamoRepository) Create(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
	av, err := attributevalue.MarshalMap(toProposalPaymentItem(p))
	if err != nil {
		return entities.ProposalPayment{}, err
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
		return entities.ProposalPayment{}, err
	}
	return p, nil
}

func (r *ProposalPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProposalPayment{}, nil
	}

	var it proposalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProposalPayment{}, err
	}
	return fromProposalPaymentItem(it), nil
}

// ListByProposalID returns the payment history of a proposal, newest first.
func (r *ProposalPaymentDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error) {
	items := make([]entities.ProposalPayment, 0)
	pages := dynamodb.NewQueryPaginator(r.ddb, paymentHistoryQuery(r.tableName, proposalID))
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it proposalPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProposalPaymentItem(it))
		}
	}
	return items, nil
}

// paymentHistoryQuery reads the GSI backwards so the date sort key yields
// the latest attempt first.
func paymentHistoryQuery(tableName, proposalID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		IndexName:              aws.String(paymentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func toProposalPaymentItem(p entities.ProposalPayment) proposalPaymentItem {
	return proposalPaymentItem{
		ID:           p.ID,
		ProposalID:   p.ProposalID,
		Amount:       moneyString(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromProposalPaymentItem(it proposalPaymentItem) entities.ProposalPayment {
	return entities.ProposalPayment{
		ID:           it.ID,
		ProposalID:   it.ProposalID,
		Amount:       parseMoney(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
