package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	currentProposalKey        = "current_proposal"
)

type proposalItem struct {
	ID     string `dynamodbav:"id"`
	Status string `dynamodbav:"status"`

	ClientName    string `dynamodbav:"client_name"`
	ClientCompany string `dynamodbav:"client_company,omitempty"`
	ClientEmail   string `dynamodbav:"client_email,omitempty"`
	ClientPhone   string `dynamodbav:"client_phone,omitempty"`
	ClientCNPJ    string `dynamodbav:"client_cnpj,omitempty"`

	ProjectName        string `dynamodbav:"project_name"`
	ProjectType        string `dynamodbav:"project_type,omitempty"`
	ProjectDescription string `dynamodbav:"project_description,omitempty"`
	DeliveryDate       string `dynamodbav:"delivery_date,omitempty"`

	ManagerName       string `dynamodbav:"manager_name,omitempty"`
	ManagerEmail      string `dynamodbav:"manager_email,omitempty"`
	ManagerPhone      string `dynamodbav:"manager_phone,omitempty"`
	ManagerDepartment string `dynamodbav:"manager_department,omitempty"`

	Budgets   []budgetItem `dynamodbav:"budgets"`
	CreatedAt string       `dynamodbav:"created_at"`
	UpdatedAt string       `dynamodbav:"updated_at"`
}

type budgetItem struct {
	ID         string           `dynamodbav:"id"`
	Module     string           `dynamodbav:"module"`
	Items      []budgetLineItem `dynamodbav:"items"`
	TotalValue string           `dynamodbav:"total_value"`
	CreatedAt  string           `dynamodbav:"created_at"`
	UpdatedAt  string           `dynamodbav:"updated_at"`
}

type budgetLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
	Module      string `dynamodbav:"module"`
	Setup       string `dynamodbav:"setup,omitempty"`
	Monthly     string `dynamodbav:"monthly,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The current proposal pointer lives in the configuration table under the
// current_proposal key.
type ProposalDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	pointerTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName, configurationTable string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:          ddb,
		tableName:    tableNameOr(tableName, defaultProposalsTableName),
		pointerTable: tableNameOr(configurationTable, defaultConfigurationTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// List scans the table and returns the proposals newest first.
func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	proposals := make([]entities.Proposal, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			proposals = append(proposals, fromProposalItem(it))
		}
	}
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (r *ProposalDynamoRepository) AppendBudget(ctx context.Context, id string, b entities.Budget) (entities.Proposal, error) {
	av, err := attributevalue.Marshal(toBudgetItem(b))
	if err != nil {
		return entities.Proposal{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #budgets = list_append(if_not_exists(#budgets, :empty), :budget), #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":budget":     &types.AttributeValueMemberL{Value: []types.AttributeValue{av}},
			":status":     &types.AttributeValueMemberS{Value: string(entities.ProposalStatusActive)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#budgets":    "budgets",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) GetCurrentID(ctx context.Context) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.pointerTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentProposalKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	v, ok := out.Item["proposal_id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return v.Value, nil
}

func (r *ProposalDynamoRepository) SetCurrentID(ctx context.Context, id string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.pointerTable),
		Item: map[string]types.AttributeValue{
			"id":          &types.AttributeValueMemberS{Value: currentProposalKey},
			"proposal_id": &types.AttributeValueMemberS{Value: id},
			"updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func (r *ProposalDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Proposal, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	budgets := make([]budgetItem, 0, len(p.Budgets))
	for _, b := range p.Budgets {
		budgets = append(budgets, toBudgetItem(b))
	}
	return proposalItem{
		ID:                 p.ID,
		Status:             string(p.Status),
		ClientName:         p.ClientName,
		ClientCompany:      p.ClientCompany,
		ClientEmail:        p.ClientEmail,
		ClientPhone:        p.ClientPhone,
		ClientCNPJ:         p.ClientCNPJ,
		ProjectName:        p.ProjectName,
		ProjectType:        p.ProjectType,
		ProjectDescription: p.ProjectDescription,
		DeliveryDate:       p.DeliveryDate,
		ManagerName:        p.ManagerName,
		ManagerEmail:       p.ManagerEmail,
		ManagerPhone:       p.ManagerPhone,
		ManagerDepartment:  p.ManagerDepartment,
		Budgets:            budgets,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	budgets := make([]entities.Budget, 0, len(it.Budgets))
	for _, b := range it.Budgets {
		budgets = append(budgets, fromBudgetItem(it.ID, b))
	}
	return entities.Proposal{
		ID:                 it.ID,
		Status:             entities.ProposalStatus(it.Status),
		ClientName:         it.ClientName,
		ClientCompany:      it.ClientCompany,
		ClientEmail:        it.ClientEmail,
		ClientPhone:        it.ClientPhone,
		ClientCNPJ:         it.ClientCNPJ,
		ProjectName:        it.ProjectName,
		ProjectType:        it.ProjectType,
		ProjectDescription: it.ProjectDescription,
		DeliveryDate:       it.DeliveryDate,
		ManagerName:        it.ManagerName,
		ManagerEmail:       it.ManagerEmail,
		ManagerPhone:       it.ManagerPhone,
		ManagerDepartment:  it.ManagerDepartment,
		Budgets:            budgets,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		line := budgetLineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    moneyString(it.Quantity),
			UnitPrice:   moneyString(it.UnitPrice),
			TotalPrice:  moneyString(it.TotalPrice),
			Module:      string(it.Module),
		}
		if it.Setup != 0 || it.Monthly != 0 {
			line.Setup = moneyString(it.Setup)
			line.Monthly = moneyString(it.Monthly)
		}
		lines = append(lines, line)
	}
	return budgetItem{
		ID:         b.ID,
		Module:     string(b.Module),
		Items:      lines,
		TotalValue: moneyString(b.TotalValue),
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(proposalID string, b budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(b.Items))
	for _, l := range b.Items {
		items = append(items, entities.BudgetItem{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    parseMoney(l.Quantity),
			UnitPrice:   parseMoney(l.UnitPrice),
			TotalPrice:  parseMoney(l.TotalPrice),
			Module:      entities.CommercialModule(l.Module),
			Setup:       parseMoney(l.Setup),
			Monthly:     parseMoney(l.Monthly),
		})
	}
	return entities.Budget{
		ID:         b.ID,
		ProposalID: proposalID,
		Module:     entities.CommercialModule(b.Module),
		Items:      items,
		TotalValue: parseMoney(b.TotalValue),
		CreatedAt:  parseTime(b.CreatedAt),
		UpdatedAt:  parseTime(b.UpdatedAt),
	}
}
