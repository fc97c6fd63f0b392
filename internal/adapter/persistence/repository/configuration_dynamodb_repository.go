package repository

import (
	"context"
	"encoding/json"
	"time"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigurationTableName = "configuration"
	configurationSnapshotKey      = "snapshot"
)

type configurationItem struct {
	ID        string `dynamodbav:"id"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ConfigurationDynamoRepository keeps the configuration snapshot as one item
// whose data attribute holds the JSON document.
//
// Table requirements:
//   - PK: id (string)
type ConfigurationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfigurationRepository = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb *dynamodb.Client, tableName string) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, defaultConfigurationTableName),
	}
}

func (r *ConfigurationDynamoRepository) Get(ctx context.Context) (entities.Configuration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: configurationSnapshotKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Configuration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Configuration{}, nil
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Configuration{}, err
	}
	return decodeConfiguration(it)
}

func (r *ConfigurationDynamoRepository) Save(ctx context.Context, cfg entities.Configuration) (entities.Configuration, error) {
	it, err := encodeConfiguration(cfg, time.Now())
	if err != nil {
		return entities.Configuration{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Configuration{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Configuration{}, err
	}
	return cfg, nil
}

func encodeConfiguration(cfg entities.Configuration, now time.Time) (configurationItem, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return configurationItem{}, err
	}
	return configurationItem{
		ID:        configurationSnapshotKey,
		Data:      string(b),
		UpdatedAt: formatTime(now),
	}, nil
}

func decodeConfiguration(it configurationItem) (entities.Configuration, error) {
	var cfg entities.Configuration
	if it.Data == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(it.Data), &cfg); err != nil {
		return entities.Configuration{}, err
	}
	return cfg, nil
}
