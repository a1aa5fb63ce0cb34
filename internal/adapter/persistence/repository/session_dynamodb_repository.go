package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "order_sessions"

// sessionItem is the storage shape. The draft is kept as one JSON document:
// it is always read and written whole (the store owns it exclusively), so
// per-field attributes would buy nothing.
type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Draft     string `dynamodbav:"draft"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists capture sessions in DynamoDB, for
// deployments where the API is not one long-lived process.
//
// Table requirements:
//   - PK: id (string)

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Put(ctx context.Context, s entities.OrderSession) error {
	it, err := toSessionItem(s)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.OrderSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderSession{}, err
	}
	if out.Item == nil {
		return entities.OrderSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderSession{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.OrderSession) (sessionItem, error) {
	draft, err := json.Marshal(s.Draft)
	if err != nil {
		return sessionItem{}, err
	}
	return sessionItem{
		ID:        s.ID,
		Draft:     string(draft),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSessionItem(it sessionItem) (entities.OrderSession, error) {
	if it.ID == "" {
		return entities.OrderSession{}, errors.New("session item missing id")
	}
	var draft entities.OrderDraft
	if err := json.Unmarshal([]byte(it.Draft), &draft); err != nil {
		return entities.OrderSession{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.OrderSession{}, err
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.OrderSession{}, err
	}
	return entities.OrderSession{ID: it.ID, Draft: draft, CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}
