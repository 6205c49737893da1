package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/repository"
)

// API is the subset of the DynamoDB client the repository uses.
// *dynamodb.Client satisfies it; tests substitute a fake.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// accountItem is the wire shape of an account record in the users table.
// Timestamps are stored as RFC 3339 UTC strings.
type accountItem struct {
	Role         string `dynamodbav:"role"`
	Email        string `dynamodbav:"email"`
	FullName     string `dynamodbav:"full_name"`
	PasswordHash string `dynamodbav:"password_hash"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// accountRepository implements repository.AccountRepository against DynamoDB.
type accountRepository struct {
	client API
	table  string
}

// NewAccountRepository is the constructor for the DynamoDB-backed account repository.
func NewAccountRepository(client API, table string) repository.AccountRepository {
	return &accountRepository{
		client: client,
		table:  table,
	}
}

// InsertIfAbsent persists the account with a condition that the key does not
// already exist, so two concurrent registrations resolve to exactly one winner.
func (r *accountRepository) InsertIfAbsent(ctx context.Context, account *entity.Account) error {
	item, err := attributevalue.MarshalMap(toItem(account))
	if err != nil {
		return errors.Wrap(err, "failed to marshal account item")
	}

	cond := expression.AttributeNotExists(expression.Name("role")).
		And(expression.AttributeNotExists(expression.Name("email")))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return errors.Wrap(err, "failed to build condition expression")
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.table),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return repository.ErrAccountExists
		}

		return errors.Wrap(err, "failed to put account item")
	}

	return nil
}

// Get retrieves a single account with a strongly consistent read.
func (r *accountRepository) Get(ctx context.Context, role entity.Role, email string) (*entity.Account, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            key(role, email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account item")
	}
	if len(out.Item) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	var item accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal account item")
	}

	return fromItem(&item)
}

// ConditionalUpdate applies the patch only if the key exists. UpdatedAt is
// bumped unconditionally; the returned account reflects the new values.
func (r *accountRepository) ConditionalUpdate(ctx context.Context, role entity.Role, email string, patch repository.AccountPatch) (*entity.Account, error) {
	update := expression.Set(
		expression.Name("updated_at"),
		expression.Value(time.Now().UTC().Format(time.RFC3339)),
	)
	if patch.FullName != nil {
		update = update.Set(expression.Name("full_name"), expression.Value(*patch.FullName))
	}
	if patch.PasswordHash != nil {
		update = update.Set(expression.Name("password_hash"), expression.Value(*patch.PasswordHash))
	}

	cond := expression.AttributeExists(expression.Name("role")).
		And(expression.AttributeExists(expression.Name("email")))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build update expression")
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       key(role, email),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to update account item")
	}

	var item accountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal updated account item")
	}

	return fromItem(&item)
}

// ConditionalDelete removes the account only if the key exists.
func (r *accountRepository) ConditionalDelete(ctx context.Context, role entity.Role, email string) error {
	cond := expression.AttributeExists(expression.Name("role")).
		And(expression.AttributeExists(expression.Name("email")))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return errors.Wrap(err, "failed to build condition expression")
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.table),
		Key:                       key(role, email),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to delete account item")
	}

	return nil
}

func key(role entity.Role, email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"role":  &types.AttributeValueMemberS{Value: role.String()},
		"email": &types.AttributeValueMemberS{Value: email},
	}
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException

	return errors.As(err, &ccf)
}

func toItem(account *entity.Account) *accountItem {
	return &accountItem{
		Role:         account.Role.String(),
		Email:        account.Email,
		FullName:     account.FullName,
		PasswordHash: account.PasswordHash,
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    account.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func fromItem(item *accountItem) (*entity.Account, error) {
	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse created_at")
	}
	updatedAt, err := time.Parse(time.RFC3339, item.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse updated_at")
	}

	return &entity.Account{
		Role:         entity.Role(item.Role),
		Email:        item.Email,
		FullName:     item.FullName,
		PasswordHash: item.PasswordHash,
		IsActive:     item.IsActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
