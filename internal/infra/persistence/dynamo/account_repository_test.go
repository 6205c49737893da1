package dynamo

import (
	"context"
	"testing"
	"time"

	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records the last input per operation and returns canned responses.
type fakeAPI struct {
	putInput    *dynamodb.PutItemInput
	putErr      error
	getInput    *dynamodb.GetItemInput
	getOutput   *dynamodb.GetItemOutput
	getErr      error
	updateInput *dynamodb.UpdateItemInput
	updateOut   *dynamodb.UpdateItemOutput
	updateErr   error
	deleteInput *dynamodb.DeleteItemInput
	deleteErr   error
}

func (f *fakeAPI) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params

	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeAPI) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInput = params
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOutput == nil {
		return &dynamodb.GetItemOutput{}, nil
	}

	return f.getOutput, nil
}

func (f *fakeAPI) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateInput = params
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}

	return f.updateOut, nil
}

func (f *fakeAPI) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteInput = params

	return &dynamodb.DeleteItemOutput{}, f.deleteErr
}

func marshaledAccount(t *testing.T, account *entity.Account) map[string]types.AttributeValue {
	t.Helper()

	item, err := attributevalue.MarshalMap(toItem(account))
	require.NoError(t, err)

	return item
}

func sampleAccount() *entity.Account {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	return &entity.Account{
		Role:         entity.RoleRuralUser,
		Email:        "a@b.com",
		FullName:     "Asha Devi",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountRepository_InsertIfAbsent_SetsAbsenceCondition(t *testing.T) {
	api := &fakeAPI{}
	repo := NewAccountRepository(api, "users_table")

	require.NoError(t, repo.InsertIfAbsent(context.Background(), sampleAccount()))

	require.NotNil(t, api.putInput)
	assert.Equal(t, "users_table", *api.putInput.TableName)
	require.NotNil(t, api.putInput.ConditionExpression)
	assert.Contains(t, *api.putInput.ConditionExpression, "attribute_not_exists")
	// "role" is a DynamoDB reserved word, so it must go through name substitution.
	assert.Contains(t, api.putInput.ExpressionAttributeNames, "#0")
}

func TestAccountRepository_InsertIfAbsent_ConditionFailureMapsToExists(t *testing.T) {
	api := &fakeAPI{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewAccountRepository(api, "users_table")

	err := repo.InsertIfAbsent(context.Background(), sampleAccount())
	assert.ErrorIs(t, err, repository.ErrAccountExists)
}

func TestAccountRepository_Get_RoundTrip(t *testing.T) {
	account := sampleAccount()
	api := &fakeAPI{getOutput: &dynamodb.GetItemOutput{Item: marshaledAccount(t, account)}}
	repo := NewAccountRepository(api, "users_table")

	got, err := repo.Get(context.Background(), entity.RoleRuralUser, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, *account, *got)

	require.NotNil(t, api.getInput)
	assert.True(t, *api.getInput.ConsistentRead)
	assert.Equal(t,
		&types.AttributeValueMemberS{Value: "RURAL_USER"},
		api.getInput.Key["role"])
	assert.Equal(t,
		&types.AttributeValueMemberS{Value: "a@b.com"},
		api.getInput.Key["email"])
}

func TestAccountRepository_Get_EmptyItemIsNotFound(t *testing.T) {
	api := &fakeAPI{}
	repo := NewAccountRepository(api, "users_table")

	_, err := repo.Get(context.Background(), entity.RoleRuralUser, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ConditionalUpdate_PatchShapesExpression(t *testing.T) {
	account := sampleAccount()
	account.FullName = "New Name"
	api := &fakeAPI{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshaledAccount(t, account)}}
	repo := NewAccountRepository(api, "users_table")

	newName := "New Name"
	got, err := repo.ConditionalUpdate(context.Background(), entity.RoleRuralUser, "a@b.com", repository.AccountPatch{FullName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)

	require.NotNil(t, api.updateInput)
	assert.Equal(t, types.ReturnValueAllNew, api.updateInput.ReturnValues)
	require.NotNil(t, api.updateInput.ConditionExpression)
	assert.Contains(t, *api.updateInput.ConditionExpression, "attribute_exists")

	names := make(map[string]bool)
	for _, name := range api.updateInput.ExpressionAttributeNames {
		names[name] = true
	}
	assert.True(t, names["updated_at"])
	assert.True(t, names["full_name"])
	// Password was not in the patch, so the stored hash stays untouched.
	assert.False(t, names["password_hash"])
}

func TestAccountRepository_ConditionalUpdate_ConditionFailureMapsToNotFound(t *testing.T) {
	api := &fakeAPI{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewAccountRepository(api, "users_table")

	newName := "New Name"
	_, err := repo.ConditionalUpdate(context.Background(), entity.RoleRuralUser, "a@b.com", repository.AccountPatch{FullName: &newName})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ConditionalDelete_SetsExistenceCondition(t *testing.T) {
	api := &fakeAPI{}
	repo := NewAccountRepository(api, "users_table")

	require.NoError(t, repo.ConditionalDelete(context.Background(), entity.RoleRuralUser, "a@b.com"))

	require.NotNil(t, api.deleteInput)
	require.NotNil(t, api.deleteInput.ConditionExpression)
	assert.Contains(t, *api.deleteInput.ConditionExpression, "attribute_exists")
}

func TestAccountRepository_ConditionalDelete_ConditionFailureMapsToNotFound(t *testing.T) {
	api := &fakeAPI{deleteErr: &types.ConditionalCheckFailedException{}}
	repo := NewAccountRepository(api, "users_table")

	err := repo.ConditionalDelete(context.Background(), entity.RoleRuralUser, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestItemConversion_RoundTrip(t *testing.T) {
	account := sampleAccount()

	got, err := fromItem(toItem(account))
	require.NoError(t, err)
	assert.Equal(t, *account, *got)
}

func TestFromItem_BadTimestamp(t *testing.T) {
	item := toItem(sampleAccount())
	item.CreatedAt = "not-a-timestamp"

	_, err := fromItem(item)
	assert.Error(t, err)
}
