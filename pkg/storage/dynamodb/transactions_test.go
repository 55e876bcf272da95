package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage/dynamodb/mocks"
)

func testTransaction() *models.Transaction {
	return &models.Transaction{
		ID:            uuid.New().String(),
		Type:          models.CREDIT,
		Amount:        decimal.NewFromInt(25),
		AccountNumber: "2026123456",
		Status:        models.SUCCESS,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRecordTransaction(t *testing.T) {
	tx := testTransaction()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "accounts", "transactions", "loans")
		err := store.RecordTransaction(context.Background(), tx)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "transactions", "loans")
		err := store.RecordTransaction(context.Background(), tx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record transaction in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestListTransactionsByAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		first := testTransaction()
		second := testTransaction()
		second.Type = models.DEBIT

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{marshalTransaction(first), marshalTransaction(second)},
		}, nil)

		store := New(mockClient, "accounts", "transactions", "loans")
		txs, err := store.ListTransactionsByAccount(context.Background(), "2026123456")

		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, *first, txs[0])
		assert.Equal(t, *second, txs[1])
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

		store := New(mockClient, "accounts", "transactions", "loans")
		txs, err := store.ListTransactionsByAccount(context.Background(), "2026000000")

		assert.NoError(t, err)
		assert.Empty(t, txs)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "transactions", "loans")
		_, err := store.ListTransactionsByAccount(context.Background(), "2026123456")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query transactions by account number")
		mockClient.AssertExpectations(t)
	})
}
