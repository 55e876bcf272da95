package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shaksmhd/fintech/pkg/models"
)

const accountNumberIndex = "account_number-index"

// RecordTransaction appends a transaction record. The log is append-only:
// the condition expression rejects any write that would touch an existing
// record.
func (s *Store) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                marshalTransaction(tx),
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err := s.Client.PutItem(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to record transaction in DynamoDB: %w", err)
	}

	return nil
}

// ListTransactionsByAccount retrieves all recorded movements for an account.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(accountNumberIndex),
		KeyConditionExpression: aws.String("account_number = :accountNumber"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":accountNumber": &types.AttributeValueMemberS{Value: accountNumber},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by account number: %w", err)
	}

	return unmarshalTransactionList(result.Items)
}
