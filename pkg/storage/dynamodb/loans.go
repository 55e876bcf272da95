package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

const userIDIndex = "user_id-index"

// CreateLoan creates a new loan record in DynamoDB.
func (s *Store) CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.LoansTableName),
		Item:                marshalLoan(loan),
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err := s.Client.PutItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create loan in DynamoDB: %w", err)
	}

	return loan, nil
}

// GetLoan retrieves a loan from DynamoDB by its ID.
func (s *Store) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loan ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.LoansTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrLoanNotFound
	}

	return unmarshalLoan(result.Item)
}

// ListLoansByUser retrieves all loans for a user via the user ID GSI.
func (s *Store) ListLoansByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LoansTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans by user ID: %w", err)
	}

	return unmarshalLoanList(result.Items)
}

// UpdateLoanStatus overwrites a loan's status unconditionally and returns
// the updated loan. Only the status and update timestamp change; the
// priced fields are immutable.
func (s *Store) UpdateLoanStatus(ctx context.Context, loanID string, status models.LoanStatus) (*models.Loan, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.LoansTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: loanID},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    timeAV(time.Now()),
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to update loan status in DynamoDB: %w", err)
	}

	return unmarshalLoan(result.Attributes)
}
