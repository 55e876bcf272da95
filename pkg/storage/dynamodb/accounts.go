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
	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

const emailIndex = "email-index"

// CreateAccount creates a new account record in DynamoDB.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                marshalAccount(account),
		ConditionExpression: aws.String("attribute_not_exists(account_number)"), // Prevent overwriting existing accounts.
	}

	_, err := s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrAccountExists
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// GetAccount retrieves an account from DynamoDB by its account number.
func (s *Store) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"account_number": accountNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account number: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrAccountNotFound
	}

	return unmarshalAccount(result.Item)
}

// GetAccountByEmail retrieves an account by the holder's email via the email GSI.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AccountsTableName),
		IndexName:              aws.String(emailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query account by email: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrAccountNotFound
	}

	return unmarshalAccount(result.Items[0])
}

// UpdateAccount overwrites an existing account record wholesale.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                marshalAccount(account),
		ConditionExpression: aws.String("attribute_exists(account_number)"), // Updates never create accounts.
	}

	_, err := s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account in DynamoDB: %w", err)
	}

	return account, nil
}

// DeleteAccount deletes an account record from DynamoDB.
func (s *Store) DeleteAccount(ctx context.Context, accountNumber string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"account_number": accountNumber})
	if err != nil {
		return fmt.Errorf("failed to marshal account number for deletion: %w", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(account_number)"),
	}

	_, err = s.Client.DeleteItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account from DynamoDB: %w", err)
	}

	return nil
}

// CreditBalance atomically adds amount to the account's balance. The whole
// read-modify-write happens inside DynamoDB's conditional update, so
// concurrent movements on the same account serialize there.
func (s *Store) CreditBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*models.Account, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"account_number": &types.AttributeValueMemberS{Value: accountNumber},
		},
		UpdateExpression:    aws.String("SET balance = balance + :amount, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(account_number)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": decimalAV(amount),
			":now":    timeAV(time.Now()),
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to credit account in DynamoDB: %w", err)
	}

	return unmarshalAccount(result.Attributes)
}

// DebitBalance atomically subtracts amount from the account's balance. The
// sufficient-funds check is part of the condition expression: two
// concurrent debits can never both pass it against a stale balance.
func (s *Store) DebitBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*models.Account, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"account_number": &types.AttributeValueMemberS{Value: accountNumber},
		},
		UpdateExpression:    aws.String("SET balance = balance - :amount, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(account_number) AND balance >= :amount"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": decimalAV(amount),
			":now":    timeAV(time.Now()),
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to debit account in DynamoDB: %w", err)
	}

	return unmarshalAccount(result.Attributes)
}

// ListAccounts retrieves all accounts from DynamoDB.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.AccountsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts table: %w", err)
	}

	accounts := make([]models.Account, 0, len(result.Items))
	for _, item := range result.Items {
		account, err := unmarshalAccount(item)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, nil
}
