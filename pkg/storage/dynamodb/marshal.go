package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
)

// Monetary attributes are stored as DynamoDB numbers, which are exact
// decimals, so condition expressions like "balance >= :amount" compare
// them correctly. attributevalue's reflection marshaller cannot see inside
// decimal.Decimal, so items carrying money are assembled by hand here.

func decimalAV(d decimal.Decimal) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: d.String()}
}

func stringAV(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

func timeAV(t time.Time) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if av, ok := item[name].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func decimalAttr(item map[string]types.AttributeValue, name string) (decimal.Decimal, error) {
	av, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return decimal.Zero, fmt.Errorf("attribute %s is not a number", name)
	}
	d, err := decimal.NewFromString(av.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("attribute %s: %w", name, err)
	}
	return d, nil
}

func timeAttr(item map[string]types.AttributeValue, name string) time.Time {
	av, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, av.Value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func intAttr(item map[string]types.AttributeValue, name string) (int, error) {
	av, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("attribute %s is not a number", name)
	}
	var n int
	if _, err := fmt.Sscanf(av.Value, "%d", &n); err != nil {
		return 0, fmt.Errorf("attribute %s: %w", name, err)
	}
	return n, nil
}

func marshalAccount(a *models.Account) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"account_number":           stringAV(a.AccountNumber),
		"first_name":               stringAV(a.FirstName),
		"last_name":                stringAV(a.LastName),
		"other_name":               stringAV(a.OtherName),
		"gender":                   stringAV(a.Gender),
		"address":                  stringAV(a.Address),
		"state_of_origin":          stringAV(a.StateOfOrigin),
		"email":                    stringAV(a.Email),
		"password":                 stringAV(a.Password),
		"phone_number":             stringAV(a.PhoneNumber),
		"alternative_phone_number": stringAV(a.AlternativePhoneNumber),
		"role":                     stringAV(string(a.Role)),
		"status":                   stringAV(string(a.Status)),
		"balance":                  decimalAV(a.Balance),
		"created_at":               timeAV(a.CreatedAt),
		"updated_at":               timeAV(a.UpdatedAt),
	}
}

func unmarshalAccount(item map[string]types.AttributeValue) (*models.Account, error) {
	balance, err := decimalAttr(item, "balance")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	return &models.Account{
		AccountNumber:          stringAttr(item, "account_number"),
		FirstName:              stringAttr(item, "first_name"),
		LastName:               stringAttr(item, "last_name"),
		OtherName:              stringAttr(item, "other_name"),
		Gender:                 stringAttr(item, "gender"),
		Address:                stringAttr(item, "address"),
		StateOfOrigin:          stringAttr(item, "state_of_origin"),
		Email:                  stringAttr(item, "email"),
		Password:               stringAttr(item, "password"),
		PhoneNumber:            stringAttr(item, "phone_number"),
		AlternativePhoneNumber: stringAttr(item, "alternative_phone_number"),
		Role:                   models.Role(stringAttr(item, "role")),
		Status:                 models.AccountStatus(stringAttr(item, "status")),
		Balance:                balance,
		CreatedAt:              timeAttr(item, "created_at"),
		UpdatedAt:              timeAttr(item, "updated_at"),
	}, nil
}

func marshalTransaction(tx *models.Transaction) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":               stringAV(tx.ID),
		"transaction_type": stringAV(string(tx.Type)),
		"amount":           decimalAV(tx.Amount),
		"account_number":   stringAV(tx.AccountNumber),
		"status":           stringAV(string(tx.Status)),
		"created_at":       timeAV(tx.CreatedAt),
	}
}

func unmarshalTransaction(item map[string]types.AttributeValue) (*models.Transaction, error) {
	amount, err := decimalAttr(item, "amount")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}
	return &models.Transaction{
		ID:            stringAttr(item, "id"),
		Type:          models.TransactionType(stringAttr(item, "transaction_type")),
		Amount:        amount,
		AccountNumber: stringAttr(item, "account_number"),
		Status:        models.TransactionStatus(stringAttr(item, "status")),
		CreatedAt:     timeAttr(item, "created_at"),
	}, nil
}

func marshalLoan(l *models.Loan) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":            stringAV(l.ID),
		"user_id":       stringAV(l.UserID),
		"amount":        decimalAV(l.Amount),
		"interest_rate": decimalAV(l.InterestRate),
		"tenure_months": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", l.TenureMonths)},
		"status":        stringAV(string(l.Status)),
		"total_amount":  decimalAV(l.TotalAmount),
		"created_at":    timeAV(l.CreatedAt),
		"updated_at":    timeAV(l.UpdatedAt),
	}
}

func unmarshalLoan(item map[string]types.AttributeValue) (*models.Loan, error) {
	amount, err := decimalAttr(item, "amount")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}
	rate, err := decimalAttr(item, "interest_rate")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}
	total, err := decimalAttr(item, "total_amount")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}
	tenure, err := intAttr(item, "tenure_months")
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}
	return &models.Loan{
		ID:           stringAttr(item, "id"),
		UserID:       stringAttr(item, "user_id"),
		Amount:       amount,
		InterestRate: rate,
		TenureMonths: tenure,
		Status:       models.LoanStatus(stringAttr(item, "status")),
		TotalAmount:  total,
		CreatedAt:    timeAttr(item, "created_at"),
		UpdatedAt:    timeAttr(item, "updated_at"),
	}, nil
}

func unmarshalTransactionList(items []map[string]types.AttributeValue) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		tx, err := unmarshalTransaction(item)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

func unmarshalLoanList(items []map[string]types.AttributeValue) ([]models.Loan, error) {
	loans := make([]models.Loan, 0, len(items))
	for _, item := range items {
		loan, err := unmarshalLoan(item)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *loan)
	}
	return loans, nil
}
