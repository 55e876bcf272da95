package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
	dydbstore "github.com/shaksmhd/fintech/pkg/storage/dynamodb"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)

	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	loansTable := os.Getenv("DYNAMODB_LOANS_TABLE_NAME")

	if accountsTable == "" || transactionsTable == "" || loansTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dydbstore.New(dbClient, accountsTable, transactionsTable, loansTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It recomputes
// every account's balance from its transaction log and reports drift
// between the stored balance and the log. Accounts are never mutated:
// drift is an operator signal, not something to silently repair.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting balance reconciliation...")

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list accounts: %v", err)
		return err
	}

	drifted := 0
	for _, account := range accounts {
		txs, err := store.ListTransactionsByAccount(ctx, account.AccountNumber)
		if err != nil {
			log.Printf("ERROR: failed to list transactions for account %s: %v", account.AccountNumber, err)
			// Continue to the next account, don't let one failure stop the whole batch.
			continue
		}

		expected := decimal.Zero
		for _, tx := range txs {
			switch tx.Type {
			case models.CREDIT:
				expected = expected.Add(tx.Amount)
			case models.DEBIT:
				expected = expected.Sub(tx.Amount)
			}
		}

		if !expected.Equal(account.Balance) {
			drifted++
			log.Printf("DRIFT: account %s stored balance %s but transaction log sums to %s",
				account.AccountNumber, account.Balance.String(), expected.String())
		}
	}

	if drifted == 0 {
		log.Printf("Reconciliation finished: %d accounts checked, no drift.", len(accounts))
	} else {
		log.Printf("Reconciliation finished: %d accounts checked, %d with drift.", len(accounts), drifted)
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
