package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/shaksmhd/fintech/pkg/auth"
	"github.com/shaksmhd/fintech/pkg/directory"
	"github.com/shaksmhd/fintech/pkg/handlers"
	"github.com/shaksmhd/fintech/pkg/ledger"
	"github.com/shaksmhd/fintech/pkg/loans"
	"github.com/shaksmhd/fintech/pkg/notify"
	"github.com/shaksmhd/fintech/pkg/recorder"
	"github.com/shaksmhd/fintech/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
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

	tokenSecret := os.Getenv("AUTH_TOKEN_SECRET")
	if tokenSecret == "" {
		log.Fatal("AUTH_TOKEN_SECRET environment variable not set")
	}

	// Movement alerts are optional: without a queue the service runs
	// with alerts disabled.
	var notifier notify.Notifier = &notify.NoopNotifier{}
	if queueURL := os.Getenv("SQS_ALERTS_QUEUE_URL"); queueURL != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_ALERTS_QUEUE_URL not set, movement alerts disabled")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Create our storage implementation
	store := dynamodb.New(dbClient, accountsTable, transactionsTable, loansTable)

	// Create our services
	gateway := auth.NewHMACGateway(store, []byte(tokenSecret))
	registry := directory.New(store, gateway, logger)
	rec := recorder.New(store, logger)
	ldgr := ledger.New(store, rec, notifier, logger)
	originator := loans.New(store, logger)

	router := handlers.NewRouter(registry, ldgr, originator, rec, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
