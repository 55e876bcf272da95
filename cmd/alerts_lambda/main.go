package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/shaksmhd/fintech/pkg/notify"
)

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// HandleRequest processes movement alerts from the SQS queue. Today the
// consumer only logs the movement; statement mailing and fraud checks
// hang off this point.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var alert notify.MovementAlert
		if err := json.Unmarshal([]byte(message.Body), &alert); err != nil {
			log.Printf("ERROR: failed to unmarshal movement alert from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Movement alert: account %s %s %s, balance now %s",
			alert.AccountNumber, alert.Type, alert.Amount.String(), alert.Balance.String())
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
