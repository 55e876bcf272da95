package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shaksmhd/fintech/pkg/models"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sqs.SendMessageOutput{}, nil
}

func TestPublishMovement(t *testing.T) {
	alert := MovementAlert{
		AccountNumber: "2026123456",
		Type:          models.CREDIT,
		Amount:        decimal.NewFromInt(50),
		Balance:       decimal.NewFromInt(150),
		Timestamp:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		client := &fakeSQS{}
		n := NewSQSNotifier(client, "https://sqs.example.com/alerts")

		err := n.PublishMovement(context.Background(), alert)

		assert.NoError(t, err)
		assert.Len(t, client.inputs, 1)
		assert.Equal(t, "https://sqs.example.com/alerts", *client.inputs[0].QueueUrl)

		var decoded MovementAlert
		assert.NoError(t, json.Unmarshal([]byte(*client.inputs[0].MessageBody), &decoded))
		assert.Equal(t, alert.AccountNumber, decoded.AccountNumber)
		assert.Equal(t, alert.Type, decoded.Type)
		assert.True(t, decoded.Balance.Equal(alert.Balance))
	})

	t.Run("Send Error", func(t *testing.T) {
		client := &fakeSQS{err: assert.AnError}
		n := NewSQSNotifier(client, "https://sqs.example.com/alerts")

		err := n.PublishMovement(context.Background(), alert)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send movement alert to SQS")
	})
}
