package directory

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/shaksmhd/fintech/pkg/storage"
)

// numberAttempts bounds the issuance retry loop. Collisions are rare
// (one in a million per year prefix), so exhausting this is a sign of
// something badly wrong, not bad luck.
const numberAttempts = 5

// errNumbersExhausted is returned when issuance keeps colliding with
// existing accounts.
var errNumbersExhausted = errors.New("could not issue a unique account number")

// issueAccountNumber generates candidate account numbers of the form
// <current year><6 random digits> and returns the first one not already
// registered. Uniqueness is re-checked by the store's conditional create,
// so a race between two issuances still cannot produce duplicates.
func issueAccountNumber(ctx context.Context, accounts storage.AccountStore) (string, error) {
	year := strconv.Itoa(time.Now().Year())

	for i := 0; i < numberAttempts; i++ {
		candidate := fmt.Sprintf("%s%06d", year, rand.Intn(1000000))

		_, err := accounts.GetAccount(ctx, candidate)
		if errors.Is(err, storage.ErrAccountNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check account number availability: %w", err)
		}
	}

	return "", errNumbersExhausted
}
