package auth

import (
	"context"
	"errors"

	"github.com/shaksmhd/fintech/pkg/models"
)

// ErrBadCredentials is returned when an email/password pair does not
// match a stored account. Callers must not reveal whether the email or
// the password was at fault.
var ErrBadCredentials = errors.New("bad credentials")

// Gateway verifies credentials and issues session tokens.
type Gateway interface {
	// HashPassword derives the storable form of a plaintext password.
	HashPassword(password string) string
	// Authenticate resolves the account for the email and verifies the
	// password against its stored hash. Returns ErrBadCredentials when
	// either step fails.
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
	// IssueToken mints a signed, expiring session token for the account.
	IssueToken(account *models.Account) (string, error)
}
