package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidToken is returned when a token fails signature or expiry
// checks.
var ErrInvalidToken = errors.New("invalid token")

// HMACGateway implements the Gateway interface with HMAC-SHA256 password
// hashes and signed expiring tokens, both keyed by a shared secret.
type HMACGateway struct {
	accounts storage.AccountStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewHMACGateway creates a new HMACGateway.
func NewHMACGateway(accounts storage.AccountStore, secret []byte) *HMACGateway {
	return &HMACGateway{
		accounts: accounts,
		secret:   secret,
		tokenTTL: DefaultTokenTTL,
		now:      time.Now,
	}
}

// Make sure we conform to the interface
var _ Gateway = (*HMACGateway)(nil)

// HashPassword derives the storable form of a plaintext password.
func (g *HMACGateway) HashPassword(password string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// Authenticate resolves the account by email and verifies the password
// in constant time. Both an unknown email and a wrong password collapse
// into ErrBadCredentials.
func (g *HMACGateway) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := g.accounts.GetAccountByEmail(ctx, email)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account for authentication: %w", err)
	}

	if !hmac.Equal([]byte(g.HashPassword(password)), []byte(account.Password)) {
		return nil, ErrBadCredentials
	}

	return account, nil
}

// IssueToken mints a token of the form base64(email|expiry).signature
// where the signature is an HMAC-SHA256 over the payload.
func (g *HMACGateway) IssueToken(account *models.Account) (string, error) {
	expiry := g.now().Add(g.tokenTTL).Unix()
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(account.Email + "|" + strconv.FormatInt(expiry, 10)))
	return payload + "." + g.sign(payload), nil
}

// VerifyToken checks the token's signature and expiry and returns the
// email it was issued for.
func (g *HMACGateway) VerifyToken(token string) (string, error) {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(g.sign(payload)), []byte(signature)) {
		return "", ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidToken
	}
	email, expiryStr, ok := strings.Cut(string(raw), "|")
	if !ok {
		return "", ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil || g.now().Unix() > expiry {
		return "", ErrInvalidToken
	}

	return email, nil
}

func (g *HMACGateway) sign(payload string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
