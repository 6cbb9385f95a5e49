package usecases

import (
	"context"

	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	Authenticate(username, password string) bool
}

// TokenIssuer signs staff access tokens.
type TokenIssuer interface {
	Generate() (string, error)
	AccessExpSeconds() int64
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	credentials CredentialVerifier
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(credentials CredentialVerifier, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute exchanges the staff credential for a bearer token. Wrong
// username and wrong password produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	if !uc.credentials.Authenticate(cmd.Username, cmd.Password) {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("ongeldige inloggegevens")
	}

	token, err := uc.tokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("staff logged in", "username", cmd.Username)

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.tokens.AccessExpSeconds(),
	}, nil
}
