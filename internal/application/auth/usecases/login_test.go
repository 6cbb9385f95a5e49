package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type mockCredentialVerifier struct {
	AuthenticateFunc func(username, password string) bool
}

func (m *mockCredentialVerifier) Authenticate(username, password string) bool {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(username, password)
	}
	return false
}

type mockTokenIssuer struct {
	GenerateFunc func() (string, error)
}

func (m *mockTokenIssuer) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "token", nil
}

func (m *mockTokenIssuer) AccessExpSeconds() int64 {
	return 86400
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }

func TestLoginUseCase_Execute_Success(t *testing.T) {
	verifier := &mockCredentialVerifier{
		AuthenticateFunc: func(username, password string) bool {
			return username == "arts" && password == "geheim"
		},
	}
	issuer := &mockTokenIssuer{
		GenerateFunc: func() (string, error) {
			return "signed-token", nil
		},
	}

	useCase := NewLoginUseCase(verifier, issuer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Username: "arts",
		Password: "geheim",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, int64(86400), result.ExpiresIn)
}

func TestLoginUseCase_Execute_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name    string
		command LoginCommand
	}{
		{name: "wrong password", command: LoginCommand{Username: "arts", Password: "fout"}},
		{name: "wrong username", command: LoginCommand{Username: "verpleger", Password: "geheim"}},
	}

	verifier := &mockCredentialVerifier{
		AuthenticateFunc: func(username, password string) bool {
			return username == "arts" && password == "geheim"
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewLoginUseCase(verifier, &mockTokenIssuer{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
		})
	}
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	useCase := NewLoginUseCase(&mockCredentialVerifier{}, &mockTokenIssuer{}, &mockLogger{})

	for _, cmd := range []LoginCommand{
		{},
		{Username: "arts"},
		{Password: "geheim"},
	} {
		result, err := useCase.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	}
}

func TestLoginUseCase_Execute_TokenGenerationFailure(t *testing.T) {
	verifier := &mockCredentialVerifier{
		AuthenticateFunc: func(username, password string) bool { return true },
	}
	issuer := &mockTokenIssuer{
		GenerateFunc: func() (string, error) {
			return "", errors.New("signing failure")
		},
	}

	useCase := NewLoginUseCase(verifier, issuer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Username: "arts",
		Password: "geheim",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
