package identity

import (
	"context"
	"unicode"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
)

const otpLength = 6

// MockProvider accepts any phone longer than 5 characters and answers a
// static verified profile with the phone echoed back. Placeholder behaviour
// carried over from the original client on purpose.
type MockProvider struct{}

// NewMockProvider constructs the placeholder verifier.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Verify applies the placeholder length rule. The password is ignored.
func (p *MockProvider) Verify(ctx context.Context, phone, password string) (*model.User, error) {
	if len(phone) <= 5 {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return p.profile(phone), nil
}

// VerifyOTP accepts any 6-digit code for a valid phone.
func (p *MockProvider) VerifyOTP(ctx context.Context, phone, code string) (*model.User, error) {
	if len(phone) <= 5 {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if len(code) != otpLength {
		return nil, domainErrors.ErrInvalidCredentials
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return nil, domainErrors.ErrInvalidCredentials
		}
	}
	return p.profile(phone), nil
}

func (p *MockProvider) profile(phone string) *model.User {
	return &model.User{
		Name:            "John Doe",
		Email:           "john@example.com",
		Phone:           phone,
		Verified:        true,
		TotalOrders:     5,
		CompletedOrders: 3,
	}
}
