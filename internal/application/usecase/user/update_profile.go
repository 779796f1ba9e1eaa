// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for updating a user profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID        uuid.UUID
	Name          *string
	MonthlyBudget *decimal.Decimal
}

// UpdateProfileOutput represents the output of updating a user profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles updating the authenticated user's profile.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute updates the user profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.MonthlyBudget != nil {
		budget := *input.MonthlyBudget
		user.MonthlyBudget = &budget
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
