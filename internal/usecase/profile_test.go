package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	testhelpers "github.com/takaex/takaex/internal/test"
	"github.com/takaex/takaex/internal/usecase"
)

func TestProfileGet(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	seeded, _ := users.Create(ctx, &model.User{Name: "John Doe", Phone: "+8801712345678", TotalOrders: 5, CompletedOrders: 3})

	uc := usecase.NewProfileUseCase(users)
	got, err := uc.Profile(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if got.Name != "John Doe" || got.TotalOrders != 5 || got.CompletedOrders != 3 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := uc.Profile(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProfileUpdate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	seeded, _ := users.Create(ctx, &model.User{Name: "John Doe", Email: "john@example.com", Phone: "+8801712345678"})

	uc := usecase.NewProfileUseCase(users)
	updated, err := uc.Update(ctx, seeded.ID, "Jane Doe", "jane@example.com")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@example.com" {
		t.Fatalf("edit not applied: %+v", updated)
	}
	if updated.Phone != "+8801712345678" {
		t.Fatalf("phone must stay untouched: %+v", updated)
	}

	// Blank fields keep their current value.
	kept, err := uc.Update(ctx, seeded.ID, "", "  ")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if kept.Name != "Jane Doe" || kept.Email != "jane@example.com" {
		t.Fatalf("blank edit must keep values: %+v", kept)
	}
}
