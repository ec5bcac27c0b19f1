package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

func TestSelectedLocationRoundTrip(t *testing.T) {
	store := newFakeUserStore()
	store.users["user-1"] = &domain.User{ID: "user-1", Name: "Test User"}
	service := NewUserService(store, nopLogger{})

	saved := domain.GeoPoint{
		Lat:     14.5995,
		Lon:     120.9842,
		Address: "Manila, Philippines",
	}

	if err := service.SaveSelectedLocation(context.Background(), "user-1", saved); err != nil {
		t.Fatalf("SaveSelectedLocation: %v", err)
	}

	got, err := service.GetSelectedLocation(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetSelectedLocation: %v", err)
	}
	if *got != saved {
		t.Errorf("location = %+v, want %+v", got, saved)
	}
}

func TestGetSelectedLocationMissing(t *testing.T) {
	store := newFakeUserStore()
	store.users["user-1"] = &domain.User{ID: "user-1", Name: "Test User"}
	service := NewUserService(store, nopLogger{})

	if _, err := service.GetSelectedLocation(context.Background(), "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetSelectedLocation without saved location = %v, want ErrNotFound", err)
	}
}
