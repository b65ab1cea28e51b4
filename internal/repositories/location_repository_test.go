package repositories_test

import (
	"context"
	"errors"
	"testing"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

func TestLocationRepository_DefaultCountry(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.LocationRepository{DB: db}
	ctx := context.Background()

	l, err := repo.CreateLocation(ctx, models.Location{City: "Peshawar"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.Country != "Pakistan" {
		t.Fatalf("expected default country, got %q", l.Country)
	}

	got, err := repo.GetLocationByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Country != "Pakistan" || got.City != "Peshawar" {
		t.Fatalf("unexpected location: %+v", got)
	}
	if got.State != nil {
		t.Fatalf("expected nil state, got %q", *got.State)
	}
}

func TestLocationRepository_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.LocationRepository{DB: db}
	ctx := context.Background()

	l := seedLocation(t, db, "Quetta")

	state := "Balochistan"
	updated, err := repo.UpdateLocation(ctx, l.ID, models.LocationUpdate{State: &state})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.State == nil || *updated.State != "Balochistan" {
		t.Fatalf("state not updated: %v", updated.State)
	}
	if updated.City != "Quetta" {
		t.Fatalf("city changed unexpectedly: %q", updated.City)
	}
}

func TestLocationRepository_UpdateEmpty_NoOp(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.LocationRepository{DB: db}
	ctx := context.Background()

	l := seedLocation(t, db, "Sialkot")

	got, err := repo.UpdateLocation(ctx, l.ID, models.LocationUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if got.City != l.City || got.Country != l.Country || got.State != nil {
		t.Fatalf("record changed on empty update: %+v", got)
	}
}

func TestLocationRepository_DeleteDetachesAds(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.LocationRepository{DB: db}
	adRepo := repositories.AdRepository{DB: db}
	ctx := context.Background()

	u := seedUser(t, db, "Seller", "seller@example.com")
	c := seedCategory(t, db, "Property", nil)
	l := seedLocation(t, db, "Islamabad")

	ad, err := adRepo.CreateAd(ctx, models.Ad{
		UserID:      u.ID,
		CategoryID:  c.ID,
		LocationID:  &l.ID,
		Title:       "Apartment",
		Description: "2 bed",
		Price:       1,
		Condition:   models.ConditionNew,
	})
	if err != nil {
		t.Fatalf("create ad: %v", err)
	}

	if err := repo.DeleteLocation(ctx, l.ID); err != nil {
		t.Fatalf("delete location: %v", err)
	}

	got, err := adRepo.GetAdByID(ctx, ad.ID)
	if err != nil {
		t.Fatalf("get ad: %v", err)
	}
	if got.LocationID != nil {
		t.Fatalf("expected detached ad, location_id = %d", *got.LocationID)
	}
}

func TestLocationRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.LocationRepository{DB: db}

	if _, err := repo.GetLocationByID(context.Background(), 999); !errors.Is(err, models.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}
