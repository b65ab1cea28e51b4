package repositories_test

import (
	"context"
	"errors"
	"testing"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

func TestCategoryRepository_Tree(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.CategoryRepository{DB: db}
	ctx := context.Background()

	root := seedCategory(t, db, "Vehicles", nil)
	child1 := seedCategory(t, db, "Cars", &root.ID)
	child2 := seedCategory(t, db, "Motorbikes", &root.ID)
	other := seedCategory(t, db, "Property", nil)

	parents, err := repo.GetParentCategories(ctx)
	if err != nil {
		t.Fatalf("parents: %v", err)
	}
	if len(parents) != 2 {
		t.Fatalf("expected 2 parent categories, got %d", len(parents))
	}
	for _, p := range parents {
		if p.ParentID != nil {
			t.Fatalf("parent category %d has non-nil parent", p.ID)
		}
	}

	subs, err := repo.GetSubcategories(ctx, root.ID)
	if err != nil {
		t.Fatalf("subcategories: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subcategories, got %d", len(subs))
	}
	if subs[0].ID != child1.ID || subs[1].ID != child2.ID {
		t.Fatalf("unexpected subcategory order: %+v", subs)
	}

	subs, err = repo.GetSubcategories(ctx, other.ID)
	if err != nil {
		t.Fatalf("empty subcategories: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected no subcategories, got %d", len(subs))
	}
}

func TestCategoryRepository_DeleteDetachesChildren(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.CategoryRepository{DB: db}
	ctx := context.Background()

	root := seedCategory(t, db, "Electronics", nil)
	child := seedCategory(t, db, "Phones", &root.ID)

	if err := repo.DeleteCategory(ctx, root.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.GetCategoryByID(ctx, child.ID)
	if err != nil {
		t.Fatalf("get child: %v", err)
	}
	if got.ParentID != nil {
		t.Fatalf("expected detached child, parent_id = %d", *got.ParentID)
	}

	if _, err := repo.GetCategoryByID(ctx, root.ID); !errors.Is(err, models.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_UpdateName(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.CategoryRepository{DB: db}
	ctx := context.Background()

	c := seedCategory(t, db, "Furnature", nil)

	name := "Furniture"
	updated, err := repo.UpdateCategory(ctx, c.ID, models.CategoryUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Furniture" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.ParentID != nil {
		t.Fatalf("parent changed unexpectedly: %v", updated.ParentID)
	}
}

func TestCategoryRepository_Reparent(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.CategoryRepository{DB: db}
	ctx := context.Background()

	a := seedCategory(t, db, "Home", nil)
	b := seedCategory(t, db, "Garden", nil)
	child := seedCategory(t, db, "Tools", &a.ID)

	updated, err := repo.UpdateCategory(ctx, child.ID, models.CategoryUpdate{
		ParentID: models.OptionalInt{Set: true, Valid: true, Value: b.ID},
	})
	if err != nil {
		t.Fatalf("reparent: %v", err)
	}
	if updated.ParentID == nil || *updated.ParentID != b.ID {
		t.Fatalf("unexpected parent: %v", updated.ParentID)
	}

	// explicit null re-parents back to root
	updated, err = repo.UpdateCategory(ctx, child.ID, models.CategoryUpdate{
		ParentID: models.OptionalInt{Set: true},
	})
	if err != nil {
		t.Fatalf("reparent to root: %v", err)
	}
	if updated.ParentID != nil {
		t.Fatalf("expected root category, parent_id = %d", *updated.ParentID)
	}
}

func TestCategoryRepository_UpdateEmpty_NoOp(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.CategoryRepository{DB: db}
	ctx := context.Background()

	root := seedCategory(t, db, "Jobs", nil)
	child := seedCategory(t, db, "Part-time", &root.ID)

	got, err := repo.UpdateCategory(ctx, child.ID, models.CategoryUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if got.Name != child.Name {
		t.Fatalf("name changed on empty update: %q", got.Name)
	}
	if got.ParentID == nil || *got.ParentID != root.ID {
		t.Fatalf("parent changed on empty update: %v", got.ParentID)
	}
}
