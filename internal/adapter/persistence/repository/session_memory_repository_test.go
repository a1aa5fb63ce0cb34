package repository

import (
	"context"
	"testing"

	"fibra_vendas/internal/domain/entities"
)

func TestSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		repo := NewSessionMemoryRepository()
		s := entities.OrderSession{ID: "s-1", Draft: entities.OrderDraft{Step: 2, SelectedApps: []entities.AppOption{{ID: "netflix"}}}}
		if err := repo.Put(ctx, s); err != nil {
			t.Fatalf("put: %v", err)
		}

		got, err := repo.Get(ctx, "s-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "s-1" || got.Draft.Step != 2 || len(got.Draft.SelectedApps) != 1 {
			t.Fatalf("unexpected session %+v", got)
		}
	})

	t.Run("missing id yields zero session", func(t *testing.T) {
		repo := NewSessionMemoryRepository()
		got, err := repo.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero session, got %+v", got)
		}
	})

	t.Run("snapshots do not alias the store", func(t *testing.T) {
		repo := NewSessionMemoryRepository()
		s := entities.OrderSession{ID: "s-1", Draft: entities.OrderDraft{SelectedApps: []entities.AppOption{{ID: "netflix"}}}}
		if err := repo.Put(ctx, s); err != nil {
			t.Fatalf("put: %v", err)
		}
		s.Draft.SelectedApps[0] = entities.AppOption{ID: "hbomax"}

		first, _ := repo.Get(ctx, "s-1")
		first.Draft.SelectedApps[0] = entities.AppOption{ID: "disney"}

		second, _ := repo.Get(ctx, "s-1")
		if second.Draft.SelectedApps[0].ID != "netflix" {
			t.Fatalf("stored draft was aliased: %+v", second.Draft.SelectedApps)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo := NewSessionMemoryRepository()
		if err := repo.Put(ctx, entities.OrderSession{ID: "s-1"}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := repo.Delete(ctx, "s-1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, _ := repo.Get(ctx, "s-1")
		if got.ID != "" {
			t.Fatalf("expected deleted session, got %+v", got)
		}
	})
}

func TestCatalogStaticRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogStaticRepository()

	plans, err := repo.Plans(ctx)
	if err != nil {
		t.Fatalf("plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}

	// Reads return copies; mutating one must not leak into the next.
	plans[0].Price = 1
	again, _ := repo.Plans(ctx)
	if again[0].Price == 1 {
		t.Fatal("catalog entries were aliased between reads")
	}

	apps, _ := repo.Apps(ctx)
	if len(apps) != 6 {
		t.Fatalf("expected 6 apps, got %d", len(apps))
	}
	services, _ := repo.Services(ctx)
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}
	condos, _ := repo.Condominios(ctx)
	if len(condos) != 3 {
		t.Fatalf("expected 3 condominios, got %d", len(condos))
	}
	slots, _ := repo.TimeSlots(ctx)
	if len(slots) != 4 {
		t.Fatalf("expected 4 time slots, got %d", len(slots))
	}
}
