package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/settleflow/settleflow/internal/models"
	"github.com/settleflow/settleflow/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "settleflow-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestGroupStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates ID and timestamp", func(t *testing.T) {
		group := &models.Group{
			Name:    "Roommates",
			Members: []string{"addr1", "addr2", "addr3"},
		}

		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetGroup retrieves members", func(t *testing.T) {
		group := &models.Group{
			Name:    "Ski Trip",
			Members: []string{"addr1", "addr2"},
		}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		retrieved, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if retrieved.Name != "Ski Trip" {
			t.Errorf("name = %q, want %q", retrieved.Name, "Ski Trip")
		}
		if len(retrieved.Members) != 2 {
			t.Errorf("members = %v, want 2 entries", retrieved.Members)
		}
	})

	t.Run("GetGroup fails for unknown ID", func(t *testing.T) {
		if _, err := store.GetGroup(ctx, "no-such-group"); err == nil {
			t.Error("expected error for unknown group")
		}
	})

	t.Run("AddGroupMembers skips duplicates", func(t *testing.T) {
		group := &models.Group{Name: "Lunch", Members: []string{"addr1"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if err := store.AddGroupMembers(ctx, group.ID, []string{"addr1", "addr2"}); err != nil {
			t.Fatalf("AddGroupMembers failed: %v", err)
		}

		retrieved, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(retrieved.Members) != 2 {
			t.Errorf("members = %v, want 2 entries", retrieved.Members)
		}
	})

	t.Run("RemoveGroupMember", func(t *testing.T) {
		group := &models.Group{Name: "Dinner", Members: []string{"addr1", "addr2"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if err := store.RemoveGroupMember(ctx, group.ID, "addr2"); err != nil {
			t.Fatalf("RemoveGroupMember failed: %v", err)
		}
		if err := store.RemoveGroupMember(ctx, group.ID, "addr2"); err == nil {
			t.Error("expected error removing absent member")
		}

		retrieved, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(retrieved.Members) != 1 || retrieved.Members[0] != "addr1" {
			t.Errorf("members = %v, want [addr1]", retrieved.Members)
		}
	})

	t.Run("DeleteGroup cascades to expenses", func(t *testing.T) {
		group := &models.Group{Name: "Trip", Members: []string{"addr1", "addr2"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		expense := &models.Expense{
			GroupID:     group.ID,
			Description: "Fuel",
			Amount:      45.50,
			PaidBy:      "addr1",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteGroup(ctx, group.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, expense.ID); err == nil {
			t.Error("expected expense to be deleted with its group")
		}
	})
}

func TestExpenseStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Flat", Members: []string{"addr1", "addr2"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	t.Run("create and get", func(t *testing.T) {
		expense := &models.Expense{
			GroupID:     group.ID,
			Description: "Groceries",
			Amount:      90,
			PaidBy:      "addr1",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" || expense.CreatedAt == 0 {
			t.Errorf("expected generated ID and timestamp, got %+v", expense)
		}

		retrieved, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.Amount != 90 || retrieved.PaidBy != "addr1" {
			t.Errorf("retrieved = %+v", retrieved)
		}
	})

	t.Run("list by group", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Errorf("got %d expenses, want 1", len(expenses))
		}
	})

	t.Run("delete", func(t *testing.T) {
		expense := &models.Expense{
			GroupID: group.ID, Description: "Beer", Amount: 12, PaidBy: "addr2",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, expense.ID); err == nil {
			t.Error("expected error deleting twice")
		}
	})
}

func TestSettlementStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Flat", Members: []string{"addr1", "addr2"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	settlement := &models.Settlement{
		GroupID:   group.ID,
		From:      "addr2",
		To:        "addr1",
		Amount:    30,
		Note:      "rent share",
		CreatedBy: "user-1",
	}

	if err := store.CreateSettlement(ctx, settlement); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}
	if settlement.ID == "" {
		t.Error("expected generated settlement ID")
	}

	retrieved, err := store.GetSettlement(ctx, settlement.ID)
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	if retrieved.From != "addr2" || retrieved.To != "addr1" || retrieved.Note != "rent share" {
		t.Errorf("retrieved = %+v", retrieved)
	}

	settlements, err := store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListSettlementsByGroup failed: %v", err)
	}
	if len(settlements) != 1 {
		t.Errorf("got %d settlements, want 1", len(settlements))
	}

	t.Run("list by member matches either side", func(t *testing.T) {
		if err := store.AddGroupMembers(ctx, group.ID, []string{"addr3"}); err != nil {
			t.Fatalf("AddGroupMembers failed: %v", err)
		}
		second := &models.Settlement{
			GroupID:   group.ID,
			From:      "addr3",
			To:        "addr1",
			Amount:    15,
			CreatedBy: "user-1",
		}
		if err := store.CreateSettlement(ctx, second); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		forAddr1, err := store.ListSettlementsByMember(ctx, group.ID, "addr1")
		if err != nil {
			t.Fatalf("ListSettlementsByMember failed: %v", err)
		}
		if len(forAddr1) != 2 {
			t.Errorf("addr1: got %d settlements, want 2", len(forAddr1))
		}

		forAddr3, err := store.ListSettlementsByMember(ctx, group.ID, "addr3")
		if err != nil {
			t.Fatalf("ListSettlementsByMember failed: %v", err)
		}
		if len(forAddr3) != 1 || forAddr3[0].From != "addr3" {
			t.Errorf("addr3: got %+v, want the single addr3 payment", forAddr3)
		}

		outsider, err := store.ListSettlementsByMember(ctx, group.ID, "addr9")
		if err != nil {
			t.Fatalf("ListSettlementsByMember failed: %v", err)
		}
		if len(outsider) != 0 {
			t.Errorf("addr9: got %d settlements, want 0", len(outsider))
		}
	})
}

func TestNotFoundErrors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetGroup(ctx, "no-such-group"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetGroup: got %v, want ErrNotFound", err)
	}
	if err := store.DeleteGroup(ctx, "no-such-group"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteGroup: got %v, want ErrNotFound", err)
	}
	if err := store.RemoveGroupMember(ctx, "no-such-group", "addr1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("RemoveGroupMember: got %v, want ErrNotFound", err)
	}
	if _, err := store.GetExpense(ctx, "no-such-expense"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetExpense: got %v, want ErrNotFound", err)
	}
	if err := store.DeleteExpense(ctx, "no-such-expense"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteExpense: got %v, want ErrNotFound", err)
	}
	if _, err := store.GetSettlement(ctx, "no-such-settlement"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetSettlement: got %v, want ErrNotFound", err)
	}
}

func TestUserStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("get by email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Errorf("got %+v, want user %s", got, user.ID)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Email != "alice@example.com" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown email returns nil", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other Alice", "hash2")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected unique constraint error")
		}
	})
}
