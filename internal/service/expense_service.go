package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleflow/settleflow/internal/models"
	"github.com/settleflow/settleflow/internal/storage"
)

// ExpenseService handles expense recording and retrieval. Validation happens
// here, at the service boundary; the settlement math below it stays total.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

type createExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaidBy      string  `json:"paid_by" binding:"required"`
}

// CreateExpense records a new expense against a group.
func (s *ExpenseService) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	groupID := c.Param("id")
	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("CreateExpense: failed to load group", "group_id", groupID, "error", err)
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}

	if !group.HasMember(req.PaidBy) {
		err := fmt.Errorf("payer %q is not a member of group %s", req.PaidBy, groupID)
		slog.Warn("CreateExpense payer validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := &models.Expense{
		GroupID:     groupID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
	}
	if err := s.store.CreateExpense(c.Request.Context(), expense); err != nil {
		slog.Error("CreateExpense failed", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", groupID,
		"amount", expense.Amount,
		"paid_by", expense.PaidBy,
	)
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses retrieves all expenses for a group.
func (s *ExpenseService) ListExpenses(c *gin.Context) {
	groupID := c.Param("id")
	if _, err := s.store.GetGroup(c.Request.Context(), groupID); err != nil {
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}

	expenses, err := s.store.ListExpensesByGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(c *gin.Context) {
	expense, err := s.store.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", c.Param("id"), "error", err)
		respondStorageError(c, err, "expense not found", "failed to load expense")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(c *gin.Context) {
	expenseID := c.Param("id")
	if err := s.store.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		respondStorageError(c, err, "expense not found", "failed to delete expense")
		return
	}

	slog.Info("Expense deleted", "expense_id", expenseID)
	c.Status(http.StatusNoContent)
}
