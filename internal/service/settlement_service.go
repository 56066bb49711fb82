package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleflow/settleflow/internal/calculator"
	"github.com/settleflow/settleflow/internal/middleware"
	"github.com/settleflow/settleflow/internal/models"
	"github.com/settleflow/settleflow/internal/storage"
)

// defaultCurrency labels formatted payment lines when the caller does not
// pass one. Plain display text, the core never interprets it.
const defaultCurrency = "ALGO"

// SettlementService records executed payments and serves settlement plans.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

type recordSettlementRequest struct {
	From   string  `json:"from" binding:"required"`
	To     string  `json:"to" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Note   string  `json:"note"`
}

// RecordSettlement stores a payment that has been executed between two
// members, so future plans stop asking for it.
func (s *SettlementService) RecordSettlement(c *gin.Context) {
	var req recordSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}
	if req.From == req.To {
		c.JSON(http.StatusBadRequest, gin.H{"error": "debtor and creditor cannot be the same"})
		return
	}

	groupID := c.Param("id")
	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("RecordSettlement: failed to load group", "group_id", groupID, "error", err)
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}

	for _, member := range []string{req.From, req.To} {
		if !group.HasMember(member) {
			err := fmt.Errorf("%q is not a member of group %s", member, groupID)
			slog.Warn("RecordSettlement member validation failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	settlement := &models.Settlement{
		GroupID:   groupID,
		From:      req.From,
		To:        req.To,
		Amount:    req.Amount,
		Note:      req.Note,
		CreatedBy: middleware.GetUserID(c.Request.Context()),
	}
	if err := s.store.CreateSettlement(c.Request.Context(), settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record settlement"})
		return
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", groupID,
		"from", settlement.From,
		"to", settlement.To,
		"amount", settlement.Amount,
	)
	c.JSON(http.StatusCreated, gin.H{"settlement": settlement})
}

// ListSettlements retrieves a group's recorded settlements. An optional
// "member" query parameter narrows the list to payments the member was
// part of, on either side.
func (s *SettlementService) ListSettlements(c *gin.Context) {
	groupID := c.Param("id")
	if _, err := s.store.GetGroup(c.Request.Context(), groupID); err != nil {
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}

	var settlements []*models.Settlement
	var err error
	if member := c.Query("member"); member != "" {
		settlements, err = s.store.ListSettlementsByMember(c.Request.Context(), groupID, member)
	} else {
		settlements, err = s.store.ListSettlementsByGroup(c.Request.Context(), groupID)
	}
	if err != nil {
		slog.Error("ListSettlements failed", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settlements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": settlements})
}

// GetSettlement retrieves a single recorded settlement by ID.
func (s *SettlementService) GetSettlement(c *gin.Context) {
	settlement, err := s.store.GetSettlement(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("GetSettlement failed", "settlement_id", c.Param("id"), "error", err)
		respondStorageError(c, err, "settlement not found", "failed to load settlement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlement": settlement})
}

// GetPlan computes the group's current settlement plan: net balances from
// all expenses, minus payments already recorded, run through the optimizer.
func (s *SettlementService) GetPlan(c *gin.Context) {
	groupID := c.Param("id")
	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("GetPlan: failed to load group", "group_id", groupID, "error", err)
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}

	expenseRows, err := s.store.ListExpensesByGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("GetPlan: failed to list expenses", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expenses"})
		return
	}

	settlementRows, err := s.store.ListSettlementsByGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("GetPlan: failed to list settlements", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settlements"})
		return
	}

	expenses := make([]calculator.Expense, len(expenseRows))
	for i, e := range expenseRows {
		expenses[i] = calculator.Expense{Amount: e.Amount, PaidBy: e.PaidBy}
	}

	paid := make([]calculator.Payment, len(settlementRows))
	for i, st := range settlementRows {
		paid[i] = calculator.Payment{From: st.From, To: st.To, Amount: st.Amount}
	}

	plan := calculator.BuildPlan(group.Members, expenses, paid)

	currency := c.DefaultQuery("currency", defaultCurrency)
	summary := make([]string, len(plan.Payments))
	for i, p := range plan.Payments {
		summary[i] = calculator.FormatPayment(p, func(member string) string { return member }, currency)
	}

	slog.Info("Plan computed",
		"group_id", groupID,
		"expenses", len(expenses),
		"settled", len(paid),
		"payments", plan.OptimizedTransactionCount,
		"savings", plan.Savings,
	)
	c.JSON(http.StatusOK, gin.H{"plan": plan, "summary": summary})
}
