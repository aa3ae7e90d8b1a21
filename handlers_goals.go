package main

import (
	"net/http"
	"time"

	"fineasy/models"
	"fineasy/pkg/finance"

	"github.com/gin-gonic/gin"
)

func createGoalHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		GoalName            string  `json:"goal_name" binding:"required"`
		GoalType            string  `json:"goal_type"`
		TargetAmount        float64 `json:"target_amount" binding:"required,gt=0"`
		CurrentAmount       float64 `json:"current_amount" binding:"gte=0"`
		TargetDate          string  `json:"target_date"` // optional, YYYY-MM-DD
		MonthlyContribution float64 `json:"monthly_contribution" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal := models.FinancialGoal{
		UserID:              user.ID,
		GoalName:            req.GoalName,
		GoalType:            req.GoalType,
		TargetAmount:        req.TargetAmount,
		CurrentAmount:       req.CurrentAmount,
		MonthlyContribution: req.MonthlyContribution,
	}
	if req.TargetDate != "" {
		t, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_date"})
			return
		}
		goal.TargetDate = &t
	}
	if err := db.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": goal.ID})
}

// listGoalsHandler returns the user's goals, each annotated with the live
// projection computed from the transaction and card history.
func listGoalsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var goals []models.FinancialGoal
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	txs, cards, err := loadHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	now := time.Now()
	type annotated struct {
		models.FinancialGoal
		Projection finance.Projection `json:"projection"`
	}
	out := make([]annotated, 0, len(goals))
	for _, g := range goals {
		out = append(out, annotated{FinancialGoal: g, Projection: finance.Project(g, txs, cards, now)})
	}
	c.JSON(http.StatusOK, out)
}

func goalHistoryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var goal models.FinancialGoal
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	txs, cards, err := loadHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, finance.History(goal, txs, cards, time.Now()))
}

func deleteGoalHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.FinancialGoal{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

// loadHistory fetches the full transaction and card snapshot the derivations
// share. Category is preloaded because the aggregations group by its name.
func loadHistory(userID uint) ([]models.Transaction, []models.CreditCard, error) {
	var txs []models.Transaction
	if err := db.Preload("Category").Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return nil, nil, err
	}
	var cards []models.CreditCard
	if err := db.Where("user_id = ?", userID).Find(&cards).Error; err != nil {
		return nil, nil, err
	}
	return txs, cards, nil
}
