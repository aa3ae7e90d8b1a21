package main

import (
	"net/http"

	"fineasy/models"
	"fineasy/pkg/finance"

	"github.com/gin-gonic/gin"
)

func createCardHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		CardName    string  `json:"card_name" binding:"required"`
		CardBrand   string  `json:"card_brand"`
		CreditLimit float64 `json:"credit_limit" binding:"required,gt=0"`
		UsedLimit   float64 `json:"used_limit" binding:"gte=0"`
		ClosingDay  int     `json:"closing_day" binding:"required,min=1,max=31"`
		DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card := models.CreditCard{
		UserID:      user.ID,
		CardName:    req.CardName,
		CardBrand:   req.CardBrand,
		CreditLimit: req.CreditLimit,
		UsedLimit:   req.UsedLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
	}
	if err := db.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": card.ID})
}

// listCardsHandler returns the user's cards annotated with the health score
// and recommendations. Cards with an invalid limit come back unscored.
func listCardsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var cards []models.CreditCard
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, finance.SummarizeCards(cards))
}

func deleteCardHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.CreditCard{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "card deleted"})
}
