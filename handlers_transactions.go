package main

import (
	"net/http"
	"strconv"
	"time"

	"fineasy/models"

	"github.com/gin-gonic/gin"
)

type transactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=receita despesa"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency"`
	Description string  `json:"description" binding:"required"`
	CategoryID  *uint   `json:"category_id"`
	Date        string  `json:"date"` // optional ISO8601, defaults to now
}

func (r transactionRequest) parsedDate() time.Time {
	if r.Date != "" {
		if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", r.Date); err == nil {
			return t
		}
	}
	return time.Now()
}

// createTransactionHandler stores a transaction for the authenticated user,
// converting the amount to BRL when the currency is foreign. A converter
// failure is not fatal: the row is stored with a null amount_brl.
func createTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "BRL"
	}
	if req.CategoryID != nil {
		var cnt int64
		db.Model(&models.Category{}).Where("id = ?", *req.CategoryID).Count(&cnt)
		if cnt == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
			return
		}
	}

	t := models.Transaction{
		UserID:      user.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        req.parsedDate(),
	}
	if req.Currency != "BRL" {
		if brl, err := fx.Convert(c.Request.Context(), req.Currency, req.Amount); err == nil {
			t.AmountBRL = &brl
		} else {
			logger.Warn().Err(err).Str("currency", req.Currency).Msg("currency conversion failed, storing without amount_brl")
		}
	}
	if err := db.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": t.ID, "amount_brl": t.AmountBRL})
}

// listTransactionsHandler returns the user's transactions, newest first.
// Optional ?year=&month= narrows to one calendar month.
func listTransactionsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Preload("Category").Where("user_id = ?", user.ID)
	if ys, ms := c.Query("year"), c.Query("month"); ys != "" && ms != "" {
		year, err1 := strconv.Atoi(ys)
		month, err2 := strconv.Atoi(ms)
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year/month"})
			return
		}
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", first, first.AddDate(0, 1, 0))
	}
	var items []models.Transaction
	if err := q.Order("date desc").Limit(500).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func updateTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var t models.Transaction
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&t).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "BRL"
	}
	t.Type = req.Type
	t.Amount = req.Amount
	t.Currency = req.Currency
	t.Description = req.Description
	t.CategoryID = req.CategoryID
	t.Date = req.parsedDate()
	t.AmountBRL = nil
	if req.Currency != "BRL" {
		if brl, err := fx.Convert(c.Request.Context(), req.Currency, req.Amount); err == nil {
			t.AmountBRL = &brl
		} else {
			logger.Warn().Err(err).Str("currency", req.Currency).Msg("currency conversion failed, storing without amount_brl")
		}
	}
	if err := db.Save(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": t.ID})
}

func deleteTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Transaction{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func listCategoriesHandler(c *gin.Context) {
	var cats []models.Category
	if err := db.Order("name").Find(&cats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, cats)
}
