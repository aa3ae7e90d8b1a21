package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fineasy/models"
	"fineasy/pkg/finance"
	"fineasy/pkg/mailer"

	"github.com/gin-gonic/gin"
)

// periodFromQuery reads ?months=N or an explicit ?start=&end= range
// (YYYY-MM-DD). An explicit range wins over months.
func periodFromQuery(c *gin.Context) (finance.Period, error) {
	p := finance.Period{Months: 6}
	if v := c.Query("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.New("invalid months")
		}
		p.Months = n
	}
	if ss, es := c.Query("start"), c.Query("end"); ss != "" && es != "" {
		start, err1 := time.Parse("2006-01-02", ss)
		end, err2 := time.Parse("2006-01-02", es)
		if err1 != nil || err2 != nil || end.Before(start) {
			return p, errors.New("invalid start/end range")
		}
		p.Start, p.End = &start, &end
	}
	return p, nil
}

func monthlyInsightsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	period, err := periodFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := c.Query("category")
	if category == "" {
		category = finance.CategoryAll
	}
	txs, cards, err := loadHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	buckets := finance.MonthlyBuckets(txs, cards, period, category, time.Now())
	c.JSON(http.StatusOK, buckets)
}

func categoryInsightsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	txs, cards, err := loadHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, finance.CategoryBreakdown(txs, cards))
}

func trendInsightsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	txs, cards, err := loadHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	buckets := finance.MonthlyBuckets(txs, cards, finance.Period{Months: 6}, finance.CategoryAll, time.Now())
	c.JSON(http.StatusOK, finance.DetectTrend(buckets))
}

// monthlyReportHandler composes the current month's report document model.
// Byte encoding of PDF/XLSX is left to the client; the response carries the
// data plus the download filenames.
func monthlyReportHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var txs []models.Transaction
	if err := db.Preload("Category").Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	report, err := finance.ComposeMonthlyReport(txs, time.Now())
	if err != nil {
		if errors.Is(err, finance.ErrEmptyReport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"filenames": gin.H{
			"pdf":  report.Filename("pdf"),
			"xlsx": report.Filename("xlsx"),
		},
	})
}

// emailReportHandler renders the current month's report as HTML and sends it
// to the profile email (falling back to the account email).
func emailReportHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var txs []models.Transaction
	if err := db.Preload("Category").Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	report, err := finance.ComposeMonthlyReport(txs, time.Now())
	if err != nil {
		if errors.Is(err, finance.ErrEmptyReport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhuma transação encontrada para este mês. Adicione algumas transações primeiro."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}

	recipient := user.Email
	name := user.Username
	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		if profile.Email != "" {
			recipient = profile.Email
		}
		if profile.FullName != "" {
			name = profile.FullName
		}
	}
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no email address on file"})
		return
	}

	html, err := mailer.ReportHTML(report, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	msg := mailer.Message{
		From:    mailFrom,
		To:      []string{recipient},
		Subject: "Relatório Financeiro - " + report.MonthLabel,
		HTML:    html,
	}
	if err := mail.Send(c.Request.Context(), msg); err != nil {
		logger.Error().Err(err).Str("to", recipient).Msg("report email failed")
		if errors.Is(err, mailer.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao enviar e-mail"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relatório enviado com sucesso para seu e-mail!"})
}

func exchangeRatesHandler(c *gin.Context) {
	rates, err := fx.Latest(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("exchange rates fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "cotação indisponível"})
		return
	}
	c.JSON(http.StatusOK, rates)
}
