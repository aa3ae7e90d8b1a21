package main

import (
	"net/http"

	"fineasy/models"

	"github.com/gin-gonic/gin"
)

func adminListUsersHandler(c *gin.Context) {
	var users []models.User
	if err := db.Preload("Role").Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"role":       u.Role.Name,
			"created_at": u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func adminAccessLogsHandler(c *gin.Context) {
	var logs []models.AccessLog
	if err := db.Order("id desc").Limit(100).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
