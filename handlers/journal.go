package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintra-backend/models"
)

type journalInput struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type updateJournalInput struct {
	Date    *string `json:"date"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) ListJournal(c *gin.Context) {
	userID := h.userID(c)

	var entries []models.JournalEntry
	if err := h.DB.Where("user_id = ?", userID).Order("date desc, id desc").Find(&entries).Error; err != nil {
		h.storageError(c, err, "Failed to fetch journal entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) CreateJournalEntry(c *gin.Context) {
	userID := h.userID(c)

	var input journalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry := models.JournalEntry{
		UserID:  userID,
		Date:    input.Date,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		h.storageError(c, err, "Failed to create journal entry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Journal entry created", "id": entry.ID})
}

func (h *Handler) UpdateJournalEntry(c *gin.Context) {
	userID := h.userID(c)
	entryID := c.Param("id")

	var input updateJournalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.JournalEntry
	if err := h.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&existing).Error; err != nil {
		notFound(c, "Journal entry not found")
		return
	}

	updates := make(map[string]interface{})
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if len(updates) == 0 {
		badRequest(c, "No fields to update")
		return
	}

	if err := h.DB.Model(&existing).Updates(updates).Error; err != nil {
		h.storageError(c, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry updated"})
}

func (h *Handler) DeleteJournalEntry(c *gin.Context) {
	userID := h.userID(c)
	entryID := c.Param("id")

	var entry models.JournalEntry
	if err := h.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		notFound(c, "Journal entry not found")
		return
	}
	if err := h.DB.Delete(&entry).Error; err != nil {
		h.storageError(c, err, "Failed to delete journal entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}
