package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinova-app/dinova-api/internal/llm"
	"github.com/dinova-app/dinova-api/internal/prompt"
	"github.com/dinova-app/dinova-api/internal/store"
)

const defaultChatTitle = "New chat"

// ChatHandler persists the chat list, per-chat settings and messages.
type ChatHandler struct {
	db *gorm.DB
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{db: db}
}

type ChatRequest struct {
	Title  string `json:"title"`
	Mode   string `json:"mode"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

type ChatMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ListChats returns all chats, most recently touched first, without messages.
func (h *ChatHandler) ListChats(c *gin.Context) {
	var chats []store.Chat
	if err := h.db.Order("updated_at DESC").Find(&chats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chats."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// CreateChat creates a chat. Settings are clamped the same way generation
// requests are, so the store never holds invalid enum values.
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultChatTitle
	}

	chat := store.Chat{
		Title:  title,
		Mode:   string(prompt.ClampMode(req.Mode)),
		Tone:   string(prompt.ClampTone(req.Tone)),
		Length: string(prompt.ClampLength(req.Length)),
	}
	if err := h.db.Create(&chat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat."})
		return
	}
	c.JSON(http.StatusCreated, chat)
}

// GetChat returns one chat with its messages in order.
func (h *ChatHandler) GetChat(c *gin.Context) {
	chat, ok := h.findChat(c)
	if !ok {
		return
	}

	if err := h.db.Order("created_at ASC").Where("chat_id = ?", chat.ID).Find(&chat.Messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages."})
		return
	}
	c.JSON(http.StatusOK, chat)
}

// UpdateChat updates the title and settings of a chat.
func (h *ChatHandler) UpdateChat(c *gin.Context) {
	chat, ok := h.findChat(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		chat.Title = title
	}
	chat.Mode = string(prompt.ClampMode(req.Mode))
	chat.Tone = string(prompt.ClampTone(req.Tone))
	chat.Length = string(prompt.ClampLength(req.Length))

	if err := h.db.Save(chat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chat."})
		return
	}
	c.JSON(http.StatusOK, chat)
}

// DeleteChat removes a chat and its messages.
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	chat, ok := h.findChat(c)
	if !ok {
		return
	}

	if err := h.db.Where("chat_id = ?", chat.ID).Delete(&store.ChatMessage{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chat."})
		return
	}
	if err := h.db.Delete(chat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chat."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": chat.ID})
}

// AddMessage appends a message to a chat and touches its updated_at so the
// chat list sorts by recency.
func (h *ChatHandler) AddMessage(c *gin.Context) {
	chat, ok := h.findChat(c)
	if !ok {
		return
	}

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}
	if req.Role != llm.RoleUser && req.Role != llm.RoleAssistant {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be 'user' or 'assistant'."})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required."})
		return
	}

	msg := store.ChatMessage{
		ChatID:  chat.ID,
		Role:    req.Role,
		Content: req.Content,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message."})
		return
	}
	h.db.Model(chat).Update("updated_at", time.Now())

	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) findChat(c *gin.Context) (*store.Chat, bool) {
	var chat store.Chat
	err := h.db.First(&chat, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found."})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat."})
		return nil, false
	}
	return &chat, true
}
