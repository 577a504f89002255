package handler

import (
	"errors"
	"net/http"

	"taskflow/internal/repository"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	repo repository.SessionRepositoryInterface
}

func NewPreferencesHandler(repo repository.SessionRepositoryInterface) *PreferencesHandler {
	return &PreferencesHandler{repo: repo}
}

// Get возвращает тему, режим отображения, фильтры и сортировку сессии
func (h *PreferencesHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	prefs, err := h.repo.Preferences(c.Request.Context(), sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Update накладывает тело запроса на сохраненные настройки. Поля, которых нет
// в запросе, не меняются.
func (h *PreferencesHandler) Update(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	prefs, err := h.repo.Preferences(ctx, sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve preferences")
		return
	}

	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.repo.SavePreferences(ctx, sid, prefs); err != nil {
		if errors.Is(err, repository.ErrInvalidPreferences) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences"})
			return
		}
		fail(c, sid, err, "Failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}
