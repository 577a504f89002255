package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/tasks"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Clock возвращает текущее время. Тесты подставляют фиксированное "сегодня"
type Clock func() time.Time

// TaskResponse представляет задачу с вычисленным признаком просрочки
type TaskResponse struct {
	model.Task
	Overdue bool `json:"overdue"`
}

// ColumnResponse представляет колонку доски вместе с задачами
type ColumnResponse struct {
	model.Column
	Tasks []TaskResponse `json:"tasks"`
}

// ValidationErrorResponse представляет ответ 422 со списком ошибок валидации
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// validationError выносит ошибки валидации из MutateTasks
type validationError struct {
	messages []string
}

func (e *validationError) Error() string {
	return "validation failed: " + strings.Join(e.messages, ", ")
}

// sessionID достает ID сессии, установленный middleware. Пишет ответ и
// возвращает false, если сессии нет.
func sessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.SessionIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session"})
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid session ID format"})
		return "", false
	}
	return id, true
}

// fail превращает ошибку репозитория в ответ
func fail(c *gin.Context, sid string, err error, message string) {
	var verr *validationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: verr.messages})
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		log.WithError(err).WithField("session", sid).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func toResponse(t model.Task, now time.Time) TaskResponse {
	return TaskResponse{
		Task:    t,
		Overdue: tasks.IsOverdue(t.DueDate, now) && t.Status != model.StatusDone,
	}
}

func toResponses(list []model.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, len(list))
	for i, t := range list {
		out[i] = toResponse(t, now)
	}
	return out
}

func toColumns(board model.Board, now time.Time) []ColumnResponse {
	columns := make([]ColumnResponse, len(model.KanbanColumns))
	for i, col := range model.KanbanColumns {
		columns[i] = ColumnResponse{
			Column: col,
			Tasks:  toResponses(board[col.ID], now),
		}
	}
	return columns
}
