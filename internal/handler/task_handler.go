package handler

import (
	"net/http"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/tasks"

	"github.com/gin-gonic/gin"
)

// MsgInvalidDueDate возвращается, если dueDate не дата и не метка времени RFC 3339
const MsgInvalidDueDate = "invalid due date"

type TaskHandler struct {
	repo repository.SessionRepositoryInterface
	now  Clock
}

func NewTaskHandler(repo repository.SessionRepositoryInterface, now Clock) *TaskHandler {
	return &TaskHandler{repo: repo, now: now}
}

// TaskRequest представляет запрос на создание или обновление задачи
type TaskRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category"`
	Status      model.Status   `json:"status"`
	DueDate     *string        `json:"dueDate"`
}

// TaskDropRequest представляет сброс задачи на колонку в режиме списка
type TaskDropRequest struct {
	Status model.Status `json:"status" binding:"required"`
}

func (r TaskRequest) fields() (model.TaskFields, bool) {
	fields := model.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		Status:      r.Status,
	}
	if r.DueDate == nil || *r.DueDate == "" {
		return fields, true
	}
	due, err := parseDueDate(*r.DueDate)
	if err != nil {
		return fields, false
	}
	fields.DueDate = &due
	return fields, true
}

// parseDueDate принимает дату (YYYY-MM-DD) или полную метку времени
func parseDueDate(value string) (time.Time, error) {
	if due, err := time.Parse(time.DateOnly, value); err == nil {
		return due, nil
	}
	return time.Parse(time.RFC3339, value)
}

// List возвращает задачи сессии с учетом фильтров и сортировки
func (h *TaskHandler) List(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	list, err := h.repo.Tasks(ctx, sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve tasks")
		return
	}

	prefs, err := h.repo.Preferences(ctx, sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve preferences")
		return
	}
	view := viewFromQuery(c, prefs)

	result := tasks.Sort(tasks.Filter(list, view.Filters), view.SortBy, view.SortOrder)
	c.JSON(http.StatusOK, toResponses(result, h.now()))
}

// viewFromQuery накладывает параметры запроса на сохраненные настройки
func viewFromQuery(c *gin.Context, prefs model.Preferences) model.Preferences {
	if v, ok := c.GetQuery("search"); ok {
		prefs.Filters.SearchTerm = v
	}
	if v, ok := c.GetQuery("priority"); ok {
		prefs.Filters.Priority = v
	}
	if v, ok := c.GetQuery("category"); ok {
		prefs.Filters.Category = v
	}
	if v, ok := c.GetQuery("sort"); ok {
		prefs.SortBy = model.SortField(v)
	}
	if v, ok := c.GetQuery("order"); ok {
		prefs.SortOrder = model.SortOrder(v)
	}
	return prefs
}

// Create создает новую задачу
func (h *TaskHandler) Create(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	// Парсим запрос
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields, ok := req.fields()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: []string{MsgInvalidDueDate}})
		return
	}

	now := h.now()
	task := tasks.Create(fields, now)
	if result := tasks.Validate(task); !result.IsValid {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: result.Errors})
		return
	}

	_, err := h.repo.MutateTasks(c.Request.Context(), sid, func(current []model.Task) ([]model.Task, error) {
		return append(current, task), nil
	})
	if err != nil {
		fail(c, sid, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, toResponse(task, now))
}

// GetByID получает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	list, err := h.repo.Tasks(c.Request.Context(), sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve task")
		return
	}

	task, found := tasks.Find(list, c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(task, h.now()))
}

// Update заменяет редактируемые поля задачи, сохраняя ID и дату создания
func (h *TaskHandler) Update(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields, ok := req.fields()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: []string{MsgInvalidDueDate}})
		return
	}

	var updated model.Task
	_, err := h.repo.MutateTasks(c.Request.Context(), sid, func(current []model.Task) ([]model.Task, error) {
		existing, found := tasks.Find(current, id)
		if !found {
			return nil, repository.ErrTaskNotFound
		}
		updated = tasks.Update(existing, fields)
		if result := tasks.Validate(updated); !result.IsValid {
			return nil, &validationError{messages: result.Errors}
		}
		return tasks.Replace(current, updated), nil
	})
	if err != nil {
		fail(c, sid, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, toResponse(updated, h.now()))
}

// Delete удаляет задачу. Отсутствующий ID не считается ошибкой.
func (h *TaskHandler) Delete(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	_, err := h.repo.MutateTasks(c.Request.Context(), sid, func(current []model.Task) ([]model.Task, error) {
		return tasks.Delete(current, id), nil
	})
	if err != nil {
		fail(c, sid, err, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

// Drop меняет только статус задачи, порядок списка сохраняется
func (h *TaskHandler) Drop(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req TaskDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result, err := h.repo.MutateTasks(c.Request.Context(), sid, func(current []model.Task) ([]model.Task, error) {
		return tasks.DropOnStatus(current, id, req.Status), nil
	})
	if err != nil {
		fail(c, sid, err, "Failed to move task")
		return
	}

	c.JSON(http.StatusOK, toResponses(result, h.now()))
}
