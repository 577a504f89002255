package handler

import (
	"net/http"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/tasks"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	repo repository.SessionRepositoryInterface
	now  Clock
}

func NewBoardHandler(repo repository.SessionRepositoryInterface, now Clock) *BoardHandler {
	return &BoardHandler{repo: repo, now: now}
}

// MoveRequest представляет перетаскивание задачи на доске. Задача задается
// через TaskID или через Source, при наличии обоих используется TaskID.
// Пустой Destination отменяет перемещение.
type MoveRequest struct {
	TaskID      string          `json:"taskId"`
	Source      *model.Location `json:"source"`
	Destination *model.Location `json:"destination"`
}

// Get возвращает колонки доски с задачами. Фильтры из запроса или настроек
// применяются, сортировка нет: колонки сохраняют свой порядок.
func (h *BoardHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	list, err := h.repo.Tasks(ctx, sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve board")
		return
	}
	prefs, err := h.repo.Preferences(ctx, sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve preferences")
		return
	}
	view := viewFromQuery(c, prefs)

	board := tasks.GroupByStatus(tasks.Filter(list, view.Filters))
	c.JSON(http.StatusOK, toColumns(board, h.now()))
}

// Move перемещает задачу внутри колонки или между колонками. Индексы
// относятся к полным колонкам, без фильтров.
func (h *BoardHandler) Move(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.TaskID == "" && req.Source == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either taskId or source is required"})
		return
	}

	result, err := h.repo.MutateTasks(c.Request.Context(), sid, func(current []model.Task) ([]model.Task, error) {
		move := model.Move{Destination: req.Destination}
		if req.TaskID != "" {
			loc, found := tasks.Locate(tasks.GroupByStatus(current), req.TaskID)
			if !found {
				return current, nil
			}
			move.Source = loc
		} else {
			move.Source = *req.Source
		}
		return tasks.MoveTask(current, move), nil
	})
	if err != nil {
		fail(c, sid, err, "Failed to move task")
		return
	}

	c.JSON(http.StatusOK, toColumns(tasks.GroupByStatus(result), h.now()))
}

// Stats возвращает статистику по всем задачам сессии, без учета фильтров
func (h *BoardHandler) Stats(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	list, err := h.repo.Tasks(c.Request.Context(), sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, tasks.CalculateStats(list, h.now()))
}

// Categories возвращает список категорий для фильтра
func (h *BoardHandler) Categories(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	list, err := h.repo.Tasks(c.Request.Context(), sid)
	if err != nil {
		fail(c, sid, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, tasks.UniqueCategories(list))
}

func (h *BoardHandler) Columns(c *gin.Context) {
	c.JSON(http.StatusOK, model.KanbanColumns)
}
