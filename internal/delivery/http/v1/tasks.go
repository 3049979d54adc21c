package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kny8493/2025-todolist/internal/models"
	"github.com/kny8493/2025-todolist/internal/store"
)

// Creation instants are rendered at minute resolution; anything finer
// is noise on a to-do list.
const createdAtLayout = "2006-01-02 15:04"

type taskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func newTaskResponse(task models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Local().Format(createdAtLayout),
	}
}

type statisticsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

func newStatisticsResponse(stats models.Statistics) statisticsResponse {
	return statisticsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
	}
}

// taskListResponse is the read-after-write view every mutation answers
// with, so a client can re-render without a second round trip.
type taskListResponse struct {
	Tasks []taskResponse     `json:"tasks"`
	Stats statisticsResponse `json:"stats"`
}

func newTaskListResponse(s *store.TaskStore, kind models.Filter) taskListResponse {
	tasks := s.Filtered(kind)
	response := taskListResponse{
		Tasks: make([]taskResponse, len(tasks)),
		Stats: newStatisticsResponse(s.Statistics()),
	}
	for i, task := range tasks {
		response.Tasks[i] = newTaskResponse(task)
	}
	return response
}

type createTaskRequest struct {
	Text string `json:"text"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	session.Lock()
	defer session.Unlock()

	before := session.Store.Statistics().Total
	session.Store.Add(req.Text)

	if session.Store.Statistics().Total == before {
		// Blank text is silently discarded, not an error.
		h.logger.Debug().Msg("discarded blank task text")
		c.Status(http.StatusNoContent)
		return
	}

	h.logger.Info().
		Str("session_id", session.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	kind := models.ParseFilter(c.Query("filter"))

	session.Lock()
	defer session.Unlock()

	h.logger.Debug().
		Str("session_id", session.ID).
		Str("filter", string(kind)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, kind))
}

func (h *handlerImpl) HandleGetStatistics(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	c.JSON(http.StatusOK, newStatisticsResponse(session.Store.Statistics()))
}

type updateTaskRequest struct {
	Text string `json:"text"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	taskID, ok := h.taskIDFromParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Store.Update(taskID, req.Text)

	h.logger.Info().
		Str("session_id", session.ID).
		Int64("task_id", taskID).
		Msg("updated task")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	taskID, ok := h.taskIDFromParam(c)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Store.Toggle(taskID)

	h.logger.Info().
		Str("session_id", session.ID).
		Int64("task_id", taskID).
		Msg("toggled task")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	taskID, ok := h.taskIDFromParam(c)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Store.Delete(taskID)

	h.logger.Info().
		Str("session_id", session.ID).
		Int64("task_id", taskID).
		Msg("deleted task")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) HandleCompleteAllTasks(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Store.MarkAllCompleted()

	h.logger.Info().
		Str("session_id", session.ID).
		Msg("completed all tasks")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) HandleDeleteAllTasks(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Store.DeleteAll()

	h.logger.Info().
		Str("session_id", session.ID).
		Msg("deleted all tasks")
	c.JSON(http.StatusOK, newTaskListResponse(session.Store, models.FilterAll))
}

func (h *handlerImpl) taskIDFromParam(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return taskID, true
}
