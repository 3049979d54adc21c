package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kny8493/2025-todolist/internal/sessions"
)

type Handler interface {
	HandleSessionMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetStatistics(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleCompleteAllTasks(c *gin.Context)
	HandleDeleteAllTasks(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	sessions *sessions.Manager
}

func New(
	logger zerolog.Logger,
	sessionManager *sessions.Manager,
) Handler {
	return &handlerImpl{
		logger:   logger,
		sessions: sessionManager,
	}
}
