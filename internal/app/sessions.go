package app

import (
	"github.com/kny8493/2025-todolist/internal/config"
	"github.com/kny8493/2025-todolist/internal/sessions"
)

var globalSessionManager *sessions.Manager

func InitSessionManager() {
	cfg := config.Global().Sessions

	globalSessionManager = sessions.NewManager(globalLogger, cfg.TTL)
	go globalSessionManager.Sweep(cfg.SweepInterval)

	globalLogger.Info().
		Dur("ttl", cfg.TTL).
		Dur("sweep_interval", cfg.SweepInterval).
		Msg("initialized session manager")
}

func CloseSessionManager() {
	globalSessionManager.Close()
	globalLogger.Info().Msg("closed session manager")
}
