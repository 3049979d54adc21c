package main

import "github.com/kny8493/2025-todolist/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.InitSessionManager()
	defer app.CloseSessionManager()

	app.MustListenAndServeHTTP()
}
