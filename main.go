package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/klemjul/researchforge/cmd"
	"github.com/klemjul/researchforge/internal/app"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	app := app.NewDefaultApp()
	if err := cmd.RootCommand(app).Execute(); err != nil {
		os.Exit(1)
	}
}
