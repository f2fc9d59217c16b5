package main

import (
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/abhishek622/moodgap/internal/auth"
	"github.com/abhishek622/moodgap/internal/config"
	"github.com/abhishek622/moodgap/internal/handler"
	"github.com/abhishek622/moodgap/internal/logger"
)

const version = "1.0.0"

type application struct {
	Logger   *zap.Logger
	Config   *config.Config
	Verifier *auth.Verifier
	Handler  *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	app := &application{
		Logger:   log,
		Config:   cfg,
		Verifier: auth.NewVerifier(cfg.Auth.Token),
		Handler: &handler.Handler{
			Logger:       log,
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
			Version:      version,
			Now:          time.Now,
			Loc:          cfg.Location(),
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
