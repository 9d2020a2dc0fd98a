package main

import (
	"net/http"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"clasp/internal/registry"
)

type config struct {
	Addr         string        `env:"REGISTRYD_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `env:"REGISTRYD_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"REGISTRYD_WRITE_TIMEOUT" env-default:"5s"`
	LogLevel     string        `env:"REGISTRYD_LOG_LEVEL" env-default:"info"`
}

func main() {
	log := logrus.New()

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.WithError(err).Fatal("reading environment")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	srv := registry.NewServer(registry.NewMemory(), log)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.WithField("addr", cfg.Addr).Info("registryd listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("registryd stopped")
	}
}
