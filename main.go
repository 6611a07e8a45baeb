package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	config "github.com/jandvorak/donation-admin-go/config"
	liststate "github.com/jandvorak/donation-admin-go/liststate"
	middleware "github.com/jandvorak/donation-admin-go/middleware"
	routes "github.com/jandvorak/donation-admin-go/routes"
	store "github.com/jandvorak/donation-admin-go/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zaplog, err := newZapLog(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	st := store.New(cfg.MongoClient, cfg.DBName)
	donations := liststate.NewDonations(st, zaplog)
	notifications := liststate.NewNotifications(st, zaplog)

	// Initial snapshot load happens before the server accepts requests, so
	// mutation endpoints never race the first fetch.
	loadCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	donations.Load(loadCtx)
	notifications.Load(loadCtx)
	cancel()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zaplog))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "If-None-Match"},
		MaxAge:       12 * time.Hour,
	}))

	routes.SetupRoutes(r, cfg, donations, notifications)

	zaplog.Info("listening", zap.String("addr", cfg.Addr))
	return r.Run(cfg.Addr)
}

func newZapLog(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}
