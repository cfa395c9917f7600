package main

import (
	"fmt"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/analysis"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/config"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/dsn"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/handler"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/auth"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/storage"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/repository"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	minioStore, err := storage.NewMinIO(
		fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort),
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, false)
	if err != nil {
		log.WithError(err).Fatal("failed to connect minio")
	}

	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("failed to connect redis")
	}
	defer sessionSvc.Close()

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)

	// The provider is constructed once here and injected; no package-level
	// client state.
	provider := analysis.NewProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
	review := workflow.New(repo, provider, minioStore)

	router := gin.Default()
	h := handler.NewHandler(repo, cfg, review, minioStore, jwtSvc, sessionSvc)
	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
