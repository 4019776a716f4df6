package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/handler"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/router"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/database"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	applogger "github.com/AbdessamadProschool/medaction-prod-sub005/pkg/logger"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
)

func main() {
	// 1. Chargement de la configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialisation de la journalisation
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Démarrage de l'application...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connexion à la base de données
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Connexion à la base de données", zap.Error(err))
	}

	// 3.1 Migrations de schéma
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Récupération du sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("Migrations de schéma", zap.Error(err))
	}

	// 4. Connexion Redis (dégradée si indisponible : liste noire et
	//    limitation de débit désactivées, le service démarre quand même)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Connexion Redis indisponible, liste noire de tokens désactivée", zap.Error(err))
		rdb = nil
	}

	// 5. Gestionnaire JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injection de dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Routage
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Serveur HTTP avec arrêt gracieux
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Serveur HTTP", zap.Error(err))
		}
	}()

	// 9. Attente du signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Signal reçu, arrêt gracieux en cours...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Arrêt du serveur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("Serveur arrêté")
}
