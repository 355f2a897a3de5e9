package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/handlers"
	"github.com/mmdatafocus/smartpos_backend/middlewares"
	"github.com/mmdatafocus/smartpos_backend/pos"
	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()
	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	adapter, err := storage.Open(sigCtx, cfg, logger)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "storage", "backend": cfg.StorageBackend}).Fatal(err.Error())
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			logger.WithFields(logrus.Fields{"field": "storage"}).Error("close failed: " + err.Error())
		}
	}()

	st := store.New(adapter)
	defaults := store.Seed{}
	if cfg.SeedDemoData {
		defaults = seed.Demo(time.Now())
	}
	st.Load(sigCtx, defaults)
	svc := pos.NewService(st, logger)

	var limiter *middlewares.RateLimiter
	if config.RateLimitEnabled() {
		client := config.GetRedisDB()
		if client == nil {
			client, err = config.ConnectRedisWithRetry(sigCtx, cfg)
			if err != nil {
				logger.WithFields(logrus.Fields{"field": "rate limit"}).Fatal(err.Error())
			}
		}
		limiter = middlewares.NewRateLimiter(client, cfg.StorageKeyPrefix, cfg.RateLimitMaxRequests, cfg.RateLimitWindow)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(cfg, svc, logger, limiter),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	logger.WithFields(logrus.Fields{
		"info":    "Connection Established",
		"backend": cfg.StorageBackend,
	}).Info("listening on :", cfg.Port)
	log.Println("Server started successfully")

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}

func setupRouter(cfg config.AppConfig, svc *pos.Service, logger *logrus.Logger, limiter *middlewares.RateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middlewares.CorrelationMiddleware())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.Use(cors.New(corsConfig(cfg)))
	if limiter != nil {
		r.Use(limiter.Middleware)
	}
	r.Use(middlewares.SessionMiddleware(svc))
	r.Use(middlewares.ErrorLogger(logger))
	r.Use(gin.Recovery())

	handlers.New(svc, logger).Register(r)
	r.NoRoute(handlers.NotFound)
	return r
}

// corsConfig requires an explicit allowlist in production and allows every origin elsewhere.
func corsConfig(cfg config.AppConfig) cors.Config {
	c := cors.DefaultConfig()
	if cfg.IsProduction() {
		c.AllowOrigins = splitAndTrim(cfg.CorsAllowedOrigins)
		if len(c.AllowOrigins) == 0 {
			// no allowlist: deny every origin
			c.AllowOriginFunc = func(string) bool { return false }
		}
	} else {
		c.AllowAllOrigins = true
	}
	c.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	c.AddAllowHeaders("Origin", "Content-Type", "Authorization", middlewares.CorrelationIdHeader)
	c.AddExposeHeaders("Content-Length", "Content-Disposition", middlewares.CorrelationIdHeader)
	c.AllowCredentials = !c.AllowAllOrigins
	return c
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
