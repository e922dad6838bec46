package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/giovaniif/ordersystem/config"
	"github.com/giovaniif/ordersystem/domain/money"
	"github.com/giovaniif/ordersystem/domain/store"
	"github.com/giovaniif/ordersystem/infra/consumers"
	"github.com/giovaniif/ordersystem/infra/gateways"
	"github.com/giovaniif/ordersystem/infra/logger"
	"github.com/giovaniif/ordersystem/infra/loki"
	"github.com/giovaniif/ordersystem/infra/metrics"
	"github.com/giovaniif/ordersystem/infra/requestid"
	"github.com/giovaniif/ordersystem/infra/tracing"
	protocols "github.com/giovaniif/ordersystem/protocols"
	"github.com/giovaniif/ordersystem/use_cases/process"
)

type RegisterRequest struct {
	ItemName string `json:"itemName"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type CheckinRequest struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

type OrderRequest struct {
	CustomerName string `json:"customerName"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
}

func StartServer(cfg *config.Config) {
	lokiWriter := loki.NewWriter(cfg.LokiURL, config.ServiceName)
	log := logger.New(lokiWriter)
	defer log.Sync()
	if lokiWriter != nil {
		defer lokiWriter.Close()
	}

	if shutdown := tracing.Init(config.ServiceName); shutdown != nil {
		defer shutdown()
	}

	currency := money.CurrencyFor(cfg.CurrencyCode)
	ledger := store.New()
	processor := process.NewProcessor(ledger, os.Stderr, currency)

	var reportCache protocols.ReportCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis ping failed, using in-memory report cache",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
			reportCache = gateways.NewReportCacheMemory(cfg.ReportCacheTTL)
		} else {
			reportCache = gateways.NewReportCacheRedis(rdb, cfg.ReportCacheTTL)
			log.Info("report cache: redis", zap.Duration("ttl", cfg.ReportCacheTTL))
		}
	} else {
		reportCache = gateways.NewReportCacheMemory(cfg.ReportCacheTTL)
		log.Info("report cache: in-memory (set REDIS_ADDR for redis)")
	}

	if len(cfg.KafkaBrokers) > 0 {
		reader := consumers.NewReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
		defer reader.Close()
		consumer := consumers.NewCommandConsumer(reader, processor, reportCache, log)
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				log.Error("command consumer stopped", zap.Error(err))
			}
		}()
		log.Info("command feed: kafka",
			zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	r := gin.Default()
	r.Use(requestid.Middleware())
	r.Use(tracing.Middleware(config.ServiceName))
	r.Use(metrics.Middleware)

	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		redisCheck := "n/a"
		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
				status = "degraded"
				redisCheck = "down"
			} else {
				redisCheck = "up"
			}
			_ = rdb.Close()
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "checks": gin.H{"redis": redisCheck}})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		price, err := money.Parse(req.Price, currency)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if !ledger.Register(req.ItemName, price, req.Quantity) {
			metrics.ObserveCommand("register", "rejected")
			c.JSON(http.StatusConflict, gin.H{"registered": false})
			return
		}
		metrics.ObserveCommand("register", "ok")
		invalidateReport(c, reportCache, log)
		c.JSON(http.StatusCreated, gin.H{"registered": true})
	})

	r.POST("/checkin", func(c *gin.Context) {
		var req CheckinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		ok, err := ledger.Checkin(req.ItemName, req.Quantity)
		if err != nil {
			metrics.ObserveCommand("checkin", "error")
			if store.IsItemNotFound(err) {
				c.String(http.StatusNotFound, err.Error())
			} else {
				c.String(http.StatusInternalServerError, err.Error())
			}
			return
		}
		if !ok {
			metrics.ObserveCommand("checkin", "rejected")
			c.JSON(http.StatusBadRequest, gin.H{"checkedIn": false})
			return
		}
		metrics.ObserveCommand("checkin", "ok")
		invalidateReport(c, reportCache, log)
		c.JSON(http.StatusOK, gin.H{"checkedIn": true})
	})

	r.POST("/order", func(c *gin.Context) {
		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if !ledger.Order(req.CustomerName, req.ItemName, req.Quantity) {
			metrics.ObserveCommand("order", "rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ordered": false})
			return
		}
		metrics.ObserveCommand("order", "ok")
		invalidateReport(c, reportCache, log)
		c.JSON(http.StatusOK, gin.H{"ordered": true})
	})

	r.GET("/report", func(c *gin.Context) {
		ctx := c.Request.Context()
		if report, ok, err := reportCache.Get(ctx); err == nil && ok {
			c.JSON(http.StatusOK, gin.H{"report": report, "cached": true})
			return
		}
		report := ledger.GenerateReport()
		if err := reportCache.Set(ctx, report); err != nil {
			log.Warn("failed to cache report", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"report": report, "cached": false})
	})

	log.Info("ordersystem api listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func invalidateReport(c *gin.Context, cache protocols.ReportCache, log *zap.Logger) {
	if err := cache.Invalidate(c.Request.Context()); err != nil {
		log.Warn("failed to invalidate report cache",
			zap.String("request_id", requestid.FromContext(c.Request.Context())), zap.Error(err))
	}
}
