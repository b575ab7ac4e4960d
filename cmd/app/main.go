package main

import (
	"vitacoin/internal/app"
	"vitacoin/pkg/cache"
	"vitacoin/pkg/config"
	"vitacoin/pkg/database"
	"vitacoin/pkg/logger"
	"vitacoin/pkg/queue"
)

// @title           Vitacoin Ledger API
// @version         1.0
// @description     Coin ledger service: per-user balances adjusted by configured activity rewards and penalties.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, queueClient)
}
