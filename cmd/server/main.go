package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/qurriahSam/elewa/internal/global"
	"github.com/qurriahSam/elewa/internal/logger"
	"github.com/qurriahSam/elewa/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	log := logger.GetAppLogger()

	// Khởi tạo và chạy Progress Measurement Worker (background worker)
	timezone, err := time.LoadLocation(global.ServerConfig.Progress_Timezone)
	if err != nil {
		log.WithError(err).Errorf("Timezone %s không hợp lệ, dùng UTC", global.ServerConfig.Progress_Timezone)
		timezone = time.UTC
	}

	measurementWorker, err := worker.NewProgressMeasurementWorker(global.ServerConfig.Progress_MeasureCron, timezone)
	if err != nil {
		log.WithError(err).Error("Failed to create progress measurement worker, continuing without scheduled measurement")
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := measurementWorker.Start(ctx); err != nil {
			log.WithError(err).Error("Failed to start progress measurement worker, continuing without scheduled measurement")
		} else {
			log.Info("Progress Measurement Worker started successfully")
		}
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
