package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qurriahSam/elewa/config"
	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/database"
	"github.com/qurriahSam/elewa/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.Connect(global.ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	// Learn Module Indexes
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Classrooms), learnmodels.Classroom{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.EnrolledEndUsers), learnmodels.EnrolledEndUser{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.EndUsers), learnmodels.EndUser{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CourseProgress), learnmodels.CourseProgressEvent{})

	// Analytics Module Indexes
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.GroupProgressMilestones), analyticsmodels.GroupProgressModel{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AnalyticsConfigs), analyticsmodels.AnalyticsConfig{})

	logrus.Info("Created indexes for collections")
}

// InitRegistry khởi tạo registry và đăng ký các collections
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Classrooms,
		global.MongoDB_ColNames.EnrolledEndUsers,
		global.MongoDB_ColNames.EndUsers,
		global.MongoDB_ColNames.CourseProgress,
		global.MongoDB_ColNames.GroupProgressMilestones,
		global.MongoDB_ColNames.AnalyticsConfigs,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
