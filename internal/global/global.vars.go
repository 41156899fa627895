// Package global giữ các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, tên các collection và registry collections.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qurriahSam/elewa/config"
	"github.com/qurriahSam/elewa/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Classrooms              string // Tên collection cho lớp học
	EnrolledEndUsers        string // Tên collection cho học viên đã ghi danh
	EndUsers                string // Tên collection cho end user hội thoại (WhatsApp/Messenger)
	CourseProgress          string // Tên collection cho sự kiện tiến độ khóa học (do bot engine ghi)
	GroupProgressMilestones string // Tên collection cho snapshot group progress theo ngày
	AnalyticsConfigs        string // Tên collection cho cấu hình analytics
}

// Các biến toàn cục
var Validate *validator.Validate                                       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                      // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                 // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{                         // Tên các collection
	Classrooms:              "classrooms",
	EnrolledEndUsers:        "enrolled_end_users",
	EndUsers:                "end_users",
	CourseProgress:          "course_progress",
	GroupProgressMilestones: "group_progress_milestones",
	AnalyticsConfigs:        "analytics_configs",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// InitValidator khởi tạo validator toàn cục
func InitValidator() {
	Validate = validator.New()
}
