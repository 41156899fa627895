package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsConfigKey key của document cấu hình duy nhất trong analytics_configs
const AnalyticsConfigKey = "config"

// AnalyticsConfig cấu hình process-wide của pipeline analytics: danh sách
// tổ chức cần tính progress. Load một lần mỗi lần chạy, pipeline không mutate.
type AnalyticsConfig struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`             // MongoDB _id
	ConfigKey string             `json:"configKey" bson:"configKey" index:"unique"`     // Luôn là "config"
	OrgIDs    []string           `json:"orgIds" bson:"orgIds"`                          // Danh sách hex ID các tổ chức cần xử lý

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
