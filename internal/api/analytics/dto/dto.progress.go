package dto

// MeasureGroupProgressInput là input để chạy đo tiến độ nhóm.
// Interval là thời điểm đo (unix millis); bỏ trống = đo tại thời điểm hiện tại.
type MeasureGroupProgressInput struct {
	Interval int64 `json:"interval,omitempty" validate:"omitempty,gte=0"`
}

// AnalyticsConfigInput là input để cập nhật danh sách tổ chức được đo tiến độ
type AnalyticsConfigInput struct {
	OrgIDs []string `json:"orgIds" validate:"required,min=1,dive,len=24,hexadecimal"`
}
