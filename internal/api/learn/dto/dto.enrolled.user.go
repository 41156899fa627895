package dto

// GetOrCreateEnrolledUserInput là input để tìm-hoặc-tạo học viên ghi danh
// từ danh tính hội thoại của end user
type GetOrCreateEnrolledUserInput struct {
	OrgID     string `json:"orgId" validate:"required,len=24,hexadecimal"` // ObjectID của tổ chức
	EndUserID string `json:"endUserId" validate:"required"`                // Id hội thoại có prefix kênh, vd "whatsapp_254700000000"
}
