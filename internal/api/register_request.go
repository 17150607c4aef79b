package api

// swagger:model api.RegisterRequest
// 不接受 role 欄位，註冊一律建立一般使用者
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
