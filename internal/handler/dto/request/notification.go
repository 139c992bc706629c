package request

type DeviceTokenRequest struct {
	Token string `json:"token" binding:"required,max=4096"`
}
