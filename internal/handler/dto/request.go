package dto

type CreateVehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	Inventory   int     `json:"inventory" binding:"required,gt=0"`
	PricePerDay float64 `json:"price_per_day" binding:"gte=0"`
}

type CreateReservationRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CancelReservationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
