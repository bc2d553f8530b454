package handler

type orderItemRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

type placeOrderRequest struct {
	Order []orderItemRequest `json:"order" validate:"required,min=1,dive"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
