package handler

type bookRequest struct {
	URL      string  `json:"url" validate:"required,url"`
	Title    string  `json:"title" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Desc     string  `json:"desc" validate:"required"`
	Language string  `json:"language" validate:"required"`
}
