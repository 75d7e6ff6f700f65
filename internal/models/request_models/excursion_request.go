package request_models

type CreateExcursionRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Duration    string   `json:"duration" binding:"required"`
	Types       []string `json:"types" binding:"required,min=1"`
	Rating      float64  `json:"rating" binding:"gte=0,lte=5"`
	GroupMin    int      `json:"group_min" binding:"required,gte=1"`
	GroupMax    int      `json:"group_max" binding:"required,gtefield=GroupMin"`
}

type UpdateExcursionRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	Types       []string `json:"types"`
	Rating      *float64 `json:"rating"`
	GroupMin    *int     `json:"group_min"`
	GroupMax    *int     `json:"group_max"`
}
