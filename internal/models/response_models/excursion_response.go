package response_models

type ExcursionResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Types       []string `json:"types"`
	Rating      float64  `json:"rating"`
	GroupMin    int      `json:"group_min"`
	GroupMax    int      `json:"group_max"`
}
