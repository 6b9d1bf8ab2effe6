package dto

// InnovationResponse is the public JSON shape of a catalog record.
// Store-managed timestamps are intentionally not exposed.
type InnovationResponse struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Year        int      `json:"year"`
	Company     string   `json:"company"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
	Image       *string  `json:"image"`
	Featured    bool     `json:"featured"`
}

// BrowseRequest carries the server-side browse pipeline inputs.
// An unknown sort value falls back to rating, it is not an error.
type BrowseRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
	Featured bool   `query:"featured"`
}
