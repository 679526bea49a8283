package dto

// Either article_text (to be summarized) or title with bullets must be
// provided; the controller validates the combination.
type CreateWebstoryRequest struct {
	ArticleText string   `json:"article_text"`
	Title       string   `json:"title"`
	Bullets     []string `json:"bullets"`
}

type CreateWebstoryResponse struct {
	StoryID     string `json:"story_id"`
	Title       string `json:"title"`
	SlideCount  int    `json:"slide_count"`
	PublicURL   string `json:"public_url"`
	DownloadURL string `json:"download_url"`
}
