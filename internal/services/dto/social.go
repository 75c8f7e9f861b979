package dto

// SocialFeedResponse is the scrape result. Images is always non-nil;
// failures degrade to an empty slice.
type SocialFeedResponse struct {
	Handle string   `json:"handle"`
	Images []string `json:"images"`
}
