package filters

// Body of a favorite creation.
type FavoriteBody struct {
	GameName      string `json:"gameName" binding:"required"`
	TagLine       string `json:"tagLine" binding:"required"`
	ProfileIconId *int   `json:"profileIconId"`
}
