package dto

import "lolscope/pkg/models"

// FavoritesList is the response of the favorites listing.
type FavoritesList struct {
	Favorites []models.FavoritePlayer `json:"favorites"`
	Count     int                     `json:"count"`
}
