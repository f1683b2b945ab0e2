package models

import postmodels "io.winapps.foodshare/internal/models/post"

type RecentPostsResponse struct {
	Posts []postmodels.FoodPost `json:"posts"`
	Count int                   `json:"count"`
}
