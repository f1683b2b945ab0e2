package models

import "time"

type Category string

const (
	CategoryPreparedFood  Category = "prepared-food"
	CategoryFreshProduce  Category = "fresh-produce"
	CategoryPackagedGoods Category = "packaged-goods"
	CategoryDairy         Category = "dairy"
	CategoryBakery        Category = "bakery"
	CategoryBeverages     Category = "beverages"
)

var Categories = []Category{
	CategoryPreparedFood,
	CategoryFreshProduce,
	CategoryPackagedGoods,
	CategoryDairy,
	CategoryBakery,
	CategoryBeverages,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusMatched   Status = "matched"
	StatusClaimed   Status = "claimed"
	StatusPickedUp  Status = "picked_up"
	StatusExpired   Status = "expired"
	StatusCollected Status = "collected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMatched, StatusClaimed, StatusPickedUp, StatusExpired, StatusCollected:
		return true
	}
	return false
}

// FoodPost is a single surplus-food listing. Fields after ExpiryTime are display-only
// and never consulted when filtering.
type FoodPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Urgency     Urgency   `json:"urgency"`
	Status      Status    `json:"status"`
	Location    string    `json:"location"`
	Quantity    string    `json:"quantity"`
	PostedAt    time.Time `json:"postedAt"`
	ExpiryTime  time.Time `json:"expiryTime"`

	DonorName     string   `json:"donorName,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	PriorityScore *int     `json:"priorityScore,omitempty"`
	MatchCount    *int     `json:"matchCount,omitempty"`
	MatchScore    *int     `json:"matchScore,omitempty"`
	Recipient     string   `json:"recipient,omitempty"`
}
