package model

// PurchaseRecord is one row of the purchase table.
type PurchaseRecord struct {
	// PurchaseID identifies the purchase and is unique across the table.
	PurchaseID int `json:"purchase_id"`

	// ScreenName is the player's screen name. A player appears once per purchase.
	ScreenName string `json:"screen_name"`

	// Age is the player's age in years.
	Age int `json:"age"`

	// Gender is the player's gender label. The set of labels is open.
	Gender string `json:"gender"`

	// ItemID identifies the purchased item.
	ItemID int `json:"item_id"`

	// ItemName is the display name of the purchased item.
	ItemName string `json:"item_name"`

	// Price is the amount paid. Always non-negative.
	Price float64 `json:"price"`
}

// Player is a distinct screen name with its demographics.
type Player struct {
	ScreenName string `json:"screen_name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
}
