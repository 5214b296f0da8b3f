package domain

// Deck is a named subset of the card catalog. The default deck contains the
// full collection and cannot be deleted.
type Deck struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cards       []LoreCard `json:"cards"`
	CreatedAt   int64      `json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

const DefaultDeckID = "default_full_deck"
