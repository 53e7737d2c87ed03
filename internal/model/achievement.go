package model

// TriggerKind identifies which counter an achievement watches.
type TriggerKind string

const (
	TriggerLikedBooks    TriggerKind = "liked_books_count"
	TriggerFinishedBooks TriggerKind = "finished_books_count"
	TriggerCollections   TriggerKind = "collections_count"
	TriggerMessages      TriggerKind = "message_count"
)

func (k TriggerKind) Valid() bool {
	switch k {
	case TriggerLikedBooks, TriggerFinishedBooks, TriggerCollections, TriggerMessages:
		return true
	}
	return false
}

// Trigger gates an achievement: it completes once the counter for Kind
// reaches Count.
type Trigger struct {
	Kind  TriggerKind `json:"kind"`
	Count int         `json:"count"`
}

// Achievement is one catalog entry. Completed transitions false to
// true exactly once and never reverts; a profile reset replaces the
// whole catalog with the seed instead.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ExpCount    int     `json:"expCount"`
	Trigger     Trigger `json:"trigger"`
	Completed   bool    `json:"completed"`
}
