package domain

// ReactionKind is the kind of reaction a user holds on a comment.
type ReactionKind int8

const (
	ReactionNone    ReactionKind = 0
	ReactionLike    ReactionKind = 1
	ReactionDislike ReactionKind = -1
)

func (k ReactionKind) String() string {
	switch k {
	case ReactionLike:
		return "LIKE"
	case ReactionDislike:
		return "DISLIKE"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the mutually exclusive counterpart of k.
func (k ReactionKind) Opposite() ReactionKind {
	return -k
}

// ReactionChange is the outcome of a reaction toggle.
type ReactionChange struct {
	// AuthorID is the author of the reacted comment.
	AuthorID int64
	// Added is true when the user now holds the requested reaction,
	// false when the toggle cancelled an existing one.
	Added bool
	// Replaced is true when the opposite reaction was dropped by this toggle.
	Replaced bool
}

// ToggleReaction returns the reaction held after toggling requested on top of current.
// Toggling the held kind cancels it; toggling the other kind replaces it.
func ToggleReaction(current, requested ReactionKind) (ReactionKind, ReactionChange) {
	if current == requested {
		return ReactionNone, ReactionChange{}
	}
	return requested, ReactionChange{Added: true, Replaced: current != ReactionNone}
}
