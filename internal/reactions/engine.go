package reactions

// Intent is the vote a user is casting on a blog.
type Intent string

const (
	Like    Intent = "like"
	Dislike Intent = "dislike"
)

// Valid reports whether the intent is one of the two known votes.
func (i Intent) Valid() bool {
	return i == Like || i == Dislike
}

// Apply computes the new like/dislike membership for a blog after userID
// casts a vote.
//
// The same rules run for both intents with the roles swapped:
//  1. the user is removed from the opposite set unconditionally, so a user
//     can never sit in both sets after any call;
//  2. if the user is already in the target set the vote toggles off and the
//     resulting reaction is nil;
//  3. otherwise the user joins the target set and the resulting reaction is
//     the intent itself.
//
// Apply never mutates its inputs; callers persist the returned sets in a
// single write.
func Apply(likes, dislikes []string, userID string, intent Intent) (newLikes, newDislikes []string, result *Intent) {
	target, opposite := likes, dislikes
	if intent == Dislike {
		target, opposite = dislikes, likes
	}

	opposite = remove(opposite, userID)

	if contains(target, userID) {
		target = remove(target, userID)
	} else {
		target = append(append([]string(nil), target...), userID)
		r := intent
		result = &r
	}

	if intent == Dislike {
		return opposite, target, result
	}
	return target, opposite, result
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// remove returns a copy of set without id. The copy keeps the original order
// so repeated calls on the same stored state stay deterministic.
func remove(set []string, id string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
