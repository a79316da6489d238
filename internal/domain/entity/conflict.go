package entity

// Conflict classifies how a registration candidate collides with the
// identities already in the store.
type Conflict int

const (
	// NoConflict means both the handle and the email are free.
	NoConflict Conflict = iota
	// HandleTaken means another identity already owns the handle.
	HandleTaken
	// EmailTaken means another identity already owns the email.
	EmailTaken
	// EmailAndHandleTaken means both values are already owned.
	EmailAndHandleTaken
)

// String returns the business code for the conflict kind.
func (c Conflict) String() string {
	switch c {
	case HandleTaken:
		return "HANDLE_TAKEN"
	case EmailTaken:
		return "EMAIL_TAKEN"
	case EmailAndHandleTaken:
		return "HANDLE_AND_EMAIL_TAKEN"
	default:
		return "NO_CONFLICT"
	}
}

// ResolveConflict decides whether a registration with the given normalized
// email and handle may proceed, given every existing identity whose email or
// handle matched either candidate value. It is a pure decision: fetching the
// matches is the store adapter's job.
//
// The store enforces one record per handle and one per email, so a query by
// email OR handle can legitimately return two records (one holding each
// value). ConsistentMatches reports whether the matches respect that shape.
func ResolveConflict(matches []*Identity, email, handle string) Conflict {
	var handleTaken, emailTaken bool
	for _, m := range matches {
		if m.Handle == handle {
			handleTaken = true
		}
		if m.Email == email {
			emailTaken = true
		}
	}

	switch {
	case handleTaken && emailTaken:
		return EmailAndHandleTaken
	case handleTaken:
		return HandleTaken
	case emailTaken:
		return EmailTaken
	default:
		return NoConflict
	}
}

// ConsistentMatches reports whether a set of email-OR-handle matches could
// have come from a store that is honoring its uniqueness constraints: no two
// records may share a handle or share an email. A violation means the store
// holds duplicate identities and the caller must surface it rather than pick
// an arbitrary winner.
func ConsistentMatches(matches []*Identity) bool {
	handles := make(map[string]struct{}, len(matches))
	emails := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := handles[m.Handle]; ok {
			return false
		}
		if _, ok := emails[m.Email]; ok {
			return false
		}
		handles[m.Handle] = struct{}{}
		emails[m.Email] = struct{}{}
	}

	return true
}
