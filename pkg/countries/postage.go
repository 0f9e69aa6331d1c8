package countries

// PostageZone is the Royal Mail zone a letter is billed against.
type PostageZone string

const (
	PostageUK          PostageZone = "united-kingdom"
	PostageEurope      PostageZone = "europe"
	PostageRestOfWorld PostageZone = "rest-of-world"

	// PostageFirst and PostageSecond are domestic classes chosen by the
	// sending service rather than derived from the destination.
	PostageFirst  PostageZone = "first"
	PostageSecond PostageZone = "second"
)

// Description returns the human-readable form used in letter previews.
func (z PostageZone) Description() string {
	switch z {
	case PostageFirst:
		return "first class"
	case PostageSecond:
		return "second class"
	case PostageEurope:
		return "international (Europe)"
	case PostageRestOfWorld:
		return "international (rest of world)"
	default:
		return string(z)
	}
}
