package audio

// Pan maps a sibling position to a stereo balance in [-1.0, 1.0]. A lone item
// sits at the centre; larger sibling lists spread evenly from full left to
// full right, so the first item is always -1.0 and the last always 1.0.
func Pan(index, count int) float64 {
	if count <= 1 {
		return 0.0
	}
	return -1.0 + 2.0*float64(index)/float64(count-1)
}
