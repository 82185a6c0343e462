package audio

// Cue names a short discrete sound shipped with the launcher theme.
type Cue string

const (
	CueFocus        Cue = "focus"
	CueBoundary     Cue = "boundary"
	CueSubmenuOpen  Cue = "submenu-open"
	CueSubmenuClose Cue = "submenu-close"
	CueSelect       Cue = "select"
	CueMenuOpen     Cue = "menu-open"
	CueMenuClose    Cue = "menu-close"
)

// Pitch offsets applied to spoken announcements when crossing menu levels.
// Positive on the way down, negative on the way back up, zero for plain
// sibling movement.
const (
	PitchEnterLevel = 30
	PitchLeaveLevel = -30
	PitchNeutral    = 0
)
