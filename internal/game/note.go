package game

type Note struct {
	TimestampMs int64 // When the note crosses the judgement line, from song start
	Lane        int   // The chart column, not range checked
}

// InLane reports whether the note falls on one of laneCount tracks.
func (n Note) InLane(laneCount int) bool {
	return n.Lane >= 0 && n.Lane < laneCount
}
