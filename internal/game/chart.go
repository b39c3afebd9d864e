package game

type Chart struct {
	Name      string // Archive entry the chart was read from
	Metadata  Metadata
	LaneCount int
	Notes     []Note
}

// Last returns the timestamp of the latest note, or 0 for an empty chart.
func (c *Chart) Last() int64 {
	var last int64
	for _, n := range c.Notes {
		if n.TimestampMs > last {
			last = n.TimestampMs
		}
	}
	return last
}

func (c *Chart) String() string {
	if c.Metadata.Artist == "" {
		return c.Metadata.Title + " [" + c.Metadata.Version + "]"
	}
	return c.Metadata.Artist + " - " + c.Metadata.Title + " [" + c.Metadata.Version + "]"
}
