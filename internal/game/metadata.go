package game

const (
	ModeStandard = 0
	ModeTaiko    = 1
	ModeCatch    = 2
	ModeMania    = 3

	MaxManiaKeyCount = 18
)

type Metadata struct {
	FormatVersion int
	AudioFilename string
	Mode          int

	Title   string
	Artist  string
	Creator string
	Version string // The difficulty name

	CircleSize float64 // Key count for mania charts
}
