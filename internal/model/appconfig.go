package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied when the corresponding flag is not given
	DefaultVerbose      bool `json:"default_verbose"`
	DefaultMaxSolutions int  `json:"default_max_solutions"` // 0 = exhaustive
	ColorOutput         bool `json:"color_output"`

	RecentPuzzles []string `json:"recent_puzzles"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultVerbose:      false,
		DefaultMaxSolutions: 0,
		ColorOutput:         true,
		RecentPuzzles:       []string{},
	}
}

// RememberPuzzle records a puzzle file at the front of the recent list,
// dropping duplicates and keeping at most five entries.
func (c *AppConfig) RememberPuzzle(path string) {
	recent := []string{path}
	for _, p := range c.RecentPuzzles {
		if p != path && len(recent) < 5 {
			recent = append(recent, p)
		}
	}
	c.RecentPuzzles = recent
}
