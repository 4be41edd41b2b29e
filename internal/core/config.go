package core

// RuntimeConfig carries the resolved settings for one maze generation run.
type RuntimeConfig struct {
	Width    int    // Grid width in cells
	Height   int    // Grid height in cells
	Seed     int64  // RNG seed, already resolved from flags, config or time
	Strategy string // Registered growth strategy ID
}
