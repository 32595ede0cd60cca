package simulation

import "time"

// seedFunc returns a pseudo-random seed (override for deterministic tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides how a seed is derived when the parameters leave it zero.
func SetSeedFunc(f func() int64) { seedFunc = f }
