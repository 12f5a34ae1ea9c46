package streamer

import "time"

const (
	DefaultRefreshInterval = 2500 * time.Millisecond
	DefaultDelay           = 2 * time.Second
)
