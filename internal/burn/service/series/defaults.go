package series

import "time"

const (
	alignWorkerCount = 8
	fanOutPoolSize   = 16

	subReadTimeout = 5 * time.Second
)
