package providers

import "errors"

// ErrNoScheduleAvailable indicates the feed has no "fact" section.
var ErrNoScheduleAvailable = errors.New("no schedule available")
