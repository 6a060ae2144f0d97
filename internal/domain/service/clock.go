package service

import "time"

// Clock supplies the current instant and the location that defines calendar days.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}
