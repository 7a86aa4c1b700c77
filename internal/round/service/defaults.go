package service

import "time"

const (
	sleepDuration     = 5 * time.Second
	idleSleepDuration = 30 * time.Second

	schedulerActor = "scheduler"
)
