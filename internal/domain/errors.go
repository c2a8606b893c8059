package domain

import "errors"

var (
	ErrAlarmNotFound   = errors.New("alarm not found")
	ErrInvalidAlarm    = errors.New("invalid alarm")
	ErrRecordNotFound  = errors.New("no saved alarms for user")
	ErrSchedulerLocked = errors.New("scheduler already running in another process")
)
