package domain

import "time"

// FireEvent is emitted when an alarm reaches its trigger instant while enabled
type FireEvent struct {
	Alarm   Alarm
	FiredAt time.Time
}

// Message returns the user-facing text for the event
func (e FireEvent) Message() string {
	return "Alarm! " + e.Alarm.DisplayName()
}

// NoticeLevel is the severity of a transient notice
type NoticeLevel string

const (
	NoticeError NoticeLevel = "error"
	NoticeInfo  NoticeLevel = "info"
)

// Notice is a transient user-facing message
type Notice struct {
	Level   NoticeLevel
	Message string
}

// InfoNotice creates an informational notice
func InfoNotice(msg string) Notice {
	return Notice{Level: NoticeInfo, Message: msg}
}

// ErrorNotice creates an error notice
func ErrorNotice(msg string) Notice {
	return Notice{Level: NoticeError, Message: msg}
}
