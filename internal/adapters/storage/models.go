package storage

import "time"

// AlarmModel is the GORM model for alarms table
type AlarmModel struct {
	CreatedAt   time.Time
	Days        string    `gorm:"not null;default:''"`
	Enabled     bool      `gorm:"not null;default:true;index:idx_enabled"`
	ID          string    `gorm:"primaryKey"`
	Label       string    `gorm:"not null;default:''"`
	NextTrigger time.Time `gorm:"not null;index:idx_next_trigger"`
	Position    int       `gorm:"not null;default:0;index:idx_position"`
	SoundID     string    `gorm:"not null;default:'default'"`
	TimeOfDay   string    `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (AlarmModel) TableName() string { return "alarms" }
