package domain

// Sound is an entry in the fixed catalog of alarm tones
type Sound struct {
	File string // File name, resolved against the sounds directory
	ID   string
	Name string
}

// Sounds is the tone catalog. The first entry is the default.
var Sounds = []Sound{
	{ID: "default", Name: "Default", File: "alarm-clock.wav"},
	{ID: "digital", Name: "Digital", File: "digital-alarm.wav"},
	{ID: "bell", Name: "Bell", File: "bell-alarm.wav"},
	{ID: "chime", Name: "Chime", File: "chime-alarm.wav"},
	{ID: "gentle", Name: "Gentle Wake", File: "gentle-alarm.wav"},
	{ID: "nature", Name: "Nature", File: "nature-alarm.wav"},
	{ID: "beep", Name: "Classic Beep", File: "beep-alarm.wav"},
	{ID: "marimba", Name: "Marimba", File: "marimba-alarm.wav"},
}

// DefaultSoundID is the id of the first catalog entry
const DefaultSoundID = "default"

// ResolveSound returns the catalog entry for id, falling back to the default entry
func ResolveSound(id string) Sound {
	for _, s := range Sounds {
		if s.ID == id {
			return s
		}
	}
	return Sounds[0]
}
