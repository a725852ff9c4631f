package models

import "time"

// Briefing holds the metadata for one day's audio briefing, keyed by date
// and duplicated under "latest".
type Briefing struct {
	Date              string    `json:"date"`
	Title             string    `json:"title"`
	Script            string    `json:"script"`
	AudioURL          string    `json:"audioUrl"`
	Duration          int       `json:"duration"`
	DurationFormatted string    `json:"durationFormatted"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (b *Briefing) StampWriteTime(t time.Time) { b.CreatedAt = t }
