package models

import "time"

// RawArticle is a single feed entry as ingested, before any AI processing.
type RawArticle struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	Published time.Time `json:"published"`
	Image     string    `json:"image"`
}

// Bullet is one analyst-style statement attributed to a source.
type Bullet struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Article is a fully processed news item ready for the daily document.
// Articles are immutable once assembled within a run.
type Article struct {
	ID          int64     `json:"id"`
	Headline    string    `json:"headline"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	SourceCount int       `json:"sourceCount"`
	Image       string    `json:"image"`
	Published   time.Time `json:"published"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary"`
	Bullets     []Bullet  `json:"bullets"`
}
