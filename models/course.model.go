package models

import "gorm.io/gorm"

// Course represents a marketplace course authored by a user.
// Seats is the number of open seats and must stay within [0, TotalSeats];
// only the enrollment engine increments and decrements it, catalog edits
// never touch it.
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Level        string  `json:"level"`
	AccessType   string  `json:"accessType"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Duration     int64   `json:"duration" gorm:"default:0"` // duration in hours
	TotalVideos  int     `json:"totalVideos" gorm:"default:0"`
	TotalLessons int     `json:"totalLessons" gorm:"default:0"`
	AuthorEmail  string  `json:"authorEmail" gorm:"index"`
	Seats        int     `json:"seats"`
	TotalSeats   int     `json:"totalSeats"` // seat allotment at creation time
}

// CourseSummary is the display projection returned for enrolled-course listings.
type CourseSummary struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}
