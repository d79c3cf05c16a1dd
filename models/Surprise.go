package models

import (
	"time"

	"gorm.io/datatypes"
)

// Surprise is the persisted, immutable form of a completed surprise.
// The ID is the client-generated share token (also the upload path prefix),
// assigned before any file upload happens. Rows are append-only: nothing in
// the server updates or deletes a surprise once it exists.
type Surprise struct {
	ID           string         `json:"surpriseId" gorm:"primaryKey;size:16"`
	SenderName   string         `json:"senderName" gorm:"size:200;not null"`
	ReceiverName string         `json:"receiverName" gorm:"size:200;not null"`
	Message      string         `json:"message" gorm:"type:text;not null"`
	Images       string         `json:"images"` // JSON array of public URLs
	AudioURL     *string        `json:"audioUrl"`
	ExtraData    datatypes.JSON `json:"extraData"` // {reasons, timeline}
	CreatedAt    time.Time      `json:"createdAt"`
}

// SurpriseExtras is the shape stored in ExtraData.
type SurpriseExtras struct {
	Reasons  []string        `json:"reasons"`
	Timeline []TimelineEntry `json:"timeline"`
}

// TimelineEntry is one milestone of the relationship timeline.
type TimelineEntry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
