// Package domain contains core concepts of the message board.
// This file defines the Message entity and the payload used to write it.
package domain

import "time"

// Message is a persisted board entry.
// ID and CreatedAt are assigned once at creation and never change.
type Message struct {
	ID            string
	Title         string
	Body          string
	AttachmentURL string
	CreatedAt     uint64  // nanoseconds since epoch
	UpdatedAt     *uint64 // nil until the first update
}

// MessagePayload holds the fields a caller supplies to create or update a Message.
type MessagePayload struct {
	Title         string
	Body          string
	AttachmentURL string
}

// Updated reports whether the message has been updated since its creation.
func (m Message) Updated() bool {
	return m.UpdatedAt != nil
}

func (m Message) CreatedTime() time.Time {
	return time.Unix(0, int64(m.CreatedAt)).UTC()
}

// UpdatedTime returns the last update time, or the zero time if the message was never updated.
func (m Message) UpdatedTime() time.Time {
	if m.UpdatedAt == nil {
		return time.Time{}
	}
	return time.Unix(0, int64(*m.UpdatedAt)).UTC()
}
