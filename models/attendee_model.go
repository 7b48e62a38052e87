package models

import "time"

// Attendee is a guest who confirmed through the hero dialog. UserAgent and
// Referrer come from the submitting request; Source identifies which part of
// the site the submission came from.
type Attendee struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Source    string    `json:"source" bson:"source"`
	UserAgent string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty" bson:"referrer,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
