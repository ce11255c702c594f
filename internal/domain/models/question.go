package models

import "time"

// DefaultAuthor is used when a question is created without an author.
const DefaultAuthor = "anonymous"

// RecencyWindow is how far back a question still counts as recently published.
const RecencyWindow = 24 * time.Hour

type Question struct {
	ID           int64     `json:"id,omitempty"`
	QuestionText string    `json:"question_text" validate:"required,max=200"`
	PubDate      time.Time `json:"pub_date"`
	Author       string    `json:"author" validate:"max=200"`
	Choices      []Choice  `json:"choices,omitempty"`
}

func (q Question) String() string {
	return q.QuestionText
}

// WasPublishedRecently reports whether the question was published within
// the last RecencyWindow, counting from the current time.
func (q Question) WasPublishedRecently() bool {
	return q.WasPublishedRecentlyAt(time.Now())
}

// WasPublishedRecentlyAt reports whether now-RecencyWindow <= PubDate <= now.
// Both bounds are inclusive.
func (q Question) WasPublishedRecentlyAt(now time.Time) bool {
	return !q.PubDate.After(now) && !q.PubDate.Before(now.Add(-RecencyWindow))
}
