package models

import "time"

// Exercise is a timed yoga pose or movement.
type Exercise struct {
	ID              string   `json:"id"                 yaml:"id"`
	Title           string   `json:"title"              yaml:"title"`
	Description     string   `json:"description"        yaml:"description"`
	Category        string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags            []string `json:"tags"               yaml:"tags"`
	DurationMinutes float64  `json:"duration_minutes"   yaml:"duration_minutes"`
}

// Story is a narrative block read aloud between exercises.
type Story struct {
	ID      string   `json:"id"             yaml:"id"`
	Title   string   `json:"title"          yaml:"title"`
	Content string   `json:"content"        yaml:"content"`
	Mood    string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Tags    []string `json:"tags"           yaml:"tags"`
	// Time is expressed in minutes. Zero means the story has no time set.
	Time float64 `json:"time,omitempty" yaml:"time,omitempty"`
}

// Practical is an action prompt such as fetching a prop or opening a window.
type Practical struct {
	ID          string   `json:"id"                 yaml:"id"`
	Title       string   `json:"title"              yaml:"title"`
	Instruction string   `json:"instruction"        yaml:"instruction"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        []string `json:"tags"               yaml:"tags"`
	Time        float64  `json:"time,omitempty"     yaml:"time,omitempty"`
}

// Session is a planned running order of cards.
type Session struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Story       string    `json:"story,omitempty"`
	Category    string    `json:"category,omitempty"`
	Level       string    `json:"level,omitempty"`
	// Exercises holds the ordered card ids of any kind. The field name is
	// kept for compatibility with existing data.
	Exercises       []string `json:"exercises"`
	DurationMinutes float64  `json:"duration_minutes"`
}

// StoryBook groups stories that are usually told together.
type StoryBook struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Stories     []string `json:"stories"`
}

// CardSet is a reusable sequence of cards of a single kind.
type CardSet struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	Cards       []string `json:"cards"`
}
