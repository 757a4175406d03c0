package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexID is a record identifier that tolerates both JSON strings and numbers,
// since the backend is not consistent about which it emits per resource.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

// Service is one entry of the services page.
type Service struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Project is one portfolio entry of the projects page.
type Project struct {
	ID          FlexID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Post is a single blog entry.
type Post struct {
	ID      FlexID `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Job is an open position listed on the careers page.
type Job struct {
	ID          FlexID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
}
