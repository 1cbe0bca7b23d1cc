package models

import "encoding/json"

// Song is the single entity of the service: title and artist are required,
// any other json fields travel in Extra. Songs have no identifier.
type Song struct {
	Title  string
	Artist string
	Extra  map[string]any
}

func (s Song) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		return json.Marshal(struct {
			Title  string `json:"title"`
			Artist string `json:"artist"`
		}{s.Title, s.Artist})
	}
	obj := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		obj[k] = v
	}
	obj["title"] = s.Title
	obj["artist"] = s.Artist
	return json.Marshal(obj)
}

func (s *Song) UnmarshalJSON(data []byte) error {
	obj := make(map[string]any)
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if title, ok := obj["title"].(string); ok {
		s.Title = title
	}
	if artist, ok := obj["artist"].(string); ok {
		s.Artist = artist
	}
	delete(obj, "title")
	delete(obj, "artist")
	s.Extra = nil
	if len(obj) != 0 {
		s.Extra = obj
	}
	return nil
}

// Clone copies the song along with its extra fields bag, so the copy
// can be handed out without sharing state with the original.
func (s Song) Clone() Song {
	c := s
	if s.Extra != nil {
		c.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = v
		}
	}
	return c
}
