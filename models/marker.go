package models

// Marker is a renderer-agnostic description of an issue on the map.
type Marker struct {
	ID          int           `json:"id"`
	Coordinates Coordinates   `json:"coordinates"`
	Color       string        `json:"color"`
	PopupText   string        `json:"popupText"`
	Category    IssueCategory `json:"category"`
	Status      IssueStatus   `json:"status"`
	Opacity     float64       `json:"opacity"`
	FillOpacity float64       `json:"fillOpacity"`
	Emphasized  bool          `json:"emphasized"`
}
