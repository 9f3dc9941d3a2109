package entity

import "time"

// Milestone represents one extracted phase of a project scope document.
// Field names follow the serialized contract consumed by the viewer UI.
type Milestone struct {
	ID             string   `json:"id"`
	MilestoneLabel string   `json:"milestoneLabel"`
	Title          string   `json:"title"`
	Scope          string   `json:"scope"`
	Tasks          []string `json:"tasks"`
	Exclusions     []string `json:"exclusions"`
	EstimatedHours float64  `json:"estimatedHours"`
	PriceEstimate  float64  `json:"priceEstimate"`
}

// Ballpark is the aggregate hours/price total across all milestones.
type Ballpark struct {
	Hours float64 `json:"hours"`
	Price float64 `json:"price"`
}

// Project is the final record produced by one extraction call.
// Milestones keep detection order; TotalBallpark may be absent when an
// external extractor omitted it.
type Project struct {
	FileName      string      `json:"fileName"`
	UploadDate    time.Time   `json:"uploadDate"`
	Milestones    []Milestone `json:"milestones"`
	TotalBallpark *Ballpark   `json:"totalBallpark,omitempty"`
}
