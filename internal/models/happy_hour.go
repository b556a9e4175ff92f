package models

// HappyHour is the singleton banner record. Times are local HH:MM strings.
type HappyHour struct {
	ID        string `json:"_id,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Image     string `json:"image"`
}
