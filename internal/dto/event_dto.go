package dto

import "time"

// InnovationViewedMessage is the payload of the INNOVATION_VIEWED topic.
type InnovationViewedMessage struct {
	InnovationId int       `json:"innovation_id"`
	ViewedAt     time.Time `json:"viewed_at"`
}
