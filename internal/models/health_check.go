package models

import "time"

// AssetStatus describes the files every render depends on.
type AssetStatus struct {
	Logo string `json:"logo"`
	Font string `json:"font"`
}

type HealthCheck struct {
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Assets    AssetStatus `json:"assets"`
}
