package tui

import (
	"time"

	"github.com/MKhiriev/records-dashboard/models"
)

type pendingLoadedMsg struct {
	pending []models.PendingRecords
	err     error
	at      time.Time
}

type refreshTickMsg struct{}
