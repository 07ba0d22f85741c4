// Package hubstore holds the hub sequence operations. Every function returns
// a fresh slice and leaves its input untouched; the caller owns the state slot.
package hubstore

import (
	"time"

	"hubboard/internal/models"

	"github.com/google/uuid"
)

// Seed returns the initial board: one hub per status, newest first.
func Seed() []models.Hub {
	return []models.Hub{
		{SerialNo: uuid.NewString(), Status: models.StatusNew, StatusDate: "1681146337664"},
		{SerialNo: uuid.NewString(), Status: models.StatusActive, StatusDate: "1681145337664"},
		{SerialNo: uuid.NewString(), Status: models.StatusSuspended, StatusDate: "1681144337664"},
	}
}

// Add prepends a fresh NEW hub stamped with the current time.
func Add(hubs []models.Hub) []models.Hub {
	return AddAt(hubs, time.Now())
}

func AddAt(hubs []models.Hub, now time.Time) []models.Hub {
	out := make([]models.Hub, 0, len(hubs)+1)
	out = append(out, models.NewHub(now))
	return append(out, hubs...)
}

// Update replaces the hub keyed by serialNo with rec. An unknown key yields
// an unchanged copy.
func Update(hubs []models.Hub, serialNo string, rec models.Hub) []models.Hub {
	out := make([]models.Hub, len(hubs))
	for i, h := range hubs {
		if h.SerialNo == serialNo {
			out[i] = rec
			continue
		}
		out[i] = h
	}
	return out
}

func Find(hubs []models.Hub, serialNo string) (models.Hub, bool) {
	for _, h := range hubs {
		if h.SerialNo == serialNo {
			return h, true
		}
	}
	return models.Hub{}, false
}
