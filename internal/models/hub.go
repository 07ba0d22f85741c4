package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status — жизненный цикл хаба.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

var ErrUnknownStatus = errors.New("unknown hub status")

// AllStatuses returns the statuses in selector order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusActive, StatusSuspended}
}

// ParseStatus accepts any case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusActive, StatusSuspended:
		return true
	}
	return false
}

// Label — подпись в селекторе.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusSuspended:
		return "Suspended"
	default:
		return "New"
	}
}

// Color — цвет статуса на карточке.
func (s Status) Color() string {
	switch s {
	case StatusActive:
		return "green"
	case StatusSuspended:
		return "red"
	default:
		return "orange"
	}
}

// Hub — единственная сущность доски.
type Hub struct {
	SerialNo   string `json:"serialNo"`
	Status     Status `json:"status"`
	StatusDate string `json:"statusDate"` // миллисекунды от epoch
}

// NewHub creates a hub in the NEW state stamped with now.
func NewHub(now time.Time) Hub {
	return Hub{
		SerialNo:   uuid.NewString(),
		Status:     StatusNew,
		StatusDate: Timestamp(now),
	}
}

// WithStatus returns a copy carrying the new status. StatusDate moves only
// when the status actually differs.
func (h Hub) WithStatus(s Status, now time.Time) Hub {
	if s == h.Status {
		return h
	}
	return Hub{
		SerialNo:   h.SerialNo,
		Status:     s,
		StatusDate: Timestamp(now),
	}
}

func (h Hub) StatusTime() (time.Time, error) {
	ms, err := strconv.ParseInt(h.StatusDate, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// Timestamp formats t as epoch milliseconds.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
