// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package delivery computes the delivery slots offered at checkout.
package delivery

import (
	"fmt"
	"sync"
	"time"
)

const (
	// NumDays is the number of days offered, starting today.
	NumDays = 7

	firstHour = 10
	lastHour  = 20
)

// Dates returns the next NumDays calendar days starting with the day of now,
// formatted YYYY-MM-DD in now's location.
func Dates(now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]string, NumDays)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i).Format(time.DateOnly)
	}
	return dates
}

// TimeSlots returns the half-hour slots of every hour from 10 to 20, i.e.
// 10:00, 10:30, ..., 20:00, 20:30.
func TimeSlots() []string {
	slots := make([]string, 0, 2*(lastHour-firstHour+1))
	for hour := firstHour; hour <= lastHour; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00", hour), fmt.Sprintf("%d:30", hour))
	}
	return slots
}

// Slot is a chosen delivery date and time. Either may be empty while the
// customer is still choosing.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Complete reports whether both date and time are chosen.
func (s Slot) Complete() bool {
	return s.Date != "" && s.Time != ""
}

// NewSelector returns a Selector calling onSelect after every selection.
func NewSelector(onSelect func(date string, time string)) *Selector {
	return &Selector{
		onSelect: onSelect,
	}
}

// Selector tracks a slot being chosen. Selecting the date or the time calls
// onSelect with the current pair, even when the other half is still empty.
// Slots are not checked against the offered dates or any availability.
type Selector struct {
	mu       sync.Mutex
	slot     Slot
	onSelect func(date string, time string)
}

func (s *Selector) SelectDate(date string) {
	s.mu.Lock()
	s.slot.Date = date
	slot := s.slot
	s.mu.Unlock()
	s.onSelect(slot.Date, slot.Time)
}

func (s *Selector) SelectTime(t string) {
	s.mu.Lock()
	s.slot.Time = t
	slot := s.slot
	s.mu.Unlock()
	s.onSelect(slot.Date, slot.Time)
}

// Slot returns the current selection.
func (s *Selector) Slot() Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot
}
