package models

import (
	"reflect"
	"testing"
	"time"
)

func TestReservationIsCancelled(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"Annulée", true},
		{"ANNULÉ", true},
		{"cancelled", true},
		{"Cancelled by guest", true},
		{"Confirmée", false},
		{"", false},
	}
	for _, tc := range cases {
		r := Reservation{Status: tc.status}
		if r.IsCancelled() != tc.want {
			t.Fatalf("IsCancelled(%q) = %v, want %v", tc.status, !tc.want, tc.want)
		}
	}
}

func TestAvailabilityClosure(t *testing.T) {
	closed := Availability{ClosedFlag: "x", AvailableCount: 4}
	if !closed.IsClosed() {
		t.Fatal("flag x must close the date regardless of count")
	}
	if got := closed.ClosureReasons(); !reflect.DeepEqual(got, []string{"ferme"}) {
		t.Fatalf("reasons = %v, want [ferme]", got)
	}

	soldOut := Availability{AvailableCount: 0}
	if !soldOut.IsClosed() {
		t.Fatal("zero count must close the date")
	}
	if got := soldOut.ClosureReasons(); !reflect.DeepEqual(got, []string{"stock"}) {
		t.Fatalf("reasons = %v, want [stock]", got)
	}

	both := Availability{ClosedFlag: "X", AvailableCount: 0}
	if got := both.ClosureReasons(); !reflect.DeepEqual(got, []string{"ferme", "stock"}) {
		t.Fatalf("reasons = %v, want [ferme stock]", got)
	}

	open := Availability{AvailableCount: 3}
	if open.IsClosed() || len(open.ClosureReasons()) != 0 {
		t.Fatal("open date misclassified")
	}
}

func TestEventImpactPercent(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{0, 0},
		{6, 60},
		{10, 100},
		{15, 100}, // clamped
		{-2, 0},
	}
	for _, tc := range cases {
		e := Event{ImpactScore: tc.score}
		if got := e.ImpactPercent(); got != tc.want {
			t.Fatalf("ImpactPercent(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestEventEffectiveEnd(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	e := Event{StartDate: &start}
	if got := e.EffectiveEnd(); got == nil || !got.Equal(start) {
		t.Fatalf("EffectiveEnd without end date = %v, want start", got)
	}
}
