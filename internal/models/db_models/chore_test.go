package db_models

import "testing"

func TestChoreStatusValid(t *testing.T) {
	for s := ChoreStatusNotStarted; s <= ChoreStatusCompleted; s++ {
		if !s.Valid() {
			t.Errorf("status %d should be valid", s)
		}
	}
	if ChoreStatus(-1).Valid() {
		t.Error("status -1 should be invalid")
	}
	if ChoreStatus(4).Valid() {
		t.Error("status 4 should be invalid")
	}
}

func TestChoreStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ChoreStatus
		want     bool
	}{
		{ChoreStatusNotStarted, ChoreStatusInProgress, true},
		{ChoreStatusInProgress, ChoreStatusWaitingApproval, true},
		{ChoreStatusWaitingApproval, ChoreStatusCompleted, true},
		{ChoreStatusWaitingApproval, ChoreStatusInProgress, true},

		// Illegal jumps
		{ChoreStatusNotStarted, ChoreStatusCompleted, false},
		{ChoreStatusNotStarted, ChoreStatusWaitingApproval, false},
		{ChoreStatusInProgress, ChoreStatusCompleted, false},
		{ChoreStatusInProgress, ChoreStatusNotStarted, false},
		{ChoreStatusWaitingApproval, ChoreStatusNotStarted, false},

		// Completed is terminal
		{ChoreStatusCompleted, ChoreStatusNotStarted, false},
		{ChoreStatusCompleted, ChoreStatusInProgress, false},
		{ChoreStatusCompleted, ChoreStatusWaitingApproval, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestChoreStatusString(t *testing.T) {
	cases := map[ChoreStatus]string{
		ChoreStatusNotStarted:      "not_started",
		ChoreStatusInProgress:      "in_progress",
		ChoreStatusWaitingApproval: "waiting_approval",
		ChoreStatusCompleted:       "completed",
		ChoreStatus(9):             "unknown",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("String(%d) = %q, want %q", int(s), s.String(), want)
		}
	}
}
