package placement

import "testing"

func TestParseStatus(t *testing.T) {
	valid := []string{
		"applied", "under_review", "approved", "rejected",
		"interview_scheduled", "offered", "accepted", "rejected_offer", "completed",
	}
	for _, s := range valid {
		if _, ok := ParseStatus(s); !ok {
			t.Fatalf("ParseStatus(%q): expected ok", s)
		}
	}

	for _, s := range []string{"", "done", "APPLIED", "in_review"} {
		if _, ok := ParseStatus(s); ok {
			t.Fatalf("ParseStatus(%q): expected not ok", s)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusApplied, StatusUnderReview},
		{StatusApplied, StatusRejected},
		{StatusUnderReview, StatusApproved},
		{StatusApproved, StatusInterviewScheduled},
		{StatusApproved, StatusOffered},
		{StatusInterviewScheduled, StatusOffered},
		{StatusOffered, StatusAccepted},
		{StatusOffered, StatusRejectedOffer},
		{StatusAccepted, StatusCompleted},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransitionTo(tr.to) {
			t.Fatalf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusApplied, StatusCompleted},
		{StatusApplied, StatusOffered},
		{StatusRejected, StatusApplied},
		{StatusCompleted, StatusApplied},
		{StatusUnderReview, StatusAccepted},
		{StatusRejectedOffer, StatusOffered},
	}
	for _, tr := range denied {
		if tr.from.CanTransitionTo(tr.to) {
			t.Fatalf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestSelfTransitionAlwaysAllowed(t *testing.T) {
	for s := range transitions {
		if !s.CanTransitionTo(s) {
			t.Fatalf("expected %s -> %s to be allowed", s, s)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	terminal := map[Status]bool{
		StatusRejected:      true,
		StatusRejectedOffer: true,
		StatusCompleted:     true,
	}
	for s := range transitions {
		if got := s.Terminal(); got != terminal[s] {
			t.Fatalf("Terminal(%s) = %v, want %v", s, got, terminal[s])
		}
	}
}
