package placement

type Status string

const (
	StatusApplied            Status = "applied"
	StatusUnderReview        Status = "under_review"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusOffered            Status = "offered"
	StatusAccepted           Status = "accepted"
	StatusRejectedOffer      Status = "rejected_offer"
	StatusCompleted          Status = "completed"
)

// transitions is the allowed forward edge set. Self-transitions are always
// permitted so that re-sending a patch stays idempotent.
var transitions = map[Status][]Status{
	StatusApplied:            {StatusUnderReview, StatusRejected},
	StatusUnderReview:        {StatusApproved, StatusRejected},
	StatusApproved:           {StatusInterviewScheduled, StatusOffered, StatusRejected},
	StatusInterviewScheduled: {StatusOffered, StatusRejected},
	StatusOffered:            {StatusAccepted, StatusRejectedOffer},
	StatusAccepted:           {StatusCompleted},
	StatusRejected:           {},
	StatusRejectedOffer:      {},
	StatusCompleted:          {},
}

func ParseStatus(s string) (Status, bool) {
	if _, ok := transitions[Status(s)]; ok {
		return Status(s), true
	}
	return "", false
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}
