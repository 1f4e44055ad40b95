package matching

import (
	"sort"
	"strings"
)

// StudentProfile is the matching-relevant slice of a profile.
type StudentProfile struct {
	Department string
	Skills     []string
}

// Candidate is the matching-relevant slice of an opening.
type Candidate struct {
	Department     string
	RequiredSkills []string
}

// Ranked pairs an input candidate (by position) with its score.
type Ranked struct {
	Index int
	Score int
}

// Score computes the match score for one candidate: the number of required
// skills the student has, plus one when both departments are set and equal.
// Tags are compared trimmed and case-folded.
func Score(student StudentProfile, c Candidate) int {
	have := make(map[string]struct{}, len(student.Skills))
	for _, s := range student.Skills {
		if t := normalizeTag(s); t != "" {
			have[t] = struct{}{}
		}
	}

	score := 0
	seen := make(map[string]struct{}, len(c.RequiredSkills))
	for _, r := range c.RequiredSkills {
		t := normalizeTag(r)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := have[t]; ok {
			score++
		}
	}

	if departmentMatches(student.Department, c.Department) {
		score++
	}
	return score
}

// Rank scores every candidate and returns the top limit entries in
// non-increasing score order. The sort is stable, so ties keep the input
// order. A limit of zero or less yields an empty result.
func Rank(student StudentProfile, candidates []Candidate, limit int) []Ranked {
	out := make([]Ranked, 0, len(candidates))
	if limit <= 0 {
		return out
	}

	for i, c := range candidates {
		out = append(out, Ranked{Index: i, Score: Score(student, c)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func departmentMatches(studentDept, openingDept string) bool {
	a := normalizeTag(studentDept)
	b := normalizeTag(openingDept)
	return a != "" && a == b
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
