package matching

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		student StudentProfile
		cand    Candidate
		want    int
	}{
		{
			name:    "skill overlap plus department bonus",
			student: StudentProfile{Department: "CS", Skills: []string{"python", "sql"}},
			cand:    Candidate{Department: "CS", RequiredSkills: []string{"python"}},
			want:    2,
		},
		{
			name:    "skill overlap without department bonus",
			student: StudentProfile{Department: "CS", Skills: []string{"python", "sql"}},
			cand:    Candidate{Department: "EE", RequiredSkills: []string{"python", "sql", "ml"}},
			want:    2,
		},
		{
			name:    "no overlap no department",
			student: StudentProfile{Skills: []string{"go"}},
			cand:    Candidate{RequiredSkills: []string{"rust"}},
			want:    0,
		},
		{
			name:    "empty departments never count as a match",
			student: StudentProfile{Department: "", Skills: nil},
			cand:    Candidate{Department: "", RequiredSkills: nil},
			want:    0,
		},
		{
			name:    "tags compare trimmed and case-folded",
			student: StudentProfile{Department: "cs", Skills: []string{"  Python "}},
			cand:    Candidate{Department: "CS", RequiredSkills: []string{"python"}},
			want:    2,
		},
		{
			name:    "duplicate required tags count once",
			student: StudentProfile{Skills: []string{"python"}},
			cand:    Candidate{RequiredSkills: []string{"python", "Python", "python"}},
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.student, tt.cand); got != tt.want {
				t.Fatalf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	student := StudentProfile{Department: "CS", Skills: []string{"python", "sql"}}
	candidates := []Candidate{
		{Department: "CS", RequiredSkills: []string{"python"}},
		{Department: "EE", RequiredSkills: []string{"python", "sql", "ml"}},
	}

	ranked := Rank(student, candidates, 10)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Index != 0 || ranked[0].Score != 2 {
		t.Fatalf("first result: got index=%d score=%d, want index=0 score=2", ranked[0].Index, ranked[0].Score)
	}
	if ranked[1].Index != 1 || ranked[1].Score != 2 {
		t.Fatalf("second result: got index=%d score=%d, want index=1 score=2", ranked[1].Index, ranked[1].Score)
	}
}

func TestRank_SortedNonIncreasingAndLimited(t *testing.T) {
	student := StudentProfile{Skills: []string{"go", "sql", "docker"}}
	candidates := []Candidate{
		{RequiredSkills: []string{"haskell"}},
		{RequiredSkills: []string{"go", "sql", "docker"}},
		{RequiredSkills: []string{"go"}},
		{RequiredSkills: []string{"go", "sql"}},
	}

	ranked := Rank(student, candidates, 3)
	if len(ranked) != 3 {
		t.Fatalf("expected limit to cap results at 3, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("scores not non-increasing at %d: %d > %d", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Index != 1 {
		t.Fatalf("expected full-match candidate first, got index %d", ranked[0].Index)
	}
}

func TestRank_ZeroScoresIncluded(t *testing.T) {
	student := StudentProfile{Skills: []string{"go"}}
	ranked := Rank(student, []Candidate{{RequiredSkills: []string{"cobol"}}}, 10)
	if len(ranked) != 1 || ranked[0].Score != 0 {
		t.Fatalf("expected single zero-score result, got %+v", ranked)
	}
}

func TestRank_EdgeCases(t *testing.T) {
	student := StudentProfile{Skills: []string{"go"}}

	if got := Rank(student, nil, 10); len(got) != 0 {
		t.Fatalf("empty candidates: expected empty result, got %d", len(got))
	}
	if got := Rank(student, []Candidate{{RequiredSkills: []string{"go"}}}, 0); len(got) != 0 {
		t.Fatalf("limit=0: expected empty result, got %d", len(got))
	}
	if got := Rank(student, []Candidate{{RequiredSkills: []string{"go"}}}, -1); len(got) != 0 {
		t.Fatalf("negative limit: expected empty result, got %d", len(got))
	}
}
