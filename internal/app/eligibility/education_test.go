package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel(t *testing.T) {
	cases := []struct {
		in    string
		level int
	}{
		{"PhD in Physics", 6},
		{"Doctorate", 6},
		{"Postgraduate", 5},
		{"M.Tech", 5},
		{"MBA", 5},
		{"Masters in Arts", 5},
		{"M.Sc Chemistry", 5},
		{"Graduate", 4},
		{"B.Tech", 4},
		{"BTech", 4},
		{"B.Sc", 4},
		{"B.Com", 4},
		{"Engineering Degree", 4},
		{"Diploma", 3},
		{"Polytechnic", 3},
		{"12th Pass", 2},
		{"HSC", 2},
		{"Higher Secondary", 2}, // must not be shadowed by the level-1 "secondary" keyword
		{"Plus Two", 2},
		{"Intermediate", 2},
		{"10th Pass", 1},
		{"SSLC", 1},
		{"Matriculation", 1},
		{"Secondary School", 1},
		{"", 0},
		{"none", 0},
		{"literate", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, EducationLevel(tc.in), "education %q", tc.in)
	}
}
