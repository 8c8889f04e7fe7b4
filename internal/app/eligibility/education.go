package eligibility

import "strings"

// educationBands maps free-text education strings to an ordinal level via
// case-insensitive keyword substring search. Bands are ordered highest
// first: "higher secondary" must resolve to level 2 before the level-1
// "secondary" keyword can shadow it. Unrecognized text maps to 0.
var educationBands = []struct {
	level    int
	keywords []string
}{
	{6, []string{"phd", "doctorate"}},
	{5, []string{"postgrad", "post grad", "post-grad", "m.tech", "mtech", "mba", "masters", "m.sc"}},
	{4, []string{"graduat", "b.tech", "btech", "b.sc", "b.com", "b.a", "degree"}},
	{3, []string{"diploma", "polytechnic"}},
	{2, []string{"12", "hsc", "higher secondary", "plus two", "intermediate"}},
	{1, []string{"10", "sslc", "matric", "secondary"}},
}

// EducationLevel maps an education string to its ordinal 0-6. The scale is a
// hierarchy, not an exact match: a higher citizen level always satisfies a
// lower requirement.
func EducationLevel(s string) int {
	s = strings.ToLower(s)
	for _, band := range educationBands {
		for _, kw := range band.keywords {
			if strings.Contains(s, kw) {
				return band.level
			}
		}
	}
	return 0
}
