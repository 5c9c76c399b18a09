package report

import (
	"strconv"
	"strings"
)

// groupKey is a composite key over the string forms of the group-by values.
// Every component is length-prefixed, so values that contain the output
// separator never collide: ("a_b", "c") and ("a", "b_c") are distinct
// groups even though both print as "a_b_c".
type groupKey string

func newGroupKey(values []string) groupKey {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}

	return groupKey(b.String())
}
