package report

import (
	"fmt"
	"sort"
)

// TopN returns the n highest-count entries of a count map as formatted
// "label:count" strings, ties broken alphabetically so output is stable.
func TopN(counts map[string]int64, n int) []string {
	type kv struct {
		Key   string
		Value int64
	}

	var ss []kv
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	result := make([]string, limit)
	for i := 0; i < limit; i++ {
		result[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return result
}
