package domain

import (
	"fmt"
	"time"
)

// DedupIds returns the distinct ids from the input, preserving first-seen
// order. Shared by the bulk fetch paths so repeated ids never multiply join
// fan-out or show up twice downstream.
func DedupIds(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// for debug
func (m Message) String() string {
	return fmt.Sprintf("[id:%d, author:%d, thread:%d, created:%s, body:%s]",
		m.Id, m.AuthorId, m.ThreadId, m.Created.Format(time.StampMilli), m.Body)
}

func (t Thread) String() string {
	s := fmt.Sprintf("[id:%d, type:%s, members:%v, messages:[", t.Id, t.Type, t.Members)
	for i, msg := range t.Messages {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", msg)
	}
	return s + "]]"
}
