package pg

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/oremod/oremod/shared/domain"
	sharedpg "github.com/oremod/oremod/shared/storage/pg"
)

// threadRow is one raw row of the aggregated thread query: the thread's
// scalar columns plus at most one member id and one message, both nullable
// because of the left outer joins.
type threadRow struct {
	id             domain.ThreadId
	threadType     domain.ThreadType
	modId          sql.NullInt64
	reportId       sql.NullInt64
	showInModInbox bool

	memberId sql.NullInt64

	msgId      sql.NullInt64
	msgAuthor  sql.NullInt64
	msgThread  sql.NullInt64
	msgBody    sql.NullString
	msgCreated sql.NullTime
}

// GetThreads fetches fully populated snapshots for the given thread ids in
// a single aggregated query. Ids with no matching thread are simply absent
// from the returned map; that is not an error. An empty id list returns an
// empty map without touching the database.
func (s *Storage) GetThreads(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
	if len(ids) == 0 {
		return map[domain.ThreadId]domain.Thread{}, nil
	}

	raw, err := queryThreadRows(s.db, ids)
	if err != nil {
		return nil, err
	}
	return buildThreads(raw), nil
}

// queryThreadRows runs the aggregated thread query against any Querier and
// materializes the raw join rows.
func queryThreadRows(q sharedpg.Querier, ids []domain.ThreadId) ([]threadRow, error) {
	rows, err := q.Query(`
        SELECT
            t.id, t.thread_type, t.mod_id, t.report_id, t.show_in_mod_inbox,
            tm.user_id,
            tmsg.id, tmsg.author_id, tmsg.thread_id, tmsg.body, tmsg.created
        FROM threads t
        LEFT OUTER JOIN threads_members tm ON t.id = tm.thread_id
        LEFT OUTER JOIN threads_messages tmsg ON t.id = tmsg.thread_id
        WHERE t.id = ANY($1)
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var raw []threadRow
	for rows.Next() {
		var r threadRow
		if err := rows.Scan(
			&r.id, &r.threadType, &r.modId, &r.reportId, &r.showInModInbox,
			&r.memberId,
			&r.msgId, &r.msgAuthor, &r.msgThread, &r.msgBody, &r.msgCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread row: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return raw, nil
}

// threadAccumulator collects the per-thread state while folding fan-out
// rows: scalar fields first-seen, child groups as sets keyed on their own
// identity.
type threadAccumulator struct {
	thread   domain.Thread
	members  map[domain.UserId]struct{}
	messages map[domain.MsgId]domain.Message
}

func newThreadAccumulator(r threadRow) *threadAccumulator {
	// Scalar columns are functionally determined by the thread id, so the
	// first row of the group is as good as any.
	t := domain.Thread{
		Id:             r.id,
		Type:           r.threadType,
		ShowInModInbox: r.showInModInbox,
	}
	if r.modId.Valid {
		modId := r.modId.Int64
		t.ModId = &modId
	}
	if r.reportId.Valid {
		reportId := r.reportId.Int64
		t.ReportId = &reportId
	}
	return &threadAccumulator{
		thread:   t,
		members:  make(map[domain.UserId]struct{}),
		messages: make(map[domain.MsgId]domain.Message),
	}
}

func mergeThreadRow(acc *threadAccumulator, r threadRow) {
	// Null child columns come from the outer joins (thread with no members
	// or no messages) and contribute nothing.
	if r.memberId.Valid {
		acc.members[r.memberId.Int64] = struct{}{}
	}
	if r.msgId.Valid {
		acc.messages[r.msgId.Int64] = domain.Message{
			Id:       r.msgId.Int64,
			AuthorId: r.msgAuthor.Int64,
			ThreadId: r.msgThread.Int64,
			Body:     r.msgBody.String,
			Created:  r.msgCreated.Time,
		}
	}
}

func (acc *threadAccumulator) finalize() domain.Thread {
	t := acc.thread

	t.Members = make([]domain.UserId, 0, len(acc.members))
	for id := range acc.members {
		t.Members = append(t.Members, id)
	}
	sort.Slice(t.Members, func(i, j int) bool { return t.Members[i] < t.Members[j] })

	t.Messages = make([]domain.Message, 0, len(acc.messages))
	for _, msg := range acc.messages {
		t.Messages = append(t.Messages, msg)
	}
	sort.Slice(t.Messages, func(i, j int) bool {
		a, b := t.Messages[i], t.Messages[j]
		if !a.Created.Equal(b.Created) {
			return a.Created.Before(b.Created)
		}
		return a.Id < b.Id
	})

	return t
}

// buildThreads collapses the raw join rows into one snapshot per thread.
// A thread whose core row exists always appears in the output, with empty
// (never nil) member and message collections when the joins matched
// nothing.
func buildThreads(rows []threadRow) map[domain.ThreadId]domain.Thread {
	accs := foldRows(rows,
		func(r threadRow) domain.ThreadId { return r.id },
		newThreadAccumulator,
		mergeThreadRow,
	)

	out := make(map[domain.ThreadId]domain.Thread, len(accs))
	for id, acc := range accs {
		out[id] = acc.finalize()
	}
	return out
}
