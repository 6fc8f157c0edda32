package domain

// Thread is a fully materialized conversation snapshot: metadata plus the
// deduplicated member set and the message history in creation order.
//
// ModId and ReportId are independently optional; mutual exclusion is a
// policy of the write path, not enforced here.
type Thread struct {
	Id             ThreadId
	Type           ThreadType
	ModId          *ProjectId
	ReportId       *ReportId
	ShowInModInbox bool

	// Members holds distinct user ids, sorted ascending. Empty but non-nil
	// when the thread has no members.
	Members []UserId

	// Messages is ordered by created ascending, message id as tiebreak.
	// Empty but non-nil when the thread has no messages.
	Messages []Message
}
