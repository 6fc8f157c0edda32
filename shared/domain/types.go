package domain

type (
	UserId    = int64
	ThreadId  = int64
	MsgId     = int64
	MsgBody   = string
	ProjectId = int64
	ReportId  = int64
	VersionId = int64

	ThreadType = string
)

// Thread classifications. A thread hangs off a project, a report, or
// neither (plain direct conversation).
const (
	ThreadTypeProject       ThreadType = "project"
	ThreadTypeReport        ThreadType = "report"
	ThreadTypeDirectMessage ThreadType = "direct_message"
)
