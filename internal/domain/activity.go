package domain

import "time"

// ActivityAction is an open set: the constants below cover the actions the
// backend writes itself, but entries with other action kinds are accepted.
type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
	ActivityActionUpdate ActivityAction = "update"
	ActivityActionDelete ActivityAction = "delete"
	ActivityActionLogin  ActivityAction = "login"
	ActivityActionLogout ActivityAction = "logout"
)

// ActivityLogEntry is append-only: entries are never updated or deleted
// once written, even when the member they reference is removed.
type ActivityLogEntry struct {
	ID          int32          `json:"id"`
	OrgID       int32          `json:"org_id"`
	UserID      int32          `json:"user_id"`
	UserName    string         `json:"user_name"`
	Action      ActivityAction `json:"action"`
	Description string         `json:"description"`
	Details     string         `json:"details,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

type ActivityWindow string

const (
	ActivityWindowAll   ActivityWindow = "all"
	ActivityWindowToday ActivityWindow = "today"
	ActivityWindowWeek  ActivityWindow = "week"
	ActivityWindowMonth ActivityWindow = "month"
)

// ActivityWindowStart computes the inclusive lower bound for a date window,
// anchored to now at evaluation time. The second return value is false for
// the "all" window (no bound) and for unknown window values.
func ActivityWindowStart(window ActivityWindow, now time.Time) (time.Time, bool) {
	switch window {
	case ActivityWindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case ActivityWindowWeek:
		return now.AddDate(0, 0, -7), true
	case ActivityWindowMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// ActivityFilter holds the optional, conjunctive search filters for the
// activity log. Zero values mean "no filter".
type ActivityFilter struct {
	UserID int32
	Term   string
	Action ActivityAction
	Window ActivityWindow
}
