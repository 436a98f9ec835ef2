package models

import "math"

// Sort keys accepted for task listing.
const (
	SortByName        = "name"
	SortByCompleted   = "completed"
	SortByDescription = "description"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Default pagination values for task listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Task represents a single to-do item.
type Task struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskPatch holds the fields of a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Name        *string
	Description *string
	Completed   *bool
}

// Empty reports whether the patch would not change anything.
func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Completed == nil
}

// TaskQuery describes a filtered, sorted page of tasks.
type TaskQuery struct {
	Page          int
	Limit         int
	Completed     *bool  // filter only when set
	SortBy        string // empty means store order
	SortDirection string
}

// Skip returns the number of tasks preceding the requested page. It saturates at
// math.MaxInt when the offset cannot be represented.
func (q TaskQuery) Skip() int {
	if q.Page < 1 {
		return 0
	}
	if q.PastEnd() {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// PastEnd reports whether the page starts beyond any offset a store can address.
// Such a page is always empty.
func (q TaskQuery) PastEnd() bool {
	return q.Page > 1 && q.Limit > 0 && q.Page-1 > math.MaxInt/q.Limit
}

// Descending reports whether the sort direction is descending.
func (q TaskQuery) Descending() bool {
	return q.SortDirection == SortDesc
}
