package store

// Task statuses, stored as text. A task moves TODO -> DOING -> DONE;
// ARCHIVED removes it from the tracked set without deleting the row.
const (
	StatusTodo     = "TODO"
	StatusDoing    = "DOING"
	StatusDone     = "DONE"
	StatusArchived = "ARCHIVED"
)

// DefaultPageTitle is the sentinel for tasks with no containing page.
const DefaultPageTitle = "Untitled"

type Task struct {
	ID        int64
	UID       string
	Content   string
	Status    string
	PageTitle string
	Position  int
	// Epoch milliseconds; 0 means the timestamp was never recorded.
	CreateTime int64
	EditTime   int64
}

type Setting struct {
	Key   string
	Value string
}
