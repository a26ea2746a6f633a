package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AddTask inserts a new TODO task and returns it. The creation
// timestamp is stamped in epoch milliseconds to match the analytics
// contract.
func (s *Store) AddTask(content, pageTitle string) (*Task, error) {
	if pageTitle == "" {
		pageTitle = DefaultPageTitle
	}
	now := time.Now().UnixMilli()
	uid := uuid.NewString()

	var position int
	s.db.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM tasks WHERE page_title = ?`, pageTitle).Scan(&position)

	res, err := s.db.Exec(
		`INSERT INTO tasks (uid, content, status, page_title, position, create_time, edit_time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uid, content, StatusTodo, pageTitle, position, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(id)
}

func (s *Store) GetTask(id int64) (*Task, error) {
	t, err := scanTask(s.db.QueryRow(
		`SELECT id, uid, content, status, page_title, position, create_time, edit_time FROM tasks WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) GetTaskByUID(uid string) (*Task, error) {
	t, err := scanTask(s.db.QueryRow(
		`SELECT id, uid, content, status, page_title, position, create_time, edit_time FROM tasks WHERE uid = ?`, uid,
	))
	if err != nil {
		return nil, fmt.Errorf("get task %q: %w", uid, err)
	}
	return t, nil
}

// ListTasks returns tasks with the given status, newest edit first,
// then by page and sibling position.
func (s *Store) ListTasks(status string) ([]Task, error) {
	rows, err := s.db.Query(
		`SELECT id, uid, content, status, page_title, position, create_time, edit_time
		 FROM tasks WHERE status = ?
		 ORDER BY edit_time DESC, page_title, position`, status,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return collectTasks(rows)
}

// ListAllTasks returns every non-archived task, newest edit first.
func (s *Store) ListAllTasks() ([]Task, error) {
	rows, err := s.db.Query(
		`SELECT id, uid, content, status, page_title, position, create_time, edit_time
		 FROM tasks WHERE status != ?
		 ORDER BY edit_time DESC, page_title, position`, StatusArchived,
	)
	if err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	return collectTasks(rows)
}

// SetStatus moves a task to the given status and stamps edit_time,
// which the analytics layer reads as the completion time for DONE.
func (s *Store) SetStatus(id int64, status string) error {
	switch status {
	case StatusTodo, StatusDoing, StatusDone, StatusArchived:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	res, err := s.db.Exec(
		`UPDATE tasks SET status = ?, edit_time = ? WHERE id = ?`,
		status, time.Now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set status: task %d not found", id)
	}
	return nil
}

// UpdateContent rewrites a task's text and stamps edit_time.
func (s *Store) UpdateContent(id int64, content string) error {
	_, err := s.db.Exec(
		`UPDATE tasks SET content = ?, edit_time = ? WHERE id = ?`,
		content, time.Now().UnixMilli(), id,
	)
	return err
}

// CountTracked counts TODO, DOING and DONE tasks; archived rows are
// out of the tracked set.
func (s *Store) CountTracked() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE status != ?`, StatusArchived).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tracked: %w", err)
	}
	return n, nil
}

func (s *Store) CountByStatus(status string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE status = ?`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", status, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*Task, error) {
	t := &Task{}
	var createTime, editTime sql.NullInt64
	err := row.Scan(&t.ID, &t.UID, &t.Content, &t.Status, &t.PageTitle, &t.Position, &createTime, &editTime)
	if err != nil {
		return nil, err
	}
	t.CreateTime = createTime.Int64
	t.EditTime = editTime.Int64
	return t, nil
}

func collectTasks(rows *sql.Rows) ([]Task, error) {
	defer rows.Close()
	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}
