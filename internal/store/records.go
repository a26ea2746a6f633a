package store

import "github.com/sadopc/taskmine/internal/analytics"

// CompletedRecords adapts the DONE tasks to the analytics ingestion
// contract. Status filtering happens here; the derivation engine never
// inspects status markers.
func (s *Store) CompletedRecords() ([]analytics.TaskRecord, error) {
	tasks, err := s.ListTasks(StatusDone)
	if err != nil {
		return nil, err
	}
	return toRecords(tasks), nil
}

// Records adapts tasks with the given status for listing and search.
func (s *Store) Records(status string) ([]analytics.TaskRecord, error) {
	tasks, err := s.ListTasks(status)
	if err != nil {
		return nil, err
	}
	return toRecords(tasks), nil
}

func toRecords(tasks []Task) []analytics.TaskRecord {
	records := make([]analytics.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, analytics.TaskRecord{
			UID:        t.UID,
			Content:    t.Content,
			CreateTime: t.CreateTime,
			EditTime:   t.EditTime,
			PageTitle:  t.PageTitle,
			Order:      t.Position,
		})
	}
	return records
}
