package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/taskmine/internal/store"
)

// ToCSV writes tasks as a spreadsheet-friendly table. Timestamps are
// local RFC3339; unknown timestamps stay empty rather than rendering
// the epoch.
func ToCSV(tasks []store.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"UID", "Content", "Status", "Page", "Created", "Completed", "Duration (h)"}); err != nil {
		return err
	}

	for _, task := range tasks {
		completed := ""
		if task.Status == store.StatusDone {
			completed = formatMillis(task.EditTime)
		}
		duration := ""
		if task.CreateTime > 0 && task.EditTime > task.CreateTime {
			duration = fmt.Sprintf("%.2f", float64(task.EditTime-task.CreateTime)/(1000*60*60))
		}

		row := []string{
			task.UID,
			task.Content,
			task.Status,
			task.PageTitle,
			formatMillis(task.CreateTime),
			completed,
			duration,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatMillis(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).Local().Format(time.RFC3339)
}
