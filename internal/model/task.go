package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID prefixes for generated tasks and batches
const (
	TaskIDPrefix  = "task-"
	BatchIDPrefix = "batch-"
)

// ConversionTask represents a single image conversion
type ConversionTask struct {
	ID         string
	BatchID    string // empty for single-file conversions
	InputPath  string
	OutputPath string
	Format     string // target format, e.g. "webp"
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewConversionTask creates a pending task converting inputPath to format
func NewConversionTask(inputPath, format string) *ConversionTask {
	return &ConversionTask{
		ID:        TaskIDPrefix + uuid.NewString(),
		InputPath: inputPath,
		Format:    format,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Complete marks the task finished successfully
func (t *ConversionTask) Complete(outputPath string) {
	t.OutputPath = outputPath
	t.Status = TaskStatusCompleted
	t.Progress = 1.0
	t.FinishedAt = time.Now()
}

// Fail marks the task failed with err
func (t *ConversionTask) Fail(err error) {
	t.Status = TaskStatusError
	if err != nil {
		t.LastError = err.Error()
	}
	t.FinishedAt = time.Now()
}

// FileName returns the base name of the input file, falling back to the
// output path. Both / and \ separators are accepted.
func (t *ConversionTask) FileName() string {
	for _, p := range []string{t.InputPath, t.OutputPath} {
		parts := strings.FieldsFunc(p, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return ""
}

// FormatLabel returns the target format for display ("WEBP")
func (t *ConversionTask) FormatLabel() string {
	return strings.ToUpper(t.Format)
}

// Batch groups tasks converted together to the same format
type Batch struct {
	ID     string
	Format string
	Tasks  []*ConversionTask
}

// NewBatch creates an empty batch converting to format
func NewBatch(format string) *Batch {
	return &Batch{
		ID:     BatchIDPrefix + uuid.NewString(),
		Format: format,
	}
}

// Add creates a task for inputPath inside the batch
func (b *Batch) Add(inputPath string) *ConversionTask {
	task := NewConversionTask(inputPath, b.Format)
	task.BatchID = b.ID
	b.Tasks = append(b.Tasks, task)
	return task
}

// IsFinished reports whether every task of a non-empty batch is finished
func (b *Batch) IsFinished() bool {
	if len(b.Tasks) == 0 {
		return false
	}
	for _, task := range b.Tasks {
		if !task.Status.IsFinished() {
			return false
		}
	}
	return true
}

// CompletedCount returns the number of successfully converted tasks
func (b *Batch) CompletedCount() int {
	n := 0
	for _, task := range b.Tasks {
		if task.Status == TaskStatusCompleted {
			n++
		}
	}
	return n
}

// FailedCount returns the number of failed tasks
func (b *Batch) FailedCount() int {
	n := 0
	for _, task := range b.Tasks {
		if task.Status == TaskStatusError {
			n++
		}
	}
	return n
}
