package tasks

import (
	"context"
	"errors"
	"testing"
)

type recordingTask struct {
	Task
	name string
	log  *[]string
	err  error
}

func newRecordingTask(name string, log *[]string, err error) *recordingTask {
	return &recordingTask{
		Task: NewTask(TaskTypeIngestPayloads),
		name: name,
		log:  log,
		err:  err,
	}
}

func (t *recordingTask) Execute(ctx context.Context) error {
	*t.log = append(*t.log, t.name)
	return t.err
}

func TestRunner_ExecutesInOrder(t *testing.T) {
	var log []string
	runner := NewRunner()

	err := runner.Run(context.Background(), []TaskInterface{
		newRecordingTask("fetch", &log, nil),
		newRecordingTask("ingest", &log, nil),
		newRecordingTask("notify", &log, nil),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := []string{"fetch", "ingest", "notify"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %d executions, got %d", len(expected), len(log))
	}
	for i, name := range expected {
		if log[i] != name {
			t.Errorf("Position %d: expected '%s', got '%s'", i, name, log[i])
		}
	}
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	var log []string
	runner := NewRunner()

	wantErr := errors.New("token exchange failed")
	err := runner.Run(context.Background(), []TaskInterface{
		newRecordingTask("fetch", &log, wantErr),
		newRecordingTask("ingest", &log, nil),
	})
	if err == nil {
		t.Fatal("Expected runner to surface task error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped task error, got: %v", err)
	}
	if len(log) != 1 {
		t.Errorf("Expected execution to stop after the failing task, got %v", log)
	}
}

func TestRunner_EmptyTaskList(t *testing.T) {
	if err := NewRunner().Run(context.Background(), nil); err != nil {
		t.Errorf("Expected nil error for empty task list, got: %v", err)
	}
}
