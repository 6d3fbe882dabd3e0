package service

import (
	"context"
	"testing"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/repository/memory"
)

func newTaskServiceForTest(t *testing.T, users ...*entity.User) ITaskService {
	t.Helper()

	userStore := memory.NewUserStore()
	for _, u := range users {
		userStore.Insert(u)
	}

	taskGateway := failover.NewTaskGateway(nil, memory.NewTaskStore(), nil)
	userGateway := failover.NewUserGateway(nil, userStore, nil)
	return NewTaskService(taskGateway, userGateway, nil, logger.NewNopLogger())
}

func TestTaskServiceCreateDefaults(t *testing.T) {
	svc := newTaskServiceForTest(t, &entity.User{Id: 1, Username: "nurse"})

	res, err := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{
		Title:      "Yazici servise gonderilecek",
		AssignedTo: 1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if res.Status != entity.TaskStatusTodo {
		t.Errorf("Status = %q, want %q", res.Status, entity.TaskStatusTodo)
	}
	if res.Priority != entity.TaskPriorityMedium {
		t.Errorf("Priority = %q, want %q", res.Priority, entity.TaskPriorityMedium)
	}
	if res.CreatedBy != 1 {
		t.Errorf("CreatedBy = %d, want 1", res.CreatedBy)
	}
	if res.Source != string(entity.SourceFallback) {
		t.Errorf("Source = %q, want %q", res.Source, entity.SourceFallback)
	}
}

func TestTaskServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateTaskRequest
	}{
		{
			name: "unknown status",
			req:  dto.CreateTaskRequest{Title: "t", Status: "archived", AssignedTo: 1},
		},
		{
			name: "unknown priority",
			req:  dto.CreateTaskRequest{Title: "t", Priority: "urgent", AssignedTo: 1},
		},
		{
			name: "unknown assignee",
			req:  dto.CreateTaskRequest{Title: "t", AssignedTo: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTaskServiceForTest(t, &entity.User{Id: 1, Username: "nurse"})
			_, err := svc.Create(context.Background(), 1, &tt.req)
			if !apperrors.IsValidation(err) {
				t.Errorf("Create error = %v, want ValidationError", err)
			}
		})
	}
}

func TestTaskServiceUpdatePartialMerge(t *testing.T) {
	svc := newTaskServiceForTest(t,
		&entity.User{Id: 1, Username: "nurse"},
		&entity.User{Id: 2, Username: "tech"},
	)

	created, err := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{
		Title:       "Toner degisimi",
		Description: "A blok",
		AssignedTo:  1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := entity.TaskStatusInProgress
	assignee := int64(2)
	updated, err := svc.Update(context.Background(), 1, &dto.UpdateTaskRequest{
		Id:         created.Id,
		Status:     &status,
		AssignedTo: &assignee,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Toner degisimi" {
		t.Errorf("Title = %q, untouched fields must survive", updated.Title)
	}
	if updated.Status != entity.TaskStatusInProgress {
		t.Errorf("Status = %q, want %q", updated.Status, entity.TaskStatusInProgress)
	}
	if updated.AssignedTo != 2 {
		t.Errorf("AssignedTo = %d, want 2", updated.AssignedTo)
	}
	if updated.UpdatedAt == nil {
		t.Error("UpdatedAt not set on update")
	}
}

func TestTaskServiceUpdateRejectsUnknownAssignee(t *testing.T) {
	svc := newTaskServiceForTest(t, &entity.User{Id: 1, Username: "nurse"})

	created, err := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{
		Title:      "Toner degisimi",
		AssignedTo: 1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ghost := int64(404)
	_, err = svc.Update(context.Background(), 1, &dto.UpdateTaskRequest{
		Id:         created.Id,
		AssignedTo: &ghost,
	})
	if !apperrors.IsValidation(err) {
		t.Errorf("Update error = %v, want ValidationError", err)
	}
}

func TestTaskServiceShowMissing(t *testing.T) {
	svc := newTaskServiceForTest(t, &entity.User{Id: 1, Username: "nurse"})

	if _, err := svc.Show(context.Background(), 42); !apperrors.IsNotFound(err) {
		t.Errorf("Show(42) error = %v, want NotFoundError", err)
	}
}

func TestTaskServiceListFilterValidation(t *testing.T) {
	svc := newTaskServiceForTest(t, &entity.User{Id: 1, Username: "nurse"})

	if _, err := svc.List(context.Background(), contract.TaskFilter{Status: "archived"}); !apperrors.IsValidation(err) {
		t.Errorf("List with bad status error = %v, want ValidationError", err)
	}
	if _, err := svc.List(context.Background(), contract.TaskFilter{Priority: "urgent"}); !apperrors.IsValidation(err) {
		t.Errorf("List with bad priority error = %v, want ValidationError", err)
	}
}
