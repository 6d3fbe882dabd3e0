package service

import (
	"context"
	"encoding/json"
	"time"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
)

type ITaskService interface {
	List(ctx context.Context, filter contract.TaskFilter) ([]*dto.TaskResponse, error)
	Show(ctx context.Context, id int64) (*dto.TaskResponse, error)
	Create(ctx context.Context, userId int64, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, userId int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	gateway          failover.TaskGateway
	userGateway      failover.UserGateway
	publisherService IPublisherService
	log              logger.ILogger
}

func NewTaskService(gateway failover.TaskGateway, userGateway failover.UserGateway, publisherService IPublisherService, log logger.ILogger) ITaskService {
	return &taskService{
		gateway:          gateway,
		userGateway:      userGateway,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *taskService) List(ctx context.Context, filter contract.TaskFilter) ([]*dto.TaskResponse, error) {
	if filter.Status != "" && !entity.IsValidTaskStatus(filter.Status) {
		return nil, apperrors.NewValidation("unknown status %q", filter.Status)
	}
	if filter.Priority != "" && !entity.IsValidTaskPriority(filter.Priority) {
		return nil, apperrors.NewValidation("unknown priority %q", filter.Priority)
	}

	tasks, err := s.gateway.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, toTaskResponse(t))
	}
	return response, nil
}

func (s *taskService) Show(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	task, err := s.gateway.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// verifyUserExists checks the reference against whichever user store
// answers. During a primary outage the warmed fallback store is
// authoritative.
func (s *taskService) verifyUserExists(ctx context.Context, userId int64, field string) error {
	if _, err := s.userGateway.GetById(ctx, userId); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation("%s references unknown user %d", field, userId)
		}
		return err
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, userId int64, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	status := req.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	if !entity.IsValidTaskStatus(status) {
		return nil, apperrors.NewValidation("unknown status %q", status)
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !entity.IsValidTaskPriority(priority) {
		return nil, apperrors.NewValidation("unknown priority %q", priority)
	}

	if err := s.verifyUserExists(ctx, req.AssignedTo, "assigned_to"); err != nil {
		return nil, err
	}
	if err := s.verifyUserExists(ctx, userId, "created_by"); err != nil {
		return nil, err
	}

	task := entity.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}

	if err := s.gateway.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "TASK_CREATED", map[string]interface{}{
		"task_id":  task.Id,
		"title":    task.Title,
		"priority": task.Priority,
		"user_id":  userId,
	})
	s.publishEvent(ctx, "TASK_ASSIGNED", map[string]interface{}{
		"task_id":     task.Id,
		"title":       task.Title,
		"assigned_to": task.AssignedTo,
		"priority":    task.Priority,
		"user_id":     userId,
	})

	return toTaskResponse(&task), nil
}

func (s *taskService) Update(ctx context.Context, userId int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.gateway.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	previousAssignee := task.AssignedTo

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !entity.IsValidTaskStatus(*req.Status) {
			return nil, apperrors.NewValidation("unknown status %q", *req.Status)
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !entity.IsValidTaskPriority(*req.Priority) {
			return nil, apperrors.NewValidation("unknown priority %q", *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		if err := s.verifyUserExists(ctx, *req.AssignedTo, "assigned_to"); err != nil {
			return nil, err
		}
		task.AssignedTo = *req.AssignedTo
	}

	now := time.Now()
	task.UpdatedAt = &now

	if err := s.gateway.Update(ctx, task); err != nil {
		return nil, err
	}

	if task.AssignedTo != previousAssignee {
		s.publishEvent(ctx, "TASK_ASSIGNED", map[string]interface{}{
			"task_id":     task.Id,
			"title":       task.Title,
			"assigned_to": task.AssignedTo,
			"priority":    task.Priority,
			"user_id":     userId,
		})
	}

	return toTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Delete(ctx, id)
}

func (s *taskService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.DomainEventMessage{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("task-service", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Source:      string(t.Source),
	}
}
