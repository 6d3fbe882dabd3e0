package failover

import (
	"context"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/repository/specification"
)

type TaskGateway interface {
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (*entity.Task, error)
	List(ctx context.Context, filter contract.TaskFilter) ([]*entity.Task, error)
}

type taskGateway struct {
	primary  contract.TaskRepository
	fallback *memory.TaskStore
	log      logger.ILogger
}

func NewTaskGateway(primary contract.TaskRepository, fallback *memory.TaskStore, log logger.ILogger) TaskGateway {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &taskGateway{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

func (g *taskGateway) warn(op string, err error) {
	g.log.Warn("failover", "primary store failed, using fallback", map[string]interface{}{
		"entity": "task",
		"op":     op,
		"error":  err.Error(),
	})
}

func (g *taskGateway) Create(ctx context.Context, task *entity.Task) error {
	if g.primary != nil {
		err := g.primary.Create(ctx, task)
		if err == nil {
			task.Source = entity.SourcePrimary
			return nil
		}
		g.warn("create", err)
	}

	g.fallback.Insert(task)
	return nil
}

func (g *taskGateway) Update(ctx context.Context, task *entity.Task) error {
	if g.primary != nil {
		err := g.primary.Update(ctx, task)
		if err == nil {
			task.Source = entity.SourcePrimary
			return nil
		}
		g.warn("update", err)
	}

	return g.fallback.Update(task)
}

func (g *taskGateway) Delete(ctx context.Context, id int64) error {
	if g.primary != nil {
		err := g.primary.Delete(ctx, id)
		if err == nil {
			return nil
		}
		g.warn("delete", err)
	}

	return g.fallback.Delete(id)
}

func (g *taskGateway) GetById(ctx context.Context, id int64) (*entity.Task, error) {
	if g.primary != nil {
		task, err := g.primary.FindOne(ctx, specification.ByID{ID: id})
		if err == nil {
			if task != nil {
				return task, nil
			}
		} else {
			g.warn("get", err)
		}
	}

	return g.fallback.GetById(id)
}

func (g *taskGateway) List(ctx context.Context, filter contract.TaskFilter) ([]*entity.Task, error) {
	if g.primary != nil {
		specs := []specification.Specification{
			specification.OrderBy{Field: "created_at", Desc: true},
		}
		if filter.Status != "" {
			specs = append(specs, specification.ByStatus{Status: filter.Status})
		}
		if filter.Priority != "" {
			specs = append(specs, specification.ByPriority{Priority: filter.Priority})
		}
		if filter.AssignedTo != 0 {
			specs = append(specs, specification.ByAssignee{UserID: filter.AssignedTo})
		}

		tasks, err := g.primary.FindAll(ctx, specs...)
		if err == nil {
			return tasks, nil
		}
		g.warn("list", err)
	}

	return g.fallback.List(filter), nil
}
