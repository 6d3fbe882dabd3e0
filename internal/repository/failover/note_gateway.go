// Package failover implements the dual-store persistence gateways. Every
// write tries the primary relational store first and retries the same
// logical operation against the process-local memory store when the primary
// call fails for any reason. Reads are served by whichever store answers
// first; results are never merged across stores and fallback writes are
// never reconciled back to the primary.
package failover

import (
	"context"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/repository/specification"
)

type NoteGateway interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (*entity.Note, error)
	List(ctx context.Context, filter contract.NoteFilter) ([]*entity.Note, error)
}

type noteGateway struct {
	primary  contract.NoteRepository // nil when no primary store is configured
	fallback *memory.NoteStore
	log      logger.ILogger
}

func NewNoteGateway(primary contract.NoteRepository, fallback *memory.NoteStore, log logger.ILogger) NoteGateway {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &noteGateway{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

func (g *noteGateway) warn(op string, err error) {
	g.log.Warn("failover", "primary store failed, using fallback", map[string]interface{}{
		"entity": "note",
		"op":     op,
		"error":  err.Error(),
	})
}

func (g *noteGateway) Create(ctx context.Context, note *entity.Note) error {
	if g.primary != nil {
		err := g.primary.Create(ctx, note)
		if err == nil {
			note.Source = entity.SourcePrimary
			return nil
		}
		g.warn("create", err)
	}

	g.fallback.Insert(note)
	return nil
}

func (g *noteGateway) Update(ctx context.Context, note *entity.Note) error {
	if g.primary != nil {
		err := g.primary.Update(ctx, note)
		if err == nil {
			note.Source = entity.SourcePrimary
			return nil
		}
		g.warn("update", err)
	}

	return g.fallback.Update(note)
}

func (g *noteGateway) Delete(ctx context.Context, id int64) error {
	if g.primary != nil {
		err := g.primary.Delete(ctx, id)
		if err == nil {
			return nil
		}
		g.warn("delete", err)
	}

	return g.fallback.Delete(id)
}

func (g *noteGateway) GetById(ctx context.Context, id int64) (*entity.Note, error) {
	if g.primary != nil {
		note, err := g.primary.FindOne(ctx, specification.ByID{ID: id})
		if err == nil {
			if note != nil {
				return note, nil
			}
			// Absent on the primary; the record may still live in the
			// fallback tier.
		} else {
			g.warn("get", err)
		}
	}

	return g.fallback.GetById(id)
}

func (g *noteGateway) List(ctx context.Context, filter contract.NoteFilter) ([]*entity.Note, error) {
	if g.primary != nil {
		specs := []specification.Specification{
			specification.OrderBy{Field: "created_at", Desc: true},
		}
		if filter.Category != "" {
			specs = append(specs, specification.ByCategory{Category: filter.Category})
		}
		if filter.ActiveOnly {
			specs = append(specs, specification.ActiveOnly{})
		}
		if filter.Query != "" {
			specs = append(specs, specification.NoteSearchQuery{Query: filter.Query})
		}

		notes, err := g.primary.FindAll(ctx, specs...)
		if err == nil {
			return notes, nil
		}
		g.warn("list", err)
	}

	return g.fallback.List(filter), nil
}
