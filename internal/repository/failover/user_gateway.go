package failover

import (
	"context"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/repository/specification"
)

type UserGateway interface {
	Create(ctx context.Context, user *entity.User) error
	GetById(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// WarmFallback copies the primary user list into the fallback store so
	// logins and assignee checks survive a later primary outage. Best
	// effort: a failed warm-up is logged and ignored.
	WarmFallback(ctx context.Context)
}

type userGateway struct {
	primary  contract.UserRepository
	fallback *memory.UserStore
	log      logger.ILogger
}

func NewUserGateway(primary contract.UserRepository, fallback *memory.UserStore, log logger.ILogger) UserGateway {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &userGateway{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

func (g *userGateway) warn(op string, err error) {
	g.log.Warn("failover", "primary store failed, using fallback", map[string]interface{}{
		"entity": "user",
		"op":     op,
		"error":  err.Error(),
	})
}

func (g *userGateway) Create(ctx context.Context, user *entity.User) error {
	if g.primary != nil {
		err := g.primary.Create(ctx, user)
		if err == nil {
			user.Source = entity.SourcePrimary
			// Mirror into the fallback so the account survives an outage.
			cp := *user
			g.fallback.Insert(&cp)
			return nil
		}
		g.warn("create", err)
	}

	g.fallback.Insert(user)
	return nil
}

func (g *userGateway) GetById(ctx context.Context, id int64) (*entity.User, error) {
	if g.primary != nil {
		user, err := g.primary.FindOne(ctx, specification.ByID{ID: id})
		if err == nil {
			if user != nil {
				return user, nil
			}
		} else {
			g.warn("get", err)
		}
	}

	return g.fallback.GetById(id)
}

func (g *userGateway) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if g.primary != nil {
		user, err := g.primary.FindOne(ctx, specification.ByUsername{Username: username})
		if err == nil {
			if user != nil {
				return user, nil
			}
		} else {
			g.warn("get-by-username", err)
		}
	}

	return g.fallback.GetByUsername(username)
}

func (g *userGateway) List(ctx context.Context) ([]*entity.User, error) {
	if g.primary != nil {
		users, err := g.primary.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
		if err == nil {
			return users, nil
		}
		g.warn("list", err)
	}

	return g.fallback.List(), nil
}

func (g *userGateway) WarmFallback(ctx context.Context) {
	if g.primary == nil {
		return
	}
	users, err := g.primary.FindAll(ctx)
	if err != nil {
		g.warn("warm-fallback", err)
		return
	}
	for _, u := range users {
		cp := *u
		g.fallback.Insert(&cp)
	}
	g.log.Info("failover", "fallback user store warmed", map[string]interface{}{
		"count": len(users),
	})
}
