package failover

import (
	"context"
	"testing"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/repository/specification"
)

// flakyUserRepository answers reads from a canned list until broken is set,
// then fails everything.
type flakyUserRepository struct {
	users  []*entity.User
	broken bool
}

func (r *flakyUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.broken {
		return errPrimaryDown
	}
	user.Id = int64(len(r.users) + 1)
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *flakyUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.broken {
		return nil, errPrimaryDown
	}
	if len(r.users) == 0 {
		return nil, nil
	}
	return r.users[0], nil
}

func (r *flakyUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	if r.broken {
		return nil, errPrimaryDown
	}
	return r.users, nil
}

func (r *flakyUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.broken {
		return 0, errPrimaryDown
	}
	return int64(len(r.users)), nil
}

func TestUserGatewayWarmFallbackSurvivesOutage(t *testing.T) {
	ctx := context.Background()
	primary := &flakyUserRepository{users: []*entity.User{
		{Id: 1, FullName: "Ayse Yilmaz", Username: "ayilmaz", Role: "staff"},
	}}
	fallback := memory.NewUserStore()
	gateway := NewUserGateway(primary, fallback, nil)

	gateway.WarmFallback(ctx)
	primary.broken = true

	got, err := gateway.GetById(ctx, 1)
	if err != nil {
		t.Fatalf("GetById during outage failed: %v", err)
	}
	if got.Username != "ayilmaz" {
		t.Errorf("Username = %q, want %q", got.Username, "ayilmaz")
	}
	if got.Source != entity.SourceFallback {
		t.Errorf("Source = %q, want %q", got.Source, entity.SourceFallback)
	}

	byName, err := gateway.GetByUsername(ctx, "ayilmaz")
	if err != nil {
		t.Fatalf("GetByUsername during outage failed: %v", err)
	}
	if byName.Id != 1 {
		t.Errorf("Id = %d, want the primary-assigned id", byName.Id)
	}
}

func TestUserGatewayCreateMirrorsIntoFallback(t *testing.T) {
	ctx := context.Background()
	primary := &flakyUserRepository{}
	gateway := NewUserGateway(primary, memory.NewUserStore(), nil)

	user := &entity.User{FullName: "Mehmet Kaya", Username: "mkaya", Role: "staff"}
	if err := gateway.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.Source != entity.SourcePrimary {
		t.Errorf("Source = %q, want %q", user.Source, entity.SourcePrimary)
	}

	primary.broken = true
	got, err := gateway.GetById(ctx, user.Id)
	if err != nil {
		t.Fatalf("GetById during outage failed: %v", err)
	}
	if got.Username != "mkaya" {
		t.Errorf("mirrored user not found in fallback, got %+v", got)
	}
}

func TestUserGatewayMissingUser(t *testing.T) {
	ctx := context.Background()
	gateway := NewUserGateway(nil, memory.NewUserStore(), nil)

	if _, err := gateway.GetById(ctx, 99); !apperrors.IsNotFound(err) {
		t.Errorf("GetById(99) error = %v, want NotFoundError", err)
	}
}
