package memory

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type userRepo struct {
	s *Store
	j *journal
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.s.write(r.j, func(d *dataset) error {
		if _, taken := d.usernames[user.Username]; taken {
			return repository.ErrDuplicate
		}
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if _, exists := d.users[user.ID]; exists {
			return repository.ErrDuplicate
		}

		stored := *user
		d.users[stored.ID] = &stored
		d.usernames[stored.Username] = stored.ID
		r.j.record(func() {
			delete(d.users, stored.ID)
			delete(d.usernames, stored.Username)
		})
		return nil
	})
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	var found *model.User
	r.s.read(r.j, func(d *dataset) {
		if u, ok := d.users[id]; ok {
			c := *u
			found = &c
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var id string
	r.s.read(r.j, func(d *dataset) {
		id = d.usernames[username]
	})
	if id == "" {
		return nil, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}
