package database

import (
	"context"
	"strings"
)

func (s *Store) CreateUser(ctx context.Context, user *User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return s.conn(ctx).Create(user).Error
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*User, error) {
	return first[User](s.conn(ctx), id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return first[User](s.conn(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []uint) (map[uint]*User, error) {
	return byIDs(s.conn(ctx), ids, func(u *User) uint { return u.ID })
}

func (s *Store) UpdateUser(ctx context.Context, user *User) error {
	return s.conn(ctx).Save(user).Error
}
