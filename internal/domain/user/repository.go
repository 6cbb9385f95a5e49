package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// Delete removes the user row only. Tickets referencing the user
	// are left in place; see the dangling-reference note in DESIGN.md.
	Delete(ctx context.Context, id string) error
}
