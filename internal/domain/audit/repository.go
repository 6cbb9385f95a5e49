package audit

import "context"

type Repository interface {
	Save(ctx context.Context, e *Entry) error
}
