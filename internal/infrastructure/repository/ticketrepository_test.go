package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/domain/user"
	"mediticket/internal/infrastructure/persistence/models"
	"mediticket/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.AnswerModel{},
		&models.AttachmentModel{},
		&models.AuditLogModel{},
	)
	require.NoError(t, err)

	return db
}

func newStoredTicket(t *testing.T, repo *TicketRepository, userID, question string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(userID, question)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndFindByID(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newStoredTicket(t, repo, "user-1", "Hoofdpijn sinds drie dagen")

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())
	assert.Equal(t, "user-1", found.UserID())
	assert.Equal(t, ticket.StatusSubmitted, found.Status())
	assert.False(t, found.Read())
	assert.Nil(t, found.Annotation())
}

func TestTicketRepository_FindByID_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	found, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newStoredTicket(t, repo, "user-1", "vraag")
	tk.MarkAnswered()
	tk.SetRead(true)
	tk.Annotate("opgevolgd")

	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAnswered, found.Status())
	assert.True(t, found.Read())
	require.NotNil(t, found.Annotation())
	assert.Equal(t, "opgevolgd", *found.Annotation())
}

func TestTicketRepository_List(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	t1 := newStoredTicket(t, repo, "user-1", "eerste vraag")
	t2 := newStoredTicket(t, repo, "user-2", "tweede vraag")
	t2.MarkAnswered()
	require.NoError(t, repo.Update(ctx, t2))

	t.Run("all tickets", func(t *testing.T) {
		all, err := repo.List(ctx, ticket.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := ticket.StatusSubmitted
		open, err := repo.List(ctx, ticket.Filter{Status: &status})
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, t1.ID(), open[0].ID())
	})

	t.Run("filter by user", func(t *testing.T) {
		userID := "user-2"
		mine, err := repo.List(ctx, ticket.Filter{UserID: &userID})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, t2.ID(), mine[0].ID())
	})

	t.Run("limit caps the result", func(t *testing.T) {
		limited, err := repo.List(ctx, ticket.Filter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func TestTicketRepository_CountByStatus(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	newStoredTicket(t, repo, "user-1", "open een")
	newStoredTicket(t, repo, "user-1", "open twee")
	answered := newStoredTicket(t, repo, "user-2", "beantwoord")
	answered.MarkAnswered()
	require.NoError(t, repo.Update(ctx, answered))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, int64(2), counts.Submitted)
	assert.Equal(t, int64(1), counts.Answered)
}

func TestTicketRepository_CloseStale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	stale := newStoredTicket(t, repo, "user-1", "oude vraag")
	fresh := newStoredTicket(t, repo, "user-1", "nieuwe vraag")
	answeredStale := newStoredTicket(t, repo, "user-2", "al beantwoord")
	answeredStale.MarkAnswered()
	require.NoError(t, repo.Update(ctx, answeredStale))

	// Age two of the tickets past the cutoff.
	old := time.Now().UTC().AddDate(0, 0, -40)
	for _, id := range []string{stale.ID(), answeredStale.ID()} {
		require.NoError(t, db.Model(&models.TicketModel{}).
			Where("id = ?", id).
			Update("created_at", old).Error)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	closed, err := repo.CloseStale(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	// Only the stale submitted ticket was closed; no answer row exists
	// for it.
	found, err := repo.FindByID(ctx, stale.ID())
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAnswered, found.Status())

	_, err = repo.FindAnswerByTicketID(ctx, stale.ID())
	assert.True(t, errors.IsNotFoundError(err))

	// The fresh ticket is untouched.
	found, err = repo.FindByID(ctx, fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusSubmitted, found.Status())
}

func TestTicketRepository_Answers(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newStoredTicket(t, repo, "user-1", "vraag")

	answer, err := ticket.NewAnswer(tk.ID(), "rust en veel water drinken")
	require.NoError(t, err)
	require.NoError(t, repo.SaveAnswer(ctx, answer))

	found, err := repo.FindAnswerByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, answer.ID(), found.ID())
	assert.Equal(t, "rust en veel water drinken", found.Body())

	_, err = repo.FindAnswerByTicketID(ctx, "other-ticket")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Attachments(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newStoredTicket(t, repo, "user-1", "vraag")
	other := newStoredTicket(t, repo, "user-2", "andere vraag")

	attachment, err := ticket.NewAttachment(tk.ID(), "scan.pdf")
	require.NoError(t, err)
	require.NoError(t, attachment.SetStoredPath("uploads/"+attachment.ID()+"_scan.pdf"))
	require.NoError(t, repo.SaveAttachment(ctx, attachment))

	found, err := repo.FindAttachment(ctx, tk.ID(), attachment.ID())
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", found.Filename())

	// The pair lookup misses when the ticket does not own the
	// attachment.
	_, err = repo.FindAttachment(ctx, other.ID(), attachment.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_SaveAndConflict(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("patient-1", "itsme-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	dup, err := user.NewUser("patient-1", "itsme-other")
	require.NoError(t, err)
	err = repo.Save(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// The original row is unchanged.
	found, err := repo.FindByID(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, "itsme-1", found.ItsmeID())
}

func TestUserRepository_UpdateListDelete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u1, err := user.NewUser("patient-1", "itsme-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u1))
	u2, err := user.NewUser("patient-2", "itsme-2")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u2))

	require.NoError(t, u1.ChangeItsmeID("itsme-updated"))
	require.NoError(t, repo.Update(ctx, u1))

	found, err := repo.FindByID(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, "itsme-updated", found.ItsmeID())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "patient-1"))
	_, err = repo.FindByID(ctx, "patient-1")
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, "patient-1")
	assert.True(t, errors.IsNotFoundError(err))
}
