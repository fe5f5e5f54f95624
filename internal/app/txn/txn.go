// Package txn provides a request-scoped unit of work: write operations are
// staged as actions during orchestration and executed together by Commit.
// Nothing is persisted until Commit runs, and Commit refuses to run once the
// request context is cancelled, so a cancelled request commits no mutation.
//
//	tx := txn.New()
//	tx.Add(txn.NewAction("insert task", func(ctx context.Context) error {
//	    return store.Insert(ctx, t)
//	}))
//	err := tx.Commit(ctx)
//
// A Txn is strictly request-scoped and not safe for concurrent use.
package txn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskvault/taskvault/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when Add or Commit is called on a Txn
// that has already been committed.
var ErrAlreadyCommitted = errors.New("txn: already committed")

// ErrNilAction is returned when a nil Action is passed to Add.
var ErrNilAction = errors.New("txn: nil action")

// Action is a single staged write operation.
type Action interface {
	// Execute performs the write. The context carries cancellation and
	// deadline signals that the implementation must respect.
	Execute(ctx context.Context) error

	// Description returns a human-readable label for logging.
	Description() string
}

// actionFunc adapts a closure to the Action interface.
type actionFunc struct {
	desc string
	fn   func(ctx context.Context) error
}

func (a *actionFunc) Execute(ctx context.Context) error { return a.fn(ctx) }
func (a *actionFunc) Description() string               { return a.desc }

// NewAction wraps a closure as an Action with the given description.
func NewAction(desc string, fn func(ctx context.Context) error) Action {
	return &actionFunc{desc: desc, fn: fn}
}

// Txn accumulates staged actions for a single request.
type Txn struct {
	actions   []Action
	committed bool
}

// New creates an empty unit of work.
func New() *Txn {
	return &Txn{}
}

// Add stages an action for execution during Commit.
func (t *Txn) Add(a Action) error {
	if a == nil {
		return ErrNilAction
	}
	if t.committed {
		return ErrAlreadyCommitted
	}
	t.actions = append(t.actions, a)
	return nil
}

// Len returns the number of staged actions.
func (t *Txn) Len() int {
	return len(t.actions)
}

// Commit executes all staged actions in insertion order, stopping at the
// first failure. It checks for cancellation before every action, so a
// cancelled request never starts a mutation. After Commit returns the Txn
// is spent; further Add or Commit calls fail with ErrAlreadyCommitted.
func (t *Txn) Commit(ctx context.Context) error {
	if t.committed {
		return ErrAlreadyCommitted
	}
	t.committed = true

	logger := logging.FromContext(ctx)

	for i, a := range t.actions {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("commit aborted before %s: %w", a.Description(), err)
		}

		if err := a.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged action failed",
				slog.String("operation", "Txn.Commit"),
				slog.Int("step", i+1),
				slog.Int("total", len(t.actions)),
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
			return fmt.Errorf("executing %s: %w", a.Description(), err)
		}
	}

	return nil
}
