package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
)

// Commit runs the queued actions in order. When one fails, those that ran
// are rolled back newest first and the action's error is returned; if any
// rollback fails too, the error also matches ErrRollbackIncomplete.
//
// Rollback ignores cancellation of ctx: a request that timed out mid-move
// still restores the tree. A RequestContext commits once; later calls return
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	queue := rc.queue
	rc.queueMu.Unlock()

	log := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	for i, action := range queue {
		log.DebugContext(ctx, "executing staged write",
			slog.Int("step", i+1),
			slog.Int("total", len(queue)),
			slog.String("action", action.Description()),
		)

		err := action.Execute(ctx)
		if err == nil {
			continue
		}

		log.ErrorContext(ctx, "staged write failed",
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
			slog.Any("error", err),
		)
		err = fmt.Errorf("executing %s: %w", action.Description(), err)
		if undo := rollback(context.WithoutCancel(ctx), queue[:i], log); undo != nil {
			err = errors.Join(err, undo)
		}
		return err
	}
	return nil
}

// rollback undoes done newest first. It keeps going past failures and
// reports them together.
func rollback(ctx context.Context, done []domain.Action, log *slog.Logger) error {
	var failed []error
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]
		log.InfoContext(ctx, "rolling back staged write", slog.String("action", action.Description()))

		if err := action.Rollback(ctx); err != nil {
			log.ErrorContext(ctx, "rollback failed",
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			failed = append(failed, fmt.Errorf("%s: %w", action.Description(), err))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRollbackIncomplete, errors.Join(failed...))
}
