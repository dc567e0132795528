package appctx

import "github.com/jsamuelsen11/page-template-admin/internal/domain"

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	return rc.enqueue(action, nil)
}

// Stage caches entity under key and queues action for Commit, so later reads
// of key within the request see the staged entity instead of the stored one.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	return rc.enqueue(action, func() { rc.cache[key] = cacheEntry{value: entity} })
}

func (rc *RequestContext) enqueue(action domain.Action, onQueued func()) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.queue = append(rc.queue, action)
	if onQueued != nil {
		onQueued()
	}
	return nil
}

// Pending returns the number of queued actions.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.queue)
}
