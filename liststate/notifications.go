package liststate

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	models "github.com/jandvorak/donation-admin-go/models"
	store "github.com/jandvorak/donation-admin-go/store"
)

// ErrInvalidEmail rejects subscriber emails before any remote call is made.
var ErrInvalidEmail = errors.New("liststate: email must contain @")

// Notifications owns the in-memory snapshot of the subscriber list.
type Notifications struct {
	gw  Gateway
	log *zap.Logger

	mu      sync.Mutex
	loading bool
	version uint64
	records []models.Notification
}

func NewNotifications(gw Gateway, log *zap.Logger) *Notifications {
	return &Notifications{gw: gw, log: log, loading: true}
}

// Load replaces the snapshot with a fresh ordered fetch, newest first. Same
// failure policy as the donations controller: log, stay empty, clear loading.
func (n *Notifications) Load(ctx context.Context) {
	var fetched []models.Notification
	err := n.gw.ListOrderedBy(ctx, store.CollectionNotifications, "createdAt", true, &fetched)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.loading = false
	n.version++
	if err != nil {
		n.log.Error("loading notifications failed", zap.Error(err))
		n.records = nil
		return
	}
	n.records = fetched
}

func (n *Notifications) Loading() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loading
}

func (n *Notifications) Version() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.version
}

func (n *Notifications) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.records)
}

// All returns a copy of the snapshot in store order.
func (n *Notifications) All() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.records)
}

// Add creates a subscriber remotely, then prepends a locally-built record
// stamped with the client clock as a placeholder for the server timestamp.
// Emails without @ are rejected before any remote call.
func (n *Notifications) Add(ctx context.Context, email string) (models.Notification, error) {
	if !strings.Contains(email, "@") {
		return models.Notification{}, ErrInvalidEmail
	}

	now := time.Now().UTC()
	id, err := n.gw.Create(ctx, store.CollectionNotifications, map[string]any{
		"email":     email,
		"createdAt": now,
	})
	if err != nil {
		return models.Notification{}, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Notification{}, err
	}
	rec := models.Notification{ID: oid, Email: email, CreatedAt: now}

	n.mu.Lock()
	n.records = slices.Insert(n.records, 0, rec)
	n.version++
	n.mu.Unlock()
	return rec, nil
}

// Delete removes the subscriber from memory first, then from the store,
// restoring it when the remote delete fails.
func (n *Notifications) Delete(ctx context.Context, id string) error {
	n.mu.Lock()
	idx := -1
	for i, rec := range n.records {
		if rec.ID.Hex() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.mu.Unlock()
		return store.ErrNotFound
	}
	removed := n.records[idx]
	n.records = slices.Delete(n.records, idx, idx+1)
	n.version++
	n.mu.Unlock()

	if err := n.gw.Delete(ctx, store.CollectionNotifications, id); err != nil {
		n.mu.Lock()
		if idx > len(n.records) {
			idx = len(n.records)
		}
		n.records = slices.Insert(n.records, idx, removed)
		n.version++
		n.mu.Unlock()
		return err
	}
	return nil
}
