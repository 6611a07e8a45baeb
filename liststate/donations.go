package liststate

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	models "github.com/jandvorak/donation-admin-go/models"
	store "github.com/jandvorak/donation-admin-go/store"
)

// Filter narrows the donation snapshot before bucketing. Search matches the
// donor name case-insensitively or the variable symbol as a plain substring;
// the two conditions OR together, and search ANDs with the donor type.
type Filter struct {
	Search    string
	DonorType string // all | company | anonymous | person
}

// Donations owns the in-memory snapshot of the donations collection. All
// access goes through the mutex; mutations are applied locally first and
// mirrored to the gateway, with a rollback when the remote write fails.
type Donations struct {
	gw  Gateway
	log *zap.Logger

	mu      sync.Mutex
	loading bool
	version uint64
	records []models.Donation
}

func NewDonations(gw Gateway, log *zap.Logger) *Donations {
	return &Donations{gw: gw, log: log, loading: true}
}

// Load replaces the snapshot with a fresh ordered fetch, newest first. A
// failed fetch is logged and leaves the snapshot empty; the loading flag
// clears either way, so consumers can tell "empty" from "not loaded yet".
func (d *Donations) Load(ctx context.Context) {
	var fetched []models.Donation
	err := d.gw.ListOrderedBy(ctx, store.CollectionDonations, "createdAt", true, &fetched)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	d.version++
	if err != nil {
		d.log.Error("loading donations failed", zap.Error(err))
		d.records = nil
		return
	}
	for i := range fetched {
		fetched[i].Normalize()
	}
	d.records = fetched
}

func (d *Donations) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Version increments on every load and mutation; list handlers derive their
// ETag from it.
func (d *Donations) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

func (d *Donations) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// Filtered returns the order-preserving subset matching the filter.
func (d *Donations) Filtered(f Filter) []models.Donation {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Donation, 0, len(d.records))
	for _, rec := range d.records {
		if matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec models.Donation, f Filter) bool {
	if f.Search != "" {
		byName := strings.Contains(strings.ToLower(rec.Name), strings.ToLower(f.Search))
		bySymbol := strings.Contains(rec.VariableSymbol, f.Search)
		if !byName && !bySymbol {
			return false
		}
	}
	switch f.DonorType {
	case models.DonorCompany:
		return rec.ForCompany
	case models.DonorAnonymous:
		return rec.IsAnonymous
	case models.DonorPerson:
		return !rec.ForCompany && !rec.IsAnonymous
	}
	return true
}

// Buckets splits records into the three status buckets. Defaulting at ingest
// makes the split exhaustive: anything not paid or cancelled is pending.
func Buckets(records []models.Donation) (pending, paid, cancelled []models.Donation) {
	for _, rec := range records {
		switch rec.Status {
		case models.StatusPaid:
			paid = append(paid, rec)
		case models.StatusCancelled:
			cancelled = append(cancelled, rec)
		default:
			pending = append(pending, rec)
		}
	}
	return pending, paid, cancelled
}

// SetStatus flips the record's status in memory first, then mirrors the
// change to the store. The optimistic change is reverted when the remote
// write fails, so the snapshot never diverges from storage.
func (d *Donations) SetStatus(ctx context.Context, id, status string) error {
	d.mu.Lock()
	idx := d.indexOf(id)
	if idx < 0 {
		d.mu.Unlock()
		return store.ErrNotFound
	}
	prev := d.records[idx].Status
	d.records[idx].Status = status
	d.version++
	d.mu.Unlock()

	if err := d.gw.UpdateField(ctx, store.CollectionDonations, id, "status", status); err != nil {
		d.mu.Lock()
		if idx := d.indexOf(id); idx >= 0 {
			d.records[idx].Status = prev
			d.version++
		}
		d.mu.Unlock()
		return err
	}
	return nil
}

// Delete removes the record from memory first, then from the store,
// reinserting it at its original position when the remote delete fails.
func (d *Donations) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	idx := d.indexOf(id)
	if idx < 0 {
		d.mu.Unlock()
		return store.ErrNotFound
	}
	removed := d.records[idx]
	d.records = slices.Delete(d.records, idx, idx+1)
	d.version++
	d.mu.Unlock()

	if err := d.gw.Delete(ctx, store.CollectionDonations, id); err != nil {
		d.mu.Lock()
		if idx > len(d.records) {
			idx = len(d.records)
		}
		d.records = slices.Insert(d.records, idx, removed)
		d.version++
		d.mu.Unlock()
		return err
	}
	return nil
}

// indexOf expects the mutex to be held.
func (d *Donations) indexOf(id string) int {
	for i, rec := range d.records {
		if rec.ID.Hex() == id {
			return i
		}
	}
	return -1
}
