package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

const (
	// OverflowThreshold is the item count above which a bucket overflows.
	OverflowThreshold = 10
	// PageSize is the number of items visible in an overflowing bucket.
	PageSize = 10
	// ScrollStep is the offset shift of one scroll control activation.
	ScrollStep = 5
)

var (
	// ErrNoSuchBucket is returned for an id that is not on the board.
	ErrNoSuchBucket = errors.New("no such bucket")
	// ErrNoSuchItem is returned for an item index outside the bucket.
	ErrNoSuchItem = errors.New("no such item")
	// ErrEmptyPayload is returned for a drop that carries no path.
	ErrEmptyPayload = errors.New("drop carries no path")
	// ErrNotScrollable is returned when scrolling a bucket that does not overflow.
	ErrNotScrollable = errors.New("bucket is not overflowing")
)

type bucket struct {
	id          m.BucketID
	name        string
	items       []m.Path
	overflowing bool
	offset      int
}

// refresh recomputes the overflow state after the items changed.
func (b *bucket) refresh() {
	b.overflowing = len(b.items) > OverflowThreshold
	if !b.overflowing {
		b.offset = 0
		return
	}

	b.offset = clamp(b.offset, 0, len(b.items)-PageSize)
}

func (b *bucket) phase() m.BucketPhase {
	switch {
	case b.overflowing:
		return m.PhaseOverflowing
	case len(b.items) > 0:
		return m.PhasePopulated
	default:
		return m.PhaseEmpty
	}
}

func (b *bucket) state() m.BucketState {
	state := m.BucketState{
		ID:         b.id,
		Name:       b.name,
		Items:      append([]m.Path(nil), b.items...),
		Phase:      b.phase(),
		Scrollable: b.overflowing,
		Offset:     b.offset,
		PageSize:   PageSize,
	}

	if b.overflowing {
		state.Controls = []m.ScrollDirection{m.ScrollBack, m.ScrollForward}
	}

	return state
}

// Board is the ordered set of buckets. It is not safe for concurrent use;
// every mutation happens on the caller's event loop.
type Board struct {
	buckets []*bucket
	lastID  m.BucketID
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// CreateBucket appends an empty bucket with the default name.
func (b *Board) CreateBucket() m.BucketID {
	return b.CreateNamedBucket(m.DefaultBucketName)
}

// CreateNamedBucket appends an empty bucket called name.
func (b *Board) CreateNamedBucket(name string) m.BucketID {
	b.lastID++

	b.buckets = append(b.buckets, &bucket{id: b.lastID, name: bucketName(name)})
	slog.Debug("bucket created", "bucket", b.lastID)

	return b.lastID
}

// DragOver reports whether target accepts a drop. Every bucket and the open
// board area do.
func (b *Board) DragOver(_ m.BucketID) bool {
	return true
}

// Drop reads the dragged path from dt and adds it to target. A target that is
// not on the board gets a new bucket. It returns the bucket holding the item.
func (b *Board) Drop(target m.BucketID, dt *m.DataTransfer) (m.BucketID, error) {
	return b.DropOntoBucket(target, m.Path(dt.GetData("text")))
}

// DropOntoBucket appends path to target, creating a bucket first when target
// does not resolve to one.
func (b *Board) DropOntoBucket(target m.BucketID, path m.Path) (m.BucketID, error) {
	if strings.TrimSpace(string(path)) == "" {
		return m.NoBucket, ErrEmptyPayload
	}

	bkt := b.find(target)
	if bkt == nil {
		bkt = b.find(b.CreateBucket())
	}

	bkt.items = append(bkt.items, path)
	bkt.refresh()

	return bkt.id, nil
}

// RemoveItem removes the single entry at index from bucket id. An emptied
// bucket stays on the board.
func (b *Board) RemoveItem(id m.BucketID, index int) (m.Path, error) {
	bkt := b.find(id)
	if bkt == nil {
		return "", fmt.Errorf("remove item from bucket %d: %w", id, ErrNoSuchBucket)
	}

	if index < 0 || index >= len(bkt.items) {
		return "", fmt.Errorf("remove item %d from bucket %d: %w", index, id, ErrNoSuchItem)
	}

	removed := bkt.items[index]
	bkt.items = append(bkt.items[:index], bkt.items[index+1:]...)
	bkt.refresh()

	return removed, nil
}

// RenameBucket sets the bucket name. A blank name restores the default.
func (b *Board) RenameBucket(id m.BucketID, name string) error {
	bkt := b.find(id)
	if bkt == nil {
		return fmt.Errorf("rename bucket %d: %w", id, ErrNoSuchBucket)
	}

	bkt.name = bucketName(name)

	return nil
}

// RemoveBucket deletes a bucket and its items.
func (b *Board) RemoveBucket(id m.BucketID) error {
	for i, bkt := range b.buckets {
		if bkt.id == id {
			b.buckets = append(b.buckets[:i], b.buckets[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("remove bucket %d: %w", id, ErrNoSuchBucket)
}

// Scroll moves the visible window of an overflowing bucket by ScrollStep and
// returns the new offset.
func (b *Board) Scroll(id m.BucketID, direction m.ScrollDirection) (int, error) {
	bkt := b.find(id)
	if bkt == nil {
		return 0, fmt.Errorf("scroll bucket %d: %w", id, ErrNoSuchBucket)
	}

	if !bkt.overflowing {
		return 0, fmt.Errorf("scroll bucket %d: %w", id, ErrNotScrollable)
	}

	step := ScrollStep
	if direction == m.ScrollBack {
		step = -step
	}

	bkt.offset = clamp(bkt.offset+step, 0, len(bkt.items)-PageSize)

	return bkt.offset, nil
}

// Bucket returns the state of bucket id.
func (b *Board) Bucket(id m.BucketID) (m.BucketState, bool) {
	bkt := b.find(id)
	if bkt == nil {
		return m.BucketState{}, false
	}

	return bkt.state(), true
}

// Buckets returns the state of every bucket in creation order.
func (b *Board) Buckets() []m.BucketState {
	states := make([]m.BucketState, 0, len(b.buckets))
	for _, bkt := range b.buckets {
		states = append(states, bkt.state())
	}

	return states
}

// Len returns the number of buckets.
func (b *Board) Len() int {
	return len(b.buckets)
}

// ItemCount returns the number of items across all buckets.
func (b *Board) ItemCount() int {
	total := 0
	for _, bkt := range b.buckets {
		total += len(bkt.items)
	}

	return total
}

// Snapshot copies the board into request buckets. Later board edits do not
// affect the copy.
func (b *Board) Snapshot() []m.RequestBucket {
	out := make([]m.RequestBucket, 0, len(b.buckets))
	for _, bkt := range b.buckets {
		out = append(out, m.RequestBucket{
			Name:  bkt.name,
			Files: append([]m.Path{}, bkt.items...),
		})
	}

	return out
}

func (b *Board) find(id m.BucketID) *bucket {
	if id == m.NoBucket {
		return nil
	}

	for _, bkt := range b.buckets {
		if bkt.id == id {
			return bkt
		}
	}

	return nil
}

func bucketName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return m.DefaultBucketName
	}

	return name
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
