package model

import "strings"

// BucketID identifies a bucket on the board. IDs follow creation order.
type BucketID int

// NoBucket is the drop target of the open board area.
const NoBucket BucketID = 0

// DefaultBucketName is the name given to freshly created buckets.
const DefaultBucketName = "New Bucket"

// BucketPhase is the overflow state of a bucket.
type BucketPhase int

// Bucket phases.
const (
	PhaseEmpty BucketPhase = iota
	PhasePopulated
	PhaseOverflowing
)

func (p BucketPhase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	case PhaseOverflowing:
		return "overflowing"
	default:
		return "unknown"
	}
}

// ScrollDirection is one of the two navigation controls of an overflowing bucket.
type ScrollDirection int

// Scroll controls.
const (
	ScrollBack ScrollDirection = iota
	ScrollForward
)

func (d ScrollDirection) String() string {
	if d == ScrollBack {
		return "back"
	}

	return "forward"
}

// BucketState is a read-only view of one bucket.
type BucketState struct {
	ID         BucketID
	Name       string
	Items      []Path
	Phase      BucketPhase
	Scrollable bool
	Offset     int
	PageSize   int
	Controls   []ScrollDirection
}

// Visible returns the items inside the current scroll window.
func (s BucketState) Visible() []Path {
	if s.PageSize <= 0 || !s.Scrollable {
		return s.Items
	}

	end := s.Offset + s.PageSize
	if end > len(s.Items) {
		end = len(s.Items)
	}

	return s.Items[s.Offset:end]
}

const (
	// PlainTextFormat is the drag-data key carrying a dragged path.
	PlainTextFormat = "text/plain"
	textAlias       = "text"
)

// DataTransfer is the drag-data channel between a drag source and a drop target.
type DataTransfer struct {
	data map[string]string
}

// NewDataTransfer returns an empty channel.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: map[string]string{}}
}

// SetData stores value under format.
func (d *DataTransfer) SetData(format, value string) {
	if d.data == nil {
		d.data = map[string]string{}
	}

	d.data[normalizeFormat(format)] = value
}

// GetData reads the value stored under format, "" when none.
func (d *DataTransfer) GetData(format string) string {
	if d == nil || d.data == nil {
		return ""
	}

	return d.data[normalizeFormat(format)]
}

// ClearData drops every stored format.
func (d *DataTransfer) ClearData() {
	d.data = map[string]string{}
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == textAlias {
		return PlainTextFormat
	}

	return format
}
