package order

// Status is the order lifecycle label as the order service spells it. The
// lifecycle itself is owned by the order service; the view only reads it.
type Status string

const (
	StatusNew       Status = "новый"
	StatusInTransit Status = "в пути"
	StatusCompleted Status = "завершён"
)

// IsKnown reports whether s is one of the labels the platform emits.
func (s Status) IsKnown() bool {
	switch s {
	case StatusNew, StatusInTransit, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}
