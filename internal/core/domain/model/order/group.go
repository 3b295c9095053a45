package order

// Group is the display classification of a status: the dashboard tab the order
// belongs to. Classification is a pure, total function over Status: every
// known status maps to exactly one group and unrecognized codes fall back to
// GroupUnknown instead of failing, since the upstream system may introduce new
// codes at any time.
type Group int

const (
	// GroupUnknown is the fallback classification for unrecognized statuses.
	GroupUnknown Group = iota

	// GroupPreparing holds orders still in the kitchen: Preparing and Prepared.
	GroupPreparing

	// GroupOutForDelivery holds orders currently with a delivery person.
	GroupOutForDelivery

	// GroupDelivered holds settled orders: Delivered, PartiallyDelivered,
	// Undelivered and Cancelled.
	GroupDelivered
)

// Tint is the severity tint the dashboard uses to colour a status badge.
type Tint string

const (
	TintNeutral Tint = "neutral"
	TintWarning Tint = "warning"
	TintInfo    Tint = "info"
	TintSuccess Tint = "success"
	TintDanger  Tint = "danger"
)

// Group classifies the status into its display tab.
func (s Status) Group() Group {
	switch s {
	case Preparing, Prepared:
		return GroupPreparing
	case OutForDelivery:
		return GroupOutForDelivery
	case Delivered, PartiallyDelivered, Undelivered, Cancelled:
		return GroupDelivered
	default:
		return GroupUnknown
	}
}

// Tint returns the severity tint for the status badge.
func (s Status) Tint() Tint {
	switch s {
	case Preparing, Prepared:
		return TintWarning
	case OutForDelivery:
		return TintInfo
	case Delivered:
		return TintSuccess
	case PartiallyDelivered:
		return TintWarning
	case Undelivered, Cancelled:
		return TintDanger
	default:
		return TintNeutral
	}
}

// Label returns the tab title for the group.
func (g Group) Label() string {
	switch g {
	case GroupPreparing:
		return "Preparing"
	case GroupOutForDelivery:
		return "Out for Delivery"
	case GroupDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}
