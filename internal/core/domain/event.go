package domain

type CartEventType string

const (
	CartEventAdd    CartEventType = "add"
	CartEventRemove CartEventType = "remove"
	CartEventUpdate CartEventType = "update"
)

// CartEvent is emitted after a successful cart mutation for telemetry.
type CartEvent struct {
	Type      CartEventType
	ProductID int
	ItemKey   string
	Quantity  int
	ItemCount int
}
