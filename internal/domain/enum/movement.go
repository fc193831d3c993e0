package enum

// MovementType is the direction of a stock movement. Movements never carry a
// sign; an OUT movement with quantity 3 means stock went down by 3.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// MovementSource records what caused a stock movement.
type MovementSource string

const (
	SourceSale     MovementSource = "SALE"
	SourcePurchase MovementSource = "PURCHASE"
	SourceAdjust   MovementSource = "ADJUST"
)

// Valid reports whether s is a known movement source.
func (s MovementSource) Valid() bool {
	switch s {
	case SourceSale, SourcePurchase, SourceAdjust:
		return true
	}
	return false
}
