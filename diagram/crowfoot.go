package diagram

// Arrow is a Graphviz arrowhead shape.
type Arrow string

// Arrowhead shapes used for relationship cardinalities.
const (
	ArrowNone     Arrow = "none"
	ArrowTeeOdot  Arrow = "teeodot"
	ArrowTeeTee   Arrow = "teetee"
	ArrowCrowOdot Arrow = "crowodot"
	ArrowCrowTee  Arrow = "crowtee"
)

// Crowfoot maps a cardinality annotation to an arrowhead shape.
// Unknown annotations and disabled display both resolve to ArrowNone.
func Crowfoot(cardinality string, display bool) Arrow {
	if !display {
		return ArrowNone
	}
	switch cardinality {
	case "0..1":
		return ArrowTeeOdot
	case "1":
		return ArrowTeeTee
	case "0..N":
		return ArrowCrowOdot
	case "1..N":
		return ArrowCrowTee
	default:
		return ArrowNone
	}
}
