package binder

// ConversionKind classifies how (or whether) a value of one type can be
// reinterpreted as another.
type ConversionKind int

const (
	// ConversionNone means the pair is simply illegal.
	ConversionNone ConversionKind = iota
	// ConversionIdentity means from == to; no node is inserted.
	ConversionIdentity
	// ConversionImplicit is reserved for a widening mint does not have;
	// Classify never returns it.
	ConversionImplicit
	// ConversionExplicit requires the source to spell the conversion as
	// a call to the target type's name: int(x), bool(x), string(x).
	ConversionExplicit
)

// Classify reports how a value of type from can become a value of type to.
func Classify(from, to Type) ConversionKind {
	if from == to {
		return ConversionIdentity
	}
	if (from == TypeInt || from == TypeBool) && to == TypeString {
		return ConversionExplicit
	}
	if from == TypeString && (to == TypeInt || to == TypeBool) {
		return ConversionExplicit
	}
	return ConversionNone
}
