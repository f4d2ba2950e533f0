package domain

// FavoritePendingOp is a not yet persisted favorite change for one document
type FavoritePendingOp struct {
	TargetValue   bool
	OriginalValue bool
}
