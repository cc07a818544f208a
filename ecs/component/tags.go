package component

// CollidableTag marks a node the ground probe may stand on.
type CollidableTag struct{}

var CollidableTagComponent = NewComponent[CollidableTag]()

type GridTag struct{}

var GridTagComponent = NewComponent[GridTag]()
