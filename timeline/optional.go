package timeline

// OptionalInteger is an integer that may be absent, for display attributes
// like track height where zero is not a usable default.
type OptionalInteger struct {
	value  int
	exists bool
}

func NewOptionalInteger(value int, exists bool) OptionalInteger {
	return OptionalInteger{value, exists}
}

func NewOptionalIntegerOf(value int) OptionalInteger {
	return OptionalInteger{value: value, exists: true}
}

func NewEmptyOptionalInteger() OptionalInteger {
	return OptionalInteger{}
}

func (i OptionalInteger) Unpack() (int, bool) {
	return i.value, i.exists
}

func (i OptionalInteger) Empty() bool {
	return !i.exists
}

func (i OptionalInteger) Equals(value int) bool {
	return i.exists && i.value == value
}
