package key

// Reserved wire codes for the four arrow keys. Every other code is a
// literal character code passed through unchanged.
const (
	WireUp    uint32 = 1000
	WireDown  uint32 = 1001
	WireLeft  uint32 = 1002
	WireRight uint32 = 1003
)

// Wire modifier bits. Bits outside this set are ignored.
const (
	WireModCtrl  uint32 = 1 << 0
	WireModAlt   uint32 = 1 << 1
	WireModShift uint32 = 1 << 2
)

// Translate converts a raw (key, modifiers) pair from the embedding wire
// protocol into an Event. Translation is pure and stateless: the same
// inputs always produce the same Event.
func Translate(raw, modifiers uint32) Event {
	mods := TranslateModifiers(modifiers)

	switch raw {
	case WireUp:
		return NewSpecialEvent(KeyUp, mods)
	case WireDown:
		return NewSpecialEvent(KeyDown, mods)
	case WireLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case WireRight:
		return NewSpecialEvent(KeyRight, mods)
	}

	switch raw {
	case 0x1b:
		return NewSpecialEvent(KeyEscape, mods)
	case '\r', '\n':
		return NewSpecialEvent(KeyEnter, mods)
	case '\t':
		return NewSpecialEvent(KeyTab, mods)
	case 0x08, 0x7f:
		return NewSpecialEvent(KeyBackspace, mods)
	}

	return NewRuneEvent(rune(raw), mods)
}

// TranslateModifiers converts a wire modifier bitmask into a Modifier.
// Unrecognized bits are dropped, not an error.
func TranslateModifiers(modifiers uint32) Modifier {
	var mods Modifier
	if modifiers&WireModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if modifiers&WireModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if modifiers&WireModShift != 0 {
		mods = mods.With(ModShift)
	}
	return mods
}
