package block

// ItemStack is the minimal item representation the block registry's drop
// tables and the player inventories (SPEC_FULL §4.8) operate on.
type ItemStack struct {
	ID, Meta int16
	Count    int8
}

// Empty reports whether the stack is the empty-slot sentinel.
func (s ItemStack) Empty() bool { return s.ID == 0 || s.Count <= 0 }

// EmptyStack is the canonical empty-slot sentinel sent in WindowSetItem
// packets (spec §8 scenario 1: "all inventory slots are empty-stack
// sentinels on first login").
var EmptyStack = ItemStack{}
