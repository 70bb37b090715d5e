package block

// Legacy non-block item ids referenced by dungeon chest loot (spec.md §4.3).
// These sit in the protocol's historical numeric item-id space above the
// 0-255 block id range ID occupies, so ItemStack.ID (an int16) carries them
// directly rather than through the ID type.
const (
	IronIngot int16 = 265
	String    int16 = 287
	Gunpowder int16 = 289
	GoldApple int16 = 322
	Bucket    int16 = 325
	Saddle    int16 = 329
	Redstone  int16 = 331
	Dye       int16 = 351
	Bread     int16 = 297
	Record13  int16 = 2256
	RecordCat int16 = 2257
)
