package solana

// Well-known program addresses.
var (
	SystemProgramID             = MustPubkeyFromBase58("11111111111111111111111111111111")
	TokenProgramID              = MustPubkeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022ProgramID          = MustPubkeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	AssociatedTokenProgramID    = MustPubkeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	AddressLookupTableProgramID = MustPubkeyFromBase58("AddressLookupTab1e1111111111111111111111111")
)

// Well-known sysvar addresses.
var (
	ClockSysvarID             = MustPubkeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	RentSysvarID              = MustPubkeyFromBase58("SysvarRent111111111111111111111111111111111")
	SlotHashesSysvarID        = MustPubkeyFromBase58("SysvarS1otHashes111111111111111111111111111")
	InstructionsSysvarID      = MustPubkeyFromBase58("Sysvar1nstructions1111111111111111111111111")
	RecentBlockhashesSysvarID = MustPubkeyFromBase58("SysvarRecentB1ockHashes11111111111111111111")
)
