package runtime

// MaxAccountSize is the hard limit on a single account's data buffer (10 MB).
// Programs needing more storage shard data across multiple accounts.
const MaxAccountSize = 10 * 1024 * 1024

// LamportsPerByte approximates the current rent rate per byte-year of
// storage. For exact figures read the rent sysvar; this constant is accurate
// enough for allocation sizing.
const LamportsPerByte = 6960

// accountOverhead is the metadata the host stores alongside every account.
const accountOverhead = 128

// RentExemptMinimum returns the minimum balance that makes an account of the
// given data size exempt from rent collection.
func RentExemptMinimum(dataLen int) uint64 {
	return uint64(accountOverhead+dataLen) * LamportsPerByte
}
