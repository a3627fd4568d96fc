// Package hashutil provides the fixed, build-independent 64-bit avalanche
// mix used to structurally hash AST nodes (spec.md §4.4 "Hash").
//
// stdlib-only by necessity: the mix must be stable across builds and
// processes (spec.md §9 "must not hash over mutable counters... that vary
// per build"), which rules out hash/maphash (per-process seed) and every
// hashing library in the retrieval pack, none of which expose a
// non-cryptographic, seedless struct-combining avalanche.
package hashutil

// Seed values are fixed per spec.md §4.4: "Variants with no children...
// must return a stable constant derived from a fixed per-variant seed".
// Each constant below is an arbitrary odd 64-bit value, never derived from
// build time, line numbers, or counters.
const (
	SeedNoOp      uint64 = 0x9e3779b97f4a7c15
	SeedBreak     uint64 = 0xbf58476d1ce4e5b9
	SeedContinue  uint64 = 0x94d049bb133111eb
	SeedWildcard  uint64 = 0xff51afd7ed558ccd
	SeedVoid      uint64 = 0xc4ceb9fe1a85ec53
	SeedNil       uint64 = 0x2545f4914f6cdd1d
	SeedMetaType  uint64 = 0xd6e8feb86659fd93
	SeedBool      uint64 = 0xa0761d6478bd642f
	SeedInt       uint64 = 0xe7037ed1a0b428db
	SeedUInt      uint64 = 0x8ebc6af09c88c6e3
	SeedFloat     uint64 = 0x589965cc75374cc3
	SeedNoOpType  uint64 = 0x1d8e4e27c47d124f

	SeedEnum         uint64 = 0x27d4eb2f165667c5
	SeedArray        uint64 = 0x85ebca6b7cdac73b
	SeedTuple        uint64 = 0xc2b2ae3d27d4eb4f
	SeedRecord       uint64 = 0x165667b19e3779f9
	SeedNestedType   uint64 = 0x9e3779b185ebca6b
	SeedFunctionType uint64 = 0xff51afd7c2b2ae3d

	SeedUse                 uint64 = 0x2545f4914f6cdd2b
	SeedNamespace           uint64 = 0xbf58476d1ce4e5c7
	SeedDeclaration         uint64 = 0x94d049bb13311205
	SeedIdentifier          uint64 = 0xd6e8feb86659fda1
	SeedQualifiedIdentifier uint64 = 0xa0761d6478bd643d
	SeedScope               uint64 = 0xe7037ed1a0b428e9
	SeedBranch              uint64 = 0x8ebc6af09c88c6f1
	SeedSelect              uint64 = 0x589965cc75374cd1
	SeedWhile               uint64 = 0xc4ceb9fe1a85ec61
	SeedDoWhile             uint64 = 0xff51afd7ed558cdb
	SeedFor                 uint64 = 0x2545f4914f6cdd39
	SeedForEach             uint64 = 0x9e3779b97f4a7c23
	SeedUnaryExpression     uint64 = 0xbf58476d1ce4e5d5
	SeedBinaryExpression    uint64 = 0x94d049bb13311213
	SeedCast                uint64 = 0xff51afd7ed558ce9
	SeedFunction            uint64 = 0xd6e8feb86659fdaf
	SeedFunctionCall        uint64 = 0xa0761d6478bd644b
	SeedConstructorCall     uint64 = 0xe7037ed1a0b428f7
	SeedDestructorCall      uint64 = 0x8ebc6af09c88c6ff
	SeedReturn              uint64 = 0x589965cc75374cdf
	SeedYield               uint64 = 0xc4ceb9fe1a85ec6f
	SeedDefer               uint64 = 0x2545f4914f6cdd47
	SeedTraitsOf            uint64 = 0x9e3779b97f4a7c31
	SeedPragma              uint64 = 0xbf58476d1ce4e5e3

	SeedLiteralBool uint64 = 0x94d049bb13311221
	SeedLiteralInt  uint64 = 0xff51afd7ed558cf7
	SeedLiteralUint uint64 = 0xd6e8feb86659fdbd
	SeedLiteralReal uint64 = 0xa0761d6478bd6459
)

// Mix64 is a SplitMix64-style avalanche: two 64-bit multiplications and
// three shifts (spec.md GLOSSARY "Wellons mix"). Deterministic across
// platforms; operates purely on its input, no global or time-based state.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Combine folds a child hash into an accumulator by XOR-ing the avalanched
// child into it, per spec.md §4.4 ("Combines child hashes with XOR").
func Combine(acc, child uint64) uint64 {
	return acc ^ Mix64(child)
}

// CombineSeed starts a fresh accumulator from a per-variant seed.
func CombineSeed(seed uint64, children ...uint64) uint64 {
	acc := seed
	for _, c := range children {
		acc = Combine(acc, c)
	}
	return acc
}

// Bytes hashes a byte string via FNV-1a, then passes the
// result through Mix64 for one more avalanche round before it enters any
// structural combination.
func Bytes(b []byte) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return Mix64(h)
}

// String is Bytes for a Go string, without an intermediate copy.
func String(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return Mix64(h)
}

// U64 mixes a raw scalar (bit widths, rune values, integer literal
// payloads) into the avalanche.
func U64(v uint64) uint64 { return Mix64(v) }
