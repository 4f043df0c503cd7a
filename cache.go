package qtable

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	owner       uint64
	fingerprint string
}

/*
TableCache keeps recently built truth tables keyed by owner and circuit
fingerprint. The owner separates builders with different oracles sharing one
cache.
*/
type TableCache struct {
	tables *lru.Cache[cacheKey, *Table]
}

func NewTableCache(size int) (*TableCache, error) {
	tables, err := lru.New[cacheKey, *Table](size)
	if err != nil {
		return nil, err
	}
	return &TableCache{
		tables: tables,
	}, nil
}

func (tc *TableCache) Get(owner uint64, c Computation) (*Table, bool) {
	return tc.tables.Get(cacheKey{owner, Fingerprint(c)})
}

func (tc *TableCache) Add(owner uint64, c Computation, t *Table) {
	tc.tables.Add(cacheKey{owner, Fingerprint(c)}, t)
}

func (tc *TableCache) Len() int {
	return tc.tables.Len()
}

func (tc *TableCache) Purge() {
	tc.tables.Purge()
}

/*
Fingerprint hashes everything a truth table depends on: the qubit layout and
the gate sequence. Labels and garbage flags only affect presentation and are
left out.
*/
func Fingerprint(c Computation) string {
	h := sha256.New()

	writeInt(h, c.NumQubits())
	writeInt(h, c.NumDataQubits())
	for q := 0; q < c.NumQubits(); q++ {
		if c.IsAncilla(q) {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeInt(h, c.NumOps())
	for i := 0; i < c.NumOps(); i++ {
		gate := c.Op(i)
		h.Write([]byte{byte(gate.Type)})
		writeInt(h, len(gate.Targets))
		for _, t := range gate.Targets {
			writeInt(h, t)
		}
		writeInt(h, len(gate.Controls))
		for _, ctrl := range gate.Controls {
			writeInt(h, ctrl.Qubit)
			if ctrl.Negative {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeInt(h hash.Hash, v int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}
