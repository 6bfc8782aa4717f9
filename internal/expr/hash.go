package expr

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

func rawPtrOf(n internalNode) uintptr {
	return reflect.ValueOf(n).Pointer()
}

func hashString(tag, s string) uint64 {
	h := xxhash.New()
	h.Write([]byte(tag))
	h.Write([]byte(s))
	return h.Sum64()
}

// hashNode hashes the kind tag together with the raw pointer identity
// of every already-interned child, since children are always looked
// up in the cache before a parent is built.
func hashNode(k Kind, ops ...Expr) uint64 {
	h := xxhash.New()
	var kb [8]byte
	binary.BigEndian.PutUint64(kb[:], uint64(k))
	h.Write(kb[:])
	for _, op := range ops {
		var raw [8]byte
		binary.BigEndian.PutUint64(raw[:], uint64(op.Id()))
		h.Write(raw[:])
	}
	return h.Sum64()
}
