package common

import "hash/fnv"

// UnitID converts the absolute path of a syntax dump into a numeric ID.  Dumps
// that share a base name are told apart by this ID in their output names.
func UnitID(abspath string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(abspath))
	return h.Sum32()
}
