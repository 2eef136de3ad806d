package calibration

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Seed derives a 32-bit seed from the stable project identifiers. The same
// (userID, projectID, title) triple always produces the same seed, which is
// what makes calibration snapshots reproducible per project while still
// varying across projects. This is a determinism mechanism, not a
// cryptographic one: md5 is used only as a stable mixing function.
func Seed(userID, projectID int64, title string) uint32 {
	sum := md5.Sum([]byte(fmt.Sprintf("%d-%d-%s", userID, projectID, title)))
	return binary.BigEndian.Uint32(sum[:4])
}
