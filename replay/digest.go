package replay

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"github.com/automoto/penguin-squad/physics"
)

// Digest folds the body kinematics of every tick into one sha256 sum. Two
// runs have the same digest only if every position, velocity and angle
// matched bit for bit.
type Digest struct {
	h     hash.Hash
	buf   [8]byte
	ticks int
}

func NewDigest() *Digest {
	return &Digest{h: sha256.New()}
}

// Add records one tick.
func (d *Digest) Add(bodies []physics.Kinematics) {
	d.put(uint64(len(bodies)))
	for _, k := range bodies {
		d.putFloat(k.Position.X, k.Position.Y, k.Velocity.X, k.Velocity.Y, k.Angle, k.AngularVelocity)
	}
	d.ticks++
}

func (d *Digest) putFloat(vs ...float64) {
	for _, v := range vs {
		d.put(math.Float64bits(v))
	}
}

func (d *Digest) put(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	d.h.Write(d.buf[:])
}

func (d *Digest) Ticks() int { return d.ticks }

// Sum returns the hex digest so far. Adding more ticks afterwards is allowed.
func (d *Digest) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
