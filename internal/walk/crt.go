package walk

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/aretw0/ghostmap/pkg/domain"
	"lukechampine.com/uint128"
)

// maxResidueClasses bounds the combined congruence set in Synchronize.
const maxResidueClasses = 1 << 16

// ErrSearchSpaceTooLarge is returned when too many residue combinations survive.
var ErrSearchSpaceTooLarge = errors.New("too many residue classes")

// congruence is x ≡ r (mod m).
type congruence struct {
	r, m *big.Int
}

// Synchronize returns the first step t >= 1 at which every cycle accepts.
//
// Steps before the longest transient are checked directly. After it every
// walker is periodic, so the accepting residues of all walkers are merged with
// the generalized Chinese Remainder Theorem and the smallest admissible
// representative is taken.
func Synchronize(cycles []Cycle) (uint128.Uint128, error) {
	if len(cycles) == 0 {
		return uint128.Zero, domain.ErrNoStartNodes
	}

	var horizon uint64 = 1
	for _, c := range cycles {
		horizon = max(horizon, c.Offset)
	}

	for t := uint64(1); t < horizon; t++ {
		if acceptsAll(cycles, t) {
			return uint128.From64(t), nil
		}
	}

	set := []congruence{{r: big.NewInt(0), m: big.NewInt(1)}}
	for _, c := range cycles {
		length := new(big.Int).SetUint64(c.Length)
		seen := make(map[string]struct{})
		var next []congruence
		for _, a := range set {
			for _, r := range c.Residues {
				x, ok := combine(a, congruence{r: new(big.Int).SetUint64(r), m: length})
				if !ok {
					continue
				}
				key := x.r.String()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				next = append(next, x)
			}
		}
		if len(next) == 0 {
			return uint128.Zero, fmt.Errorf("%w: walker from %s never agrees with the others", domain.ErrNoSynchronization, c.Start)
		}
		if len(next) > maxResidueClasses {
			return uint128.Zero, fmt.Errorf("%w: %d after walker %s", ErrSearchSpaceTooLarge, len(next), c.Start)
		}
		set = next
	}

	floor := new(big.Int).SetUint64(horizon)
	var best *big.Int
	for _, a := range set {
		t := firstAtLeast(a, floor)
		if best == nil || t.Cmp(best) < 0 {
			best = t
		}
	}
	if best.BitLen() > 128 {
		return uint128.Zero, domain.ErrOverflow
	}
	return uint128.FromBig(best), nil
}

func acceptsAll(cycles []Cycle, t uint64) bool {
	for _, c := range cycles {
		if !c.Accepts(t) {
			return false
		}
	}
	return true
}

// combine merges two congruences with possibly non-coprime moduli.
func combine(a, b congruence) (congruence, bool) {
	g := new(big.Int).GCD(nil, nil, a.m, b.m)
	diff := new(big.Int).Sub(b.r, a.r)
	if new(big.Int).Mod(diff, g).Sign() != 0 {
		return congruence{}, false
	}

	mg := new(big.Int).Quo(b.m, g)
	lcm := new(big.Int).Mul(new(big.Int).Quo(a.m, g), b.m)
	x := new(big.Int).Set(a.r)
	if mg.Cmp(big.NewInt(1)) != 0 {
		inv := new(big.Int).ModInverse(new(big.Int).Mod(new(big.Int).Quo(a.m, g), mg), mg)
		k := new(big.Int).Quo(diff, g)
		k.Mul(k, inv).Mod(k, mg)
		x.Add(x, k.Mul(k, a.m))
	}
	return congruence{r: x.Mod(x, lcm), m: lcm}, true
}

// firstAtLeast returns the smallest t >= floor with t ≡ c.r (mod c.m).
func firstAtLeast(c congruence, floor *big.Int) *big.Int {
	if c.r.Cmp(floor) >= 0 {
		return new(big.Int).Set(c.r)
	}
	gap := new(big.Int).Sub(floor, c.r)
	k := new(big.Int).Add(gap, new(big.Int).Sub(c.m, big.NewInt(1)))
	k.Quo(k, c.m)
	return k.Mul(k, c.m).Add(k, c.r)
}
