package career

import "github.com/fieldhq/brevet/internal/catalog"

// minCostFactor floors multiplicative cost bonuses so stacked reductions
// can never drive a cost to zero or below.
const minCostFactor = 0.1

type bonusKey struct {
	bonus       catalog.BonusType
	onlyBoolean bool
}

type bonusEntry struct {
	version uint64
	value   float64
}

type capEntry struct {
	version uint64
	value   bool
}

// Bonus returns the aggregated value of a bonus type over all unlocked
// skills.
func (t *Tree) Bonus(bt catalog.BonusType) float64 {
	return t.BonusValue(bt, false)
}

// BonusValue aggregates the bonus type over all unlocked skills,
// optionally counting only boolean (capability) effects. Additive types
// fold from 0.0; cost-reduction types fold multiplicatively from 1.0 and
// are floored at minCostFactor. Results are memoized per key against the
// tree's mutation counter; reads never mutate progression state.
func (t *Tree) BonusValue(bt catalog.BonusType, onlyBoolean bool) float64 {
	key := bonusKey{bt, onlyBoolean}
	if e, ok := t.bonuses[key]; ok && e.version == t.version {
		return e.value
	}
	v := t.computeBonus(bt, onlyBoolean)
	t.bonuses[key] = bonusEntry{version: t.version, value: v}
	return v
}

func (t *Tree) computeBonus(bt catalog.BonusType, onlyBoolean bool) float64 {
	multiplicative := bt.Kind() == catalog.KindMultiplicative
	total := 0.0
	if multiplicative {
		total = 1.0
	}
	for tag, on := range t.unlocked {
		if !on {
			continue
		}
		d, ok := t.cat.Lookup(tag)
		if !ok {
			continue
		}
		for _, e := range d.Effects {
			if e.Type != bt {
				continue
			}
			if onlyBoolean && !e.IsBoolean() {
				continue
			}
			if multiplicative {
				total *= e.Value
			} else {
				total += e.Value
			}
		}
	}
	if multiplicative && total < minCostFactor {
		total = minCostFactor
	}
	return total
}

// HasCapability reports whether any unlocked skill grants the boolean
// capability. Short-circuits on the first grant; memoized per type.
func (t *Tree) HasCapability(bt catalog.BonusType) bool {
	if e, ok := t.caps[bt]; ok && e.version == t.version {
		return e.value
	}
	granted := false
scan:
	for tag, on := range t.unlocked {
		if !on {
			continue
		}
		d, ok := t.cat.Lookup(tag)
		if !ok {
			continue
		}
		for _, e := range d.Effects {
			if e.Type == bt && e.IsBoolean() && e.Value > 0 {
				granted = true
				break scan
			}
		}
	}
	t.caps[bt] = capEntry{version: t.version, value: granted}
	return granted
}
