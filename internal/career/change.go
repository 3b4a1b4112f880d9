package career

import "github.com/fieldhq/brevet/internal/catalog"

// Change describes everything a successful unlock did to the tree. The
// UI layer renders notifications from this diff; the core has no
// subscriber lists.
type Change struct {
	Tag         catalog.SkillTag
	Name        string
	Description string // full catalog description of the unlocked skill
	Branch      catalog.BranchTag

	BranchStarted bool // this unlock started the branch
	TierFirst     bool // first unlock at this tier within the branch

	Promoted bool
	Grade    catalog.Grade // grade after the unlock

	ReputationDelta int // negative: the cost debited
	Reputation      int // balance after the unlock

	Capabilities []catalog.BonusType // boolean capabilities granted
}

// ResetResult describes a respec: the reputation refunded and the skills
// and branches cleared. A zero result means the call was rejected or had
// nothing to do.
type ResetResult struct {
	Refund          int
	Cleared         []catalog.SkillTag
	ClearedBranches []catalog.BranchTag
}

// Changed reports whether the reset modified the tree.
func (r ResetResult) Changed() bool {
	return len(r.Cleared) > 0 || len(r.ClearedBranches) > 0
}
