package saju

// Stem is a value object for one of the ten heavenly stems (천간),
// identified by its cyclic index 0-9.
type Stem int

// Branch is a value object for one of the twelve earthly branches (지지),
// identified by its cyclic index 0-11.
type Branch int

const (
	// StemCount is the length of the heavenly-stem cycle.
	StemCount = 10
	// BranchCount is the length of the earthly-branch cycle.
	BranchCount = 12
)

var stemNames = [StemCount]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var branchNames = [BranchCount]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

// StemOf resolves a single hangul stem glyph to its Stem.
func StemOf(name string) (Stem, bool) {
	for i, n := range stemNames {
		if n == name {
			return Stem(i), true
		}
	}
	return 0, false
}

// BranchOf resolves a single hangul branch glyph to its Branch.
func BranchOf(name string) (Branch, bool) {
	for i, n := range branchNames {
		if n == name {
			return Branch(i), true
		}
	}
	return 0, false
}

// Valid reports whether the stem index is inside the ten-stem cycle.
func (s Stem) Valid() bool {
	return s >= 0 && s < StemCount
}

// String returns the hangul glyph for the stem.
func (s Stem) String() string {
	if !s.Valid() {
		return ""
	}
	return stemNames[s]
}

// Valid reports whether the branch index is inside the twelve-branch cycle.
func (b Branch) Valid() bool {
	return b >= 0 && b < BranchCount
}

// String returns the hangul glyph for the branch.
func (b Branch) String() string {
	if !b.Valid() {
		return ""
	}
	return branchNames[b]
}

// Pillar is an ordered stem/branch pair, always rendered stem-first.
type Pillar struct {
	stem   Stem
	branch Branch
}

// NewPillar creates a pillar from a stem and a branch.
func NewPillar(stem Stem, branch Branch) Pillar {
	return Pillar{stem: stem, branch: branch}
}

// Stem returns the heavenly stem of the pillar.
func (p Pillar) Stem() Stem {
	return p.stem
}

// Branch returns the earthly branch of the pillar.
func (p Pillar) Branch() Branch {
	return p.branch
}

// String renders the pillar as its two-glyph stem+branch form, e.g. "갑자".
func (p Pillar) String() string {
	return p.stem.String() + p.branch.String()
}
