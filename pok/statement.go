package pok

import "github.com/amf-labs/amf-franking/group"

// Statement is a node in the compound statement tree: a DLogEq leaf, or an
// And/Or combination of two sub-statements. The concrete types are
// unexported; callers build trees exclusively through the constructors
// below, which keeps the set of representable shapes closed and every
// Statement value traversable by the shared pre-order walkers in this
// package.
type Statement interface {
	statementNode()
}

// dlogEqStatement is "there exists w such that Points[i] = w*Bases[i] for
// every i". DLog is the Points/Bases-length-1 special case.
type dlogEqStatement struct {
	Points []group.Point
	Bases  []group.Point
}

func (*dlogEqStatement) statementNode() {}

// andStatement is "Left holds and Right holds", under possibly distinct
// witnesses.
type andStatement struct {
	Left, Right Statement
}

func (*andStatement) statementNode() {}

// orStatement is "Left holds or Right holds"; the prover knows which.
type orStatement struct {
	Left, Right Statement
}

func (*orStatement) statementNode() {}

// DLog builds the statement "there exists w such that P = w*B".
func DLog(p, b group.Point) Statement {
	return DLogEq([]group.Point{p}, []group.Point{b})
}

// DLogEq builds the statement "there exists a single w such that
// points[i] = w*bases[i] for every i". len(points) must equal len(bases)
// and be at least 1; Prove and VerifyErr return a malformed-statement error
// otherwise (Verify returns false).
func DLogEq(points, bases []group.Point) Statement {
	return &dlogEqStatement{Points: points, Bases: bases}
}

// And builds the conjunction of two statements.
func And(left, right Statement) Statement {
	return &andStatement{Left: left, Right: right}
}

// Or builds the 1-of-2 disjunction of two statements.
func Or(left, right Statement) Statement {
	return &orStatement{Left: left, Right: right}
}
