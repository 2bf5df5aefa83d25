// SPDX-License-Identifier: MIT
//
// File: payload.go
// Role: C1 — the payload analysis. MakePayload computes the semantic value
// attached to an eclass from the payloads of a candidate node's children;
// MergePayload combines the payloads of two eclasses being unified. Both
// are total and fail fast (TypeFault) rather than silently coercing, per
// spec §4.1.
package egraph

// PayloadKind discriminates the semantic-value variants named in spec §3:
// signal, list, number, op, instruction, empty — plus String, needed
// internally to type a Var's name child (the original Lakeroad analysis
// carries the same extra "_String" variant for identical reasons).
type PayloadKind int

const (
	PayloadSignal PayloadKind = iota
	PayloadList
	PayloadNum
	PayloadOp
	PayloadString
	PayloadInstr
	PayloadEmpty
)

// Payload is the tagged semantic value attached to every eclass.
type Payload struct {
	Kind PayloadKind
	BW   int   // Signal, Instr: bitwidth
	List []Id  // List: concrete (canonical at computation time) child ids
	Num  int64 // Num
	Op   Op    // Op
	Str  string
}

// Equal reports structural equality, the congruence invariant MergePayload
// relies on (spec §4.1: "both payloads must already be equal").
func (p Payload) Equal(o Payload) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case PayloadSignal, PayloadInstr:
		return p.BW == o.BW
	case PayloadList:
		if len(p.List) != len(o.List) {
			return false
		}
		for i := range p.List {
			if p.List[i] != o.List[i] {
				return false
			}
		}
		return true
	case PayloadNum:
		return p.Num == o.Num
	case PayloadOp:
		return p.Op == o.Op
	case PayloadString:
		return p.Str == o.Str
	case PayloadEmpty:
		return true
	default:
		return false
	}
}

func signal(bw int) Payload { return Payload{Kind: PayloadSignal, BW: bw} }
func empty() Payload        { return Payload{Kind: PayloadEmpty} }

// payloadOf fetches the payload of id's current canonical eclass.
func (eg *EGraph) payloadOf(id Id) (Payload, error) {
	c, ok := eg.classes[eg.Find(id)]
	if !ok {
		return Payload{}, ErrUnknownEClass
	}
	return c.payload, nil
}

// MakePayload computes the payload for a candidate node n, whose Children
// are assumed already canonicalized. It consults the current payload of
// each child eclass; it never mutates the e-graph.
func MakePayload(eg *EGraph, n ENode) (Payload, error) {
	switch n.Kind {
	case KindOp:
		return Payload{Kind: PayloadOp, Op: n.OpVal}, nil
	case KindNum:
		return Payload{Kind: PayloadNum, Num: n.NumVal}, nil
	case KindString:
		return Payload{Kind: PayloadString, Str: n.StrVal}, nil

	case KindVar, KindConst:
		bwPayload, err := eg.payloadOf(n.Children[1])
		if err != nil {
			return Payload{}, err
		}
		if bwPayload.Kind != PayloadNum {
			return Payload{}, typeFault(n, "bitwidth child is not a number")
		}
		if bwPayload.Num <= 0 {
			return Payload{}, typeFault(n, "bitwidth must be positive")
		}
		return signal(int(bwPayload.Num)), nil

	case KindHole:
		bwPayload, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		if bwPayload.Kind != PayloadNum {
			return Payload{}, typeFault(n, "hole bitwidth child is not a number")
		}
		if bwPayload.Num <= 0 {
			return Payload{}, typeFault(n, "bitwidth must be positive")
		}
		return signal(int(bwPayload.Num)), nil

	case KindUnOp:
		opP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		bwP, err := eg.payloadOf(n.Children[1])
		if err != nil {
			return Payload{}, err
		}
		argP, err := eg.payloadOf(n.Children[2])
		if err != nil {
			return Payload{}, err
		}
		if opP.Kind != PayloadOp || bwP.Kind != PayloadNum || argP.Kind != PayloadSignal {
			return Payload{}, typeFault(n, "unop operands do not type-check")
		}
		if !opP.Op.IsUnary() {
			return Payload{}, typeFault(n, "op is not legal on a unop node")
		}
		if argP.BW != int(bwP.Num) {
			return Payload{}, typeFault(n, "unop argument bitwidth does not match declared bitwidth")
		}
		return signal(int(bwP.Num)), nil

	case KindBinOp:
		opP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		bwP, err := eg.payloadOf(n.Children[1])
		if err != nil {
			return Payload{}, err
		}
		aP, err := eg.payloadOf(n.Children[2])
		if err != nil {
			return Payload{}, err
		}
		bP, err := eg.payloadOf(n.Children[3])
		if err != nil {
			return Payload{}, err
		}
		if opP.Kind != PayloadOp || bwP.Kind != PayloadNum || aP.Kind != PayloadSignal || bP.Kind != PayloadSignal {
			return Payload{}, typeFault(n, "binop operands do not type-check")
		}
		if !opP.Op.IsBinary() {
			return Payload{}, typeFault(n, "op is not legal on a binop node")
		}
		if aP.BW != bP.BW {
			return Payload{}, typeFault(n, "binop operand bitwidths must match")
		}
		if aP.BW != int(bwP.Num) {
			return Payload{}, typeFault(n, "binop operand bitwidth must match declared bitwidth")
		}
		return signal(int(bwP.Num)), nil

	case KindList:
		// Children are already canonical ids; the List payload is simply
		// that id vector.
		list := make([]Id, len(n.Children))
		copy(list, n.Children)
		return Payload{Kind: PayloadList, List: list}, nil

	case KindConcat:
		aP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		bP, err := eg.payloadOf(n.Children[1])
		if err != nil {
			return Payload{}, err
		}
		if aP.Kind != PayloadList || bP.Kind != PayloadList {
			return Payload{}, typeFault(n, "concat requires two lists")
		}
		merged := make([]Id, 0, len(aP.List)+len(bP.List))
		merged = append(merged, aP.List...)
		merged = append(merged, bP.List...)
		return Payload{Kind: PayloadList, List: merged}, nil

	case KindCanonicalize:
		listP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		if listP.Kind != PayloadList {
			return Payload{}, typeFault(n, "canonicalize requires a list")
		}
		return empty(), nil

	case KindCanonicalArgs:
		for _, c := range n.Children {
			p, err := eg.payloadOf(c)
			if err != nil {
				return Payload{}, err
			}
			if p.Kind != PayloadNum {
				return Payload{}, typeFault(n, "every canonical-args child must be a number")
			}
		}
		return empty(), nil

	case KindInstr:
		astP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		cargsP, err := eg.payloadOf(n.Children[1])
		if err != nil {
			return Payload{}, err
		}
		if astP.Kind != PayloadSignal {
			return Payload{}, typeFault(n, "instr ast child must be a signal")
		}
		if cargsP.Kind != PayloadEmpty {
			return Payload{}, typeFault(n, "instr canonical-args child must carry the empty payload")
		}
		return Payload{Kind: PayloadInstr, BW: astP.BW}, nil

	case KindApply:
		instrP, err := eg.payloadOf(n.Children[0])
		if err != nil {
			return Payload{}, err
		}
		if instrP.Kind != PayloadInstr {
			return Payload{}, typeFault(n, "apply requires an instruction")
		}
		return signal(instrP.BW), nil

	default:
		return Payload{}, typeFault(n, "unrecognized node kind")
	}
}

// MergePayload combines the payloads of two eclasses scheduled for union.
// Because payloads carry full semantic information, a legal merge requires
// both to already be equal (spec §4.1); anything else is a TypeFault.
func MergePayload(a, b Payload) (Payload, error) {
	if !a.Equal(b) {
		return Payload{}, &TypeFault{Reason: "merge of structurally unequal payloads"}
	}
	return a, nil
}
