package main

import "strings"

// ArgPattern is the class an argument position accepts.
type ArgPattern int

const (
	VarArg   ArgPattern = iota + 1 // a variable
	SymbArg                        // a variable or any constant
	LabelArg                       // a label name
	TypeArg                        // int, bool or string
)

func (p ArgPattern) String() string {
	switch p {
	case VarArg:
		return "var"
	case SymbArg:
		return "symb"
	case LabelArg:
		return "label"
	case TypeArg:
		return "type"
	}
	return "none"
}

// accepts reports whether a literal of kind k may stand in position p.
func (p ArgPattern) accepts(k LiteralKind) bool {
	switch p {
	case VarArg:
		return k == VarKind
	case SymbArg:
		return k == VarKind || k.isConstant()
	case LabelArg:
		return k == LabelKind
	case TypeArg:
		return k == TypeKind
	}
	return false
}

var (
	noOperands      = []ArgPattern{}
	varOperand      = []ArgPattern{VarArg}
	symbOperand     = []ArgPattern{SymbArg}
	labelOperand    = []ArgPattern{LabelArg}
	varTypeOperands = []ArgPattern{VarArg, TypeArg}
	varSymbOperands = []ArgPattern{VarArg, SymbArg}
	varSymbSymb     = []ArgPattern{VarArg, SymbArg, SymbArg}
	labelSymbSymb   = []ArgPattern{LabelArg, SymbArg, SymbArg}
)

var baseOpcodes = map[string][]ArgPattern{
	"CREATEFRAME": noOperands,
	"PUSHFRAME":   noOperands,
	"POPFRAME":    noOperands,
	"RETURN":      noOperands,
	"BREAK":       noOperands,

	"DEFVAR": varOperand,
	"POPS":   varOperand,

	"PUSHS":  symbOperand,
	"WRITE":  symbOperand,
	"EXIT":   symbOperand,
	"DPRINT": symbOperand,

	"CALL":  labelOperand,
	"LABEL": labelOperand,
	"JUMP":  labelOperand,

	"READ": varTypeOperands,

	"MOVE":     varSymbOperands,
	"INT2CHAR": varSymbOperands,
	"STRLEN":   varSymbOperands,
	"TYPE":     varSymbOperands,

	"ADD":      varSymbSymb,
	"SUB":      varSymbSymb,
	"MUL":      varSymbSymb,
	"IDIV":     varSymbSymb,
	"LT":       varSymbSymb,
	"GT":       varSymbSymb,
	"EQ":       varSymbSymb,
	"AND":      varSymbSymb,
	"OR":       varSymbSymb,
	"STRI2INT": varSymbSymb,
	"CONCAT":   varSymbSymb,
	"GETCHAR":  varSymbSymb,
	"SETCHAR":  varSymbSymb,

	"JUMPIFEQ":  labelSymbSymb,
	"JUMPIFNEQ": labelSymbSymb,
}

// instructionSet maps canonical opcode names to their operand patterns.
// The two sets differ only in the arity of NOT; both are built once and
// never modified.
type instructionSet struct {
	ops map[string][]ArgPattern
}

var (
	binaryNotSet = newInstructionSet(varSymbSymb)
	unaryNotSet  = newInstructionSet(varSymbOperands)
)

func newInstructionSet(not []ArgPattern) instructionSet {
	ops := make(map[string][]ArgPattern, len(baseOpcodes)+1)
	for name, pattern := range baseOpcodes {
		ops[name] = pattern
	}
	ops["NOT"] = not
	return instructionSet{ops: ops}
}

// instructionSetFor returns the set selected by the configuration.
func instructionSetFor(cfg *Config) instructionSet {
	if cfg != nil && cfg.UnaryNot {
		return unaryNotSet
	}
	return binaryNotSet
}

// lookup resolves an opcode lexeme case-insensitively and returns the
// canonical name with its operand patterns. The returned slice must not
// be modified.
func (s instructionSet) lookup(lexeme string) (string, []ArgPattern, bool) {
	name := strings.ToUpper(lexeme)
	pattern, ok := s.ops[name]
	return name, pattern, ok
}
