package main

// Instruction is one validated source instruction.
type Instruction struct {
	Order  int
	Opcode string
	Args   []Literal
}

// Program is the result of a successful translation.
type Program struct {
	Language     string
	HeaderSeen   bool
	Instructions []Instruction
}

func newProgram(language string) *Program {
	return &Program{Language: language}
}

// append adds an instruction with the next order number. Numbering
// starts at 1 and is independent of source line numbers.
func (p *Program) append(opcode string, args []Literal) *Instruction {
	p.Instructions = append(p.Instructions, Instruction{
		Order:  len(p.Instructions) + 1,
		Opcode: opcode,
		Args:   args,
	})
	return &p.Instructions[len(p.Instructions)-1]
}
