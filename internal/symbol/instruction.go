package symbol

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is one bytecode instruction.
//
// Owner, Name and Desc hold the structural operands: the member reference
// of a method or field instruction, or the type descriptor of a type or
// multi-dimensional array instruction. Operand holds everything else
// (constants, local slots, branch offsets, array dimensions) and does not
// take part in structural comparison.
type Instruction struct {
	Op      Opcode
	Owner   string
	Name    string
	Desc    string
	Operand int
}

// Key returns the structural identity of the instruction. Two instructions
// are structurally equal iff their keys are equal.
func (i Instruction) Key() string {
	switch {
	case i.Op.IsMethodInsn(), i.Op.IsFieldInsn():
		return i.Op.String() + " " + i.Owner + "." + i.Name + i.Desc
	case i.Op.IsTypeInsn(), i.Op == OpMultiANewArray:
		return i.Op.String() + " " + i.Desc
	default:
		return i.Op.String()
	}
}

// Equal reports structural equality.
func (i Instruction) Equal(o Instruction) bool {
	if i.Op != o.Op {
		return false
	}

	switch {
	case i.Op.IsMethodInsn(), i.Op.IsFieldInsn():
		return i.Owner == o.Owner && i.Name == o.Name && i.Desc == o.Desc
	case i.Op.IsTypeInsn(), i.Op == OpMultiANewArray:
		return i.Desc == o.Desc
	default:
		return true
	}
}

// String renders the instruction in the textual form accepted by ParseInstruction.
func (i Instruction) String() string {
	switch {
	case i.Op.IsMethodInsn(), i.Op.IsFieldInsn():
		return fmt.Sprintf("%s %s %s %s", i.Op, i.Owner, i.Name, i.Desc)
	case i.Op == OpMultiANewArray:
		return fmt.Sprintf("%s %s %d", i.Op, i.Desc, i.Operand)
	case i.Op.IsTypeInsn():
		return i.Op.String() + " " + i.Desc
	case i.Operand != 0:
		return i.Op.String() + " " + strconv.Itoa(i.Operand)
	default:
		return i.Op.String()
	}
}

// Insn is a shorthand constructor for instructions without structural operands.
func Insn(op Opcode, operand ...int) Instruction {
	in := Instruction{Op: op}
	if len(operand) > 0 {
		in.Operand = operand[0]
	}

	return in
}

// MemberInsn builds a method or field instruction.
func MemberInsn(op Opcode, owner, name, desc string) Instruction {
	return Instruction{Op: op, Owner: owner, Name: name, Desc: desc}
}

// TypeInsn builds a type instruction (NEW, ANEWARRAY, CHECKCAST, INSTANCEOF).
func TypeInsn(op Opcode, desc string) Instruction {
	return Instruction{Op: op, Desc: desc}
}

// ParseInstruction parses "MNEMONIC [operands]". Member instructions take
// "owner name desc", type instructions take "desc", MULTIANEWARRAY takes
// "desc dims", everything else takes an optional integer operand.
func ParseInstruction(s string) (Instruction, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Instruction{}, fmt.Errorf("empty instruction")
	}

	op, ok := ParseOpcode(parts[0])
	if !ok {
		return Instruction{}, fmt.Errorf("unknown opcode %q", parts[0])
	}

	args := parts[1:]

	switch {
	case op.IsMethodInsn(), op.IsFieldInsn():
		if len(args) != 3 {
			return Instruction{}, fmt.Errorf("%s expects owner, name and descriptor, got %q", op, s)
		}

		return MemberInsn(op, args[0], args[1], args[2]), nil
	case op == OpMultiANewArray:
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("%s expects descriptor and dimensions, got %q", op, s)
		}

		dims, err := strconv.Atoi(args[1])
		if err != nil {
			return Instruction{}, fmt.Errorf("invalid dimensions in %q: %w", s, err)
		}

		return Instruction{Op: op, Desc: args[0], Operand: dims}, nil
	case op.IsTypeInsn():
		if len(args) != 1 {
			return Instruction{}, fmt.Errorf("%s expects a descriptor, got %q", op, s)
		}

		return TypeInsn(op, args[0]), nil
	}

	switch len(args) {
	case 0:
		return Insn(op), nil
	case 1:
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return Instruction{}, fmt.Errorf("invalid operand in %q: %w", s, err)
		}

		return Insn(op, v), nil
	default:
		return Instruction{}, fmt.Errorf("%s takes at most one operand, got %q", op, s)
	}
}
