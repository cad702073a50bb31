package symbol

import (
	"fmt"
	"strings"
)

// Opcode is a JVM instruction opcode.
type Opcode uint8

// Opcodes referenced by the matchers and the fixture parser. The full
// mnemonic table lives in opcodeNames.
const (
	OpNop            Opcode = 0
	OpAconstNull     Opcode = 1
	OpIconst0        Opcode = 3
	OpIconst1        Opcode = 4
	OpBipush         Opcode = 16
	OpSipush         Opcode = 17
	OpLdc            Opcode = 18
	OpIload          Opcode = 21
	OpLload          Opcode = 22
	OpAload          Opcode = 25
	OpAload0         Opcode = 42
	OpIstore         Opcode = 54
	OpAstore         Opcode = 58
	OpPop            Opcode = 87
	OpDup            Opcode = 89
	OpIadd           Opcode = 96
	OpIfeq           Opcode = 153
	OpIfne           Opcode = 154
	OpGoto           Opcode = 167
	OpIreturn        Opcode = 172
	OpAreturn        Opcode = 176
	OpReturn         Opcode = 177
	OpGetstatic      Opcode = 178
	OpPutstatic      Opcode = 179
	OpGetfield       Opcode = 180
	OpPutfield       Opcode = 181
	OpInvokeVirtual  Opcode = 182
	OpInvokeSpecial  Opcode = 183
	OpInvokeStatic   Opcode = 184
	OpInvokeIface    Opcode = 185
	OpInvokeDynamic  Opcode = 186
	OpNew            Opcode = 187
	OpNewarray       Opcode = 188
	OpAnewarray      Opcode = 189
	OpAthrow         Opcode = 191
	OpCheckcast      Opcode = 192
	OpInstanceof     Opcode = 193
	OpMultiANewArray Opcode = 197
)

// opcodeNames lists the JVM mnemonics in opcode order (0x00 to 0xc9).
const opcodeNames = "nop aconst_null iconst_m1 iconst_0 iconst_1 iconst_2 iconst_3 iconst_4 iconst_5 " +
	"lconst_0 lconst_1 fconst_0 fconst_1 fconst_2 dconst_0 dconst_1 bipush sipush ldc ldc_w ldc2_w " +
	"iload lload fload dload aload " +
	"iload_0 iload_1 iload_2 iload_3 lload_0 lload_1 lload_2 lload_3 " +
	"fload_0 fload_1 fload_2 fload_3 dload_0 dload_1 dload_2 dload_3 " +
	"aload_0 aload_1 aload_2 aload_3 " +
	"iaload laload faload daload aaload baload caload saload " +
	"istore lstore fstore dstore astore " +
	"istore_0 istore_1 istore_2 istore_3 lstore_0 lstore_1 lstore_2 lstore_3 " +
	"fstore_0 fstore_1 fstore_2 fstore_3 dstore_0 dstore_1 dstore_2 dstore_3 " +
	"astore_0 astore_1 astore_2 astore_3 " +
	"iastore lastore fastore dastore aastore bastore castore sastore " +
	"pop pop2 dup dup_x1 dup_x2 dup2 dup2_x1 dup2_x2 swap " +
	"iadd ladd fadd dadd isub lsub fsub dsub imul lmul fmul dmul idiv ldiv fdiv ddiv " +
	"irem lrem frem drem ineg lneg fneg dneg ishl lshl ishr lshr iushr lushr " +
	"iand land ior lor ixor lxor iinc " +
	"i2l i2f i2d l2i l2f l2d f2i f2l f2d d2i d2l d2f i2b i2c i2s " +
	"lcmp fcmpl fcmpg dcmpl dcmpg " +
	"ifeq ifne iflt ifge ifgt ifle if_icmpeq if_icmpne if_icmplt if_icmpge if_icmpgt if_icmple " +
	"if_acmpeq if_acmpne goto jsr ret tableswitch lookupswitch " +
	"ireturn lreturn freturn dreturn areturn return " +
	"getstatic putstatic getfield putfield " +
	"invokevirtual invokespecial invokestatic invokeinterface invokedynamic " +
	"new newarray anewarray arraylength athrow checkcast instanceof monitorenter monitorexit " +
	"wide multianewarray ifnull ifnonnull goto_w jsr_w"

var (
	opNames   = strings.Fields(opcodeNames)
	opByName  = indexOpcodes(opNames)
	maxOpcode = Opcode(len(opNames) - 1)
)

func indexOpcodes(names []string) map[string]Opcode {
	m := make(map[string]Opcode, len(names))
	for i, n := range names {
		m[strings.ToUpper(n)] = Opcode(i)
	}

	return m
}

// String returns the upper-case mnemonic, e.g. "INVOKESTATIC".
func (o Opcode) String() string {
	if o > maxOpcode {
		return fmt.Sprintf("OPCODE_%#02x", uint8(o))
	}

	return strings.ToUpper(opNames[o])
}

// ParseOpcode looks up a mnemonic (case-insensitive).
func ParseOpcode(s string) (Opcode, bool) {
	op, ok := opByName[strings.ToUpper(s)]
	return op, ok
}

// IsMethodInsn reports whether the opcode invokes a method.
func (o Opcode) IsMethodInsn() bool {
	return o >= OpInvokeVirtual && o <= OpInvokeDynamic
}

// IsFieldInsn reports whether the opcode reads or writes a field.
func (o Opcode) IsFieldInsn() bool {
	return o >= OpGetstatic && o <= OpPutfield
}

// IsTypeInsn reports whether the opcode carries a single type descriptor.
func (o Opcode) IsTypeInsn() bool {
	switch o {
	case OpNew, OpAnewarray, OpCheckcast, OpInstanceof:
		return true
	default:
		return false
	}
}
