package masm

// Reference data shown by completion and hover.

var Instructions = []Entry{
	{Name: "ADC", Detail: "Add with Carry", Documentation: "Adds the source operand and the carry flag to the destination operand."},
	{Name: "ADD", Detail: "Addition", Documentation: "Adds source to destination."},
	{Name: "AND", Detail: "Logical AND", Documentation: "Performs a bitwise AND operation between source and destination."},
	{Name: "CALL", Detail: "Call Procedure", Documentation: "Calls a procedure."},
	{Name: "CBW", Detail: "Convert Byte to Word", Documentation: "Converts a signed byte to a signed word."},
	{Name: "CDQ", Detail: "Convert Double to Quad", Documentation: "Converts a signed doubleword to a signed quadword."},
	{Name: "CMP", Detail: "Compare", Documentation: "Compares two operands."},
	{Name: "CWD", Detail: "Convert Word to Doubleword", Documentation: "Converts a signed word to a signed doubleword."},
	{Name: "DEC", Detail: "Decrement", Documentation: "Decrements operand by 1."},
	{Name: "DIV", Detail: "Unsigned Division", Documentation: "Divides unsigned integers."},
	{Name: "IDIV", Detail: "Signed Division", Documentation: "Divides signed integers."},
	{Name: "IMUL", Detail: "Signed Multiplication", Documentation: "Multiplies signed integers."},
	{Name: "INC", Detail: "Increment", Documentation: "Increments operand by 1."},
	{Name: "JA", Detail: "Jump if Above", Documentation: "Jump if the destination is strictly greater than the source (unsigned comparison)."},
	{Name: "JAE", Detail: "Jump if Above or Equal", Documentation: "Jump if the destination is greater than or equal to the source (unsigned comparison)."},
	{Name: "JB", Detail: "Jump if Below", Documentation: "Jump if the destination is strictly less than the source (unsigned comparison)."},
	{Name: "JBE", Detail: "Jump if Below or Equal", Documentation: "Jump if the destination is less than or equal to the source (unsigned comparison)."},
	{Name: "JC", Detail: "Jump if Carry", Documentation: "Jump if the carry flag is set."},
	{Name: "JE", Detail: "Jump if Equal", Documentation: "Jump if zero flag is set."},
	{Name: "JECXZ", Detail: "Jump if ECX is Zero", Documentation: "Jump if ECX register equals zero."},
	{Name: "JG", Detail: "Jump if Greater", Documentation: "Jump if the destination is strictly greater than the source (signed comparison)."},
	{Name: "JGE", Detail: "Jump if Greater or Equal", Documentation: "Jump if the destination is greater than or equal to the source (signed comparison)."},
	{Name: "JL", Detail: "Jump if Less", Documentation: "Jump if the destination is strictly less than the source (signed comparison)."},
	{Name: "JLE", Detail: "Jump if Less or Equal", Documentation: "Jump if the destination is less than or equal to the source (signed comparison)."},
	{Name: "JMP", Detail: "Jump", Documentation: "Unconditional jump to a label."},
	{Name: "JNC", Detail: "Jump if No Carry", Documentation: "Jump if the carry flag is not set."},
	{Name: "JNE", Detail: "Jump if Not Equal", Documentation: "Jump if zero flag is not set."},
	{Name: "JNZ", Detail: "Jump if Not Zero", Documentation: "Jump if zero flag is not set."},
	{Name: "JZ", Detail: "Jump if Zero", Documentation: "Jump if zero flag is set."},
	{Name: "LEA", Detail: "Load Effective Address", Documentation: "Loads the effective address of the source operand into the destination."},
	{Name: "LOOP", Detail: "Loop", Documentation: "Decrements ECX and jumps if ECX is not zero."},
	{Name: "MOV", Detail: "Move", Documentation: "Moves data from source to destination."},
	{Name: "MOVSX", Detail: "Move with Sign Extension", Documentation: "Moves data with sign extension from source to destination."},
	{Name: "MOVZX", Detail: "Move with Zero Extension", Documentation: "Moves data with zero extension from source to destination."},
	{Name: "MUL", Detail: "Multiplication", Documentation: "Multiplies unsigned integers."},
	{Name: "NEG", Detail: "Negate", Documentation: "Negates the operand (two’s complement)."},
	{Name: "NOT", Detail: "Bitwise NOT", Documentation: "Inverts all the bits in the operand."},
	{Name: "OR", Detail: "Logical OR", Documentation: "Performs a bitwise OR operation between source and destination."},
	{Name: "POP", Detail: "Pop from Stack", Documentation: "Pops operand from the stack."},
	{Name: "POPFD", Detail: "Pop Flags", Documentation: "Pops the top of the stack into the EFLAGS register."},
	{Name: "PUSH", Detail: "Push onto Stack", Documentation: "Pushes operand onto the stack."},
	{Name: "PUSHFD", Detail: "Push Flags", Documentation: "Pushes the EFLAGS register onto the stack."},
	{Name: "RCL", Detail: "Rotate through Carry Left", Documentation: "Rotates bits to the left through the carry flag."},
	{Name: "RCR", Detail: "Rotate through Carry Right", Documentation: "Rotates bits to the right through the carry flag."},
	{Name: "RET", Detail: "Return", Documentation: "Returns from a procedure."},
	{Name: "ROL", Detail: "Rotate Left", Documentation: "Rotates bits to the left."},
	{Name: "ROR", Detail: "Rotate Right", Documentation: "Rotates bits to the right."},
	{Name: "SBB", Detail: "Subtract with Borrow", Documentation: "Subtracts source and the carry flag from the destination."},
	{Name: "SHL", Detail: "Shift Left", Documentation: "Shifts bits to the left."},
	{Name: "SHR", Detail: "Shift Right", Documentation: "Shifts bits to the right."},
	{Name: "SUB", Detail: "Subtraction", Documentation: "Subtracts source from destination."},
	{Name: "TEST", Detail: "Logical Compare", Documentation: "Performs a bitwise AND operation between two operands, updating flags but not storing the result."},
	{Name: "XCHG", Detail: "Exchange", Documentation: "Exchanges the values of the source and destination operands."},
	{Name: "XOR", Detail: "Logical Exclusive OR", Documentation: "Performs a bitwise XOR operation between source and destination."},
	{Name: "INCHAR", Detail: "Input Character", Documentation: "Reads a character from input."},
	{Name: "ININT", Detail: "Input Integer", Documentation: "Reads an integer from input."},
	{Name: "EXIT", Detail: "Exit Program", Documentation: "Terminates the program."},
	{Name: "OUTI", Detail: "Output Integer", Documentation: "Outputs an integer to the console."},
	{Name: "OUTU", Detail: "Output Unsigned Integer", Documentation: "Outputs an unsigned integer to the console."},
	{Name: "OUTSTR", Detail: "Output String", Documentation: "Outputs a string to the console."},
	{Name: "OUTCHAR", Detail: "Output Character", Documentation: "Outputs a character to the console."},
	{Name: "NEWLINE", Detail: "New Line", Documentation: "Prints a newline character."},
}

var Registers = []Entry{
	{Name: "EAX", Detail: "Accumulator Register", Documentation: "General-purpose accumulator register."},
	{Name: "EBX", Detail: "Base Register", Documentation: "General-purpose base register."},
	{Name: "ECX", Detail: "Counter Register", Documentation: "General-purpose counter register."},
	{Name: "EDX", Detail: "Data Register", Documentation: "General-purpose data register."},
	{Name: "ESI", Detail: "Source Index", Documentation: "Source index for string operations."},
	{Name: "EDI", Detail: "Destination Index", Documentation: "Destination index for string operations."},
	{Name: "EBP", Detail: "Base Pointer", Documentation: "Pointer to base of the stack."},
	{Name: "ESP", Detail: "Stack Pointer", Documentation: "Pointer to top of the stack."},
	{Name: "AX", Detail: "16-bit Accumulator", Documentation: "Lower 16 bits of EAX."},
	{Name: "BX", Detail: "16-bit Base Register", Documentation: "Lower 16 bits of EBX."},
	{Name: "CX", Detail: "16-bit Counter", Documentation: "Lower 16 bits of ECX."},
	{Name: "DX", Detail: "16-bit Data Register", Documentation: "Lower 16 bits of EDX."},
	{Name: "SI", Detail: "Source Index", Documentation: "16-bit version of ESI."},
	{Name: "DI", Detail: "Destination Index", Documentation: "16-bit version of EDI."},
	{Name: "BP", Detail: "Base Pointer", Documentation: "16-bit version of EBP."},
	{Name: "SP", Detail: "Stack Pointer", Documentation: "16-bit version of ESP."},
	{Name: "AL", Detail: "Lower 8 bits of EAX", Documentation: "8-bit version of EAX (low byte)."},
	{Name: "BL", Detail: "Lower 8 bits of EBX", Documentation: "8-bit version of EBX (low byte)."},
	{Name: "CL", Detail: "Lower 8 bits of ECX", Documentation: "8-bit version of ECX (low byte)."},
	{Name: "DL", Detail: "Lower 8 bits of EDX", Documentation: "8-bit version of EDX (low byte)."},
	{Name: "AH", Detail: "Higher 8 bits of EAX", Documentation: "8-bit version of EAX (high byte)."},
	{Name: "BH", Detail: "Higher 8 bits of EBX", Documentation: "8-bit version of EBX (high byte)."},
	{Name: "CH", Detail: "Higher 8 bits of ECX", Documentation: "8-bit version of ECX (high byte)."},
	{Name: "DH", Detail: "Higher 8 bits of EDX", Documentation: "8-bit version of EDX (high byte)."},
	{Name: "CS", Detail: "Code Segment", Documentation: "Code segment register."},
	{Name: "DS", Detail: "Data Segment", Documentation: "Data segment register."},
	{Name: "ES", Detail: "Extra Segment", Documentation: "Extra segment register."},
	{Name: "FS", Detail: "FS Segment", Documentation: "FS segment register."},
	{Name: "GS", Detail: "GS Segment", Documentation: "GS segment register."},
	{Name: "SS", Detail: "Stack Segment", Documentation: "Stack segment register."},
}

var Directives = []Entry{
	{Name: ".CODE", Detail: "Code segment directive", Documentation: "Specifies the beginning of a code segment."},
	{Name: ".DATA", Detail: "Data segment directive", Documentation: "Specifies the beginning of a data segment."},
	{Name: ".STACK", Detail: "Stack segment directive", Documentation: "Specifies the beginning of a stack segment."},
	{Name: "DB", Detail: "Define Byte", Documentation: "Defines one or more bytes."},
	{Name: "DW", Detail: "Define Word", Documentation: "Defines one or more words."},
	{Name: "DD", Detail: "Define Doubleword", Documentation: "Defines one or more doublewords."},
	{Name: "DQ", Detail: "Define Quadword", Documentation: "Defines one or more quadwords."},
	{Name: "ELSE", Detail: "Else directive", Documentation: "Specifies an alternate block of code for conditional assembly."},
	{Name: "ELSEIF", Detail: "Elseif directive", Documentation: "Specifies an alternate condition in conditional assembly."},
	{Name: "END", Detail: "End directive", Documentation: "Marks the end of a file."},
	{Name: "ENDIF", Detail: "Endif directive", Documentation: "Ends a conditional assembly block."},
	{Name: "ENDM", Detail: "End macro", Documentation: "Ends a macro definition."},
	{Name: "ENDP", Detail: "End procedure", Documentation: "Ends a procedure definition."},
	{Name: "ENDS", Detail: "End structure", Documentation: "Ends a structure definition."},
	{Name: "EQU", Detail: "Equate directive", Documentation: "Assigns a constant value to a symbol."},
	{Name: "FOR", Detail: "For loop", Documentation: "Starts a for loop in assembly."},
	{Name: "FORC", Detail: "For each character loop", Documentation: "Starts a loop iterating over characters."},
	{Name: "IF", Detail: "If directive", Documentation: "Begins a conditional assembly block."},
	{Name: "IFE", Detail: "If equal directive", Documentation: "Conditional assembly if equal."},
	{Name: "IFB", Detail: "If binary directive", Documentation: "Conditional assembly for binary values."},
	{Name: "IFNB", Detail: "If not binary directive", Documentation: "Conditional assembly for non-binary values."},
	{Name: "IFDIF", Detail: "If different directive", Documentation: "Conditional assembly if different."},
	{Name: "IFDIFI", Detail: "If difference immediate directive", Documentation: "Conditional assembly if immediate difference."},
	{Name: "IFIDN", Detail: "If identical directive", Documentation: "Conditional assembly if identical."},
	{Name: "IFIDNI", Detail: "If not identical directive", Documentation: "Conditional assembly if not identical."},
	{Name: "LOCAL", Detail: "Local directive", Documentation: "Declares a local variable or label."},
	{Name: "MACRO", Detail: "Macro definition", Documentation: "Starts a macro definition."},
	{Name: "PROC", Detail: "Procedure definition", Documentation: "Starts a procedure definition."},
	{Name: "STRUC", Detail: "Structure definition", Documentation: "Starts a structure definition."},
	{Name: "RECORD", Detail: "Record definition", Documentation: "Starts a record definition."},
	{Name: "REPEAT", Detail: "Repeat directive", Documentation: "Starts a repeat loop."},
	{Name: "INCLUDE", Detail: "Include directive", Documentation: "Includes another file."},
}

var Operators = []Entry{
	{Name: "SHL", Detail: "Shift left operator", Documentation: "Shifts bits to the left."},
	{Name: "SHR", Detail: "Shift right operator", Documentation: "Shifts bits to the right."},
	{Name: "PTR", Detail: "Pointer operator", Documentation: "Specifies a pointer type."},
	{Name: "TYPE", Detail: "Type operator", Documentation: "Specifies a type."},
	{Name: "SIZE", Detail: "Size operator", Documentation: "Returns the size of a data type or structure."},
	{Name: "SIZEOF", Detail: "Sizeof operator", Documentation: "Returns the size of a type or object."},
	{Name: "LENGTH", Detail: "Length operator", Documentation: "Returns the length of a data structure."},
	{Name: "LENGTHOF", Detail: "Lengthof operator", Documentation: "Returns the length of a type."},
	{Name: "WIDTH", Detail: "Width operator", Documentation: "Returns the width of a type."},
	{Name: "MASK", Detail: "Mask operator", Documentation: "Applies a bitmask."},
	{Name: "OFFSET", Detail: "Offset operator", Documentation: "Returns the offset of a member within a structure."},
	{Name: "DUP", Detail: "Duplicate operator", Documentation: "Duplicates a value or structure."},
}

var Types = []Entry{
	{Name: "BYTE", Detail: "8-bit data type", Documentation: "Represents an 8-bit value."},
	{Name: "WORD", Detail: "16-bit data type", Documentation: "Represents a 16-bit value."},
	{Name: "DWORD", Detail: "32-bit data type", Documentation: "Represents a 32-bit value."},
	{Name: "QWORD", Detail: "64-bit data type", Documentation: "Represents a 64-bit value."},
}
