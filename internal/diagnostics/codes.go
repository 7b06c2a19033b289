package diagnostics

// Diagnostic codes for the microcode analyser
const (
	// Semantic errors (A prefix)
	ErrUndefinedIdentifier    = "A0001"
	ErrWrongIdentifierKind    = "A0002"
	ErrAlreadyDefined         = "A0003"
	ErrMissingParameter       = "A0004"
	ErrEnumMemberCount        = "A0005"
	ErrDuplicateEnumMember    = "A0006"
	ErrOpcodeTooManyBits      = "A0007"
	ErrOpcodeTooFewBits       = "A0008"
	ErrDuplicateParameterName = "A0009"
	ErrBusWrittenTwice        = "A0010"
	ErrBusReadBeforeWrite     = "A0011"
	ErrSubstitutionUndefined  = "A0012"
	ErrSubstitutionKind       = "A0013"
	ErrDuplicateHeader        = "A0014"
	ErrTooManyLines           = "A0015"
	ErrBitGroupArgumentCount  = "A0016"
	ErrUnresolvedArgument     = "A0017"
	ErrUndefinedSubstitution  = "A0018"
	ErrOpcodeSlotUsed         = "A0019"
	ErrWidthTooLarge          = "A0020"
	ErrOpcodeBeforeHeader     = "A0021"
	ErrBitGroupArgumentType   = "A0022"

	// Warnings (W prefix)
	WarnUnorderable = "W0001"
)
