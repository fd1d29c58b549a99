package chess

import "errors"

// Error kinds, per spec.md §7. Parsers and validators wrap one of these sentinels so callers
// can distinguish the failure class with errors.Is instead of matching message strings.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidString    = errors.New("invalid string")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidPromotion = errors.New("invalid promotion")
	ErrTargetIsNone     = errors.New("target square is empty")
	ErrOther            = errors.New("invalid position")
)
