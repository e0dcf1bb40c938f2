package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrListingParse ErrorType = iota
	ErrPathResolve
	ErrCoreInfo
	ErrSignature
	ErrFileOp
	ErrInvalidConfig
	ErrEmptyList
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrListingParse:
		return "ListingParse"
	case ErrPathResolve:
		return "PathResolve"
	case ErrCoreInfo:
		return "CoreInfo"
	case ErrSignature:
		return "Signature"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrEmptyList:
		return "EmptyList"
	default:
		return "Unknown"
	}
}

// CoreUpdaterError represents an error while building a core updater list
type CoreUpdaterError struct {
	Type ErrorType
	Core string
	Err  error
}

// Error implements the error interface
func (e *CoreUpdaterError) Error() string {
	if e.Core != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Core, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *CoreUpdaterError) Unwrap() error {
	return e.Err
}
