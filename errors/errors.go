package errors

import (
	"encoding/json"
	"errors"
)

// ErrorCode represents a specific error code.
type ErrorCode string

// Error codes shared by every package that rejects a request.
const (
	ErrorCodeUnknown                  ErrorCode = "0"
	ErrorCodeInvalidRequest           ErrorCode = "INVALID_REQUEST"
	ErrorCodeDecoding                 ErrorCode = "DECODING_ERROR"
	ErrorCodeParse                    ErrorCode = "PARSE_ERROR"
	ErrorCodeVerifyingMessageMismatch ErrorCode = "VERIFYING_MESSAGE_MISMATCH"
	ErrorCodeDuplicateExternalID      ErrorCode = "DUPLICATE_EXTERNAL_ID"
	ErrorCodeUnknownVerifierKey       ErrorCode = "UNKNOWN_VERIFIER_KEY"
	ErrorCodeDuplicatedVerification   ErrorCode = "DUPLICATED_VERIFICATION"
	ErrorCodeInvalidSignature         ErrorCode = "INVALID_SIGNATURE"
	ErrorCodeNoVerifier               ErrorCode = "NO_VERIFIER"
	ErrorCodeBelowThreshold           ErrorCode = "BELOW_THRESHOLD"
	ErrorCodeUnauthorized             ErrorCode = "UNAUTHORIZED"
	ErrorCodeInvalidPubKey            ErrorCode = "INVALID_PUB_KEY"
	ErrorCodeSignatureMismatch        ErrorCode = "SIGNATURE_MISMATCH"
	ErrorCodeBech32PrefixMismatch     ErrorCode = "BECH32_PREFIX_MISMATCH"
	ErrorCodeSignatureAlreadyUsed     ErrorCode = "SIGNATURE_ALREADY_USED"
	ErrorCodeRecordNotFound           ErrorCode = "RECORD_NOT_FOUND"
	ErrorCodePrimaryRemovalNotAllowed ErrorCode = "PRIMARY_REMOVAL_NOT_ALLOWED"
	ErrorCodeNameTaken                ErrorCode = "NAME_TAKEN"
)

// Coded is implemented by errors that know their own ErrorCode.
type Coded interface {
	error
	Code() ErrorCode
}

// CodedError is a sentinel error carrying a code.
type CodedError struct {
	code    ErrorCode
	message string
}

// New creates a sentinel error with the given code.
func New(code ErrorCode, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func (e *CodedError) Error() string {
	return e.message
}

// Code implements Coded.
func (e *CodedError) Code() ErrorCode {
	return e.code
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	errorJSON, _ := json.Marshal(e)
	return string(errorJSON)
}

// CodeOf returns the code of the first Coded error in err's chain.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var coded Coded
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ErrorCodeUnknown
}

// CreateErrorResponseFromError creates an ErrorResponse from a generic error.
func CreateErrorResponseFromError(err error) error {
	if err == nil {
		return nil
	}
	if errResp, ok := err.(*ErrorResponse); ok {
		return errResp
	}
	return &ErrorResponse{
		Code:    CodeOf(err),
		Details: err.Error(),
	}
}
