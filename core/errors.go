package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorNotRegistered struct {
}

func (e ErrorNotRegistered) Error() string {
	return "Account Not Registered"
}

func NewErrorNotRegistered() ErrorNotRegistered {
	return ErrorNotRegistered{}
}

type ErrorAlreadyRegistered struct {
}

func (e ErrorAlreadyRegistered) Error() string {
	return "Account Already Registered"
}

func NewErrorAlreadyRegistered() ErrorAlreadyRegistered {
	return ErrorAlreadyRegistered{}
}

type ErrorDocumentNotFound struct {
}

func (e ErrorDocumentNotFound) Error() string {
	return "Document Not Found"
}

func NewErrorDocumentNotFound() ErrorDocumentNotFound {
	return ErrorDocumentNotFound{}
}

type ErrorNotASigner struct {
}

func (e ErrorNotASigner) Error() string {
	return "Not A Signer"
}

func NewErrorNotASigner() ErrorNotASigner {
	return ErrorNotASigner{}
}

type ErrorAlreadySigned struct {
}

func (e ErrorAlreadySigned) Error() string {
	return "Already Signed"
}

func NewErrorAlreadySigned() ErrorAlreadySigned {
	return ErrorAlreadySigned{}
}

type ErrorAlreadyCompleted struct {
}

func (e ErrorAlreadyCompleted) Error() string {
	return "Already Completed"
}

func NewErrorAlreadyCompleted() ErrorAlreadyCompleted {
	return ErrorAlreadyCompleted{}
}

type ErrorSignerListEmpty struct {
}

func (e ErrorSignerListEmpty) Error() string {
	return "Signer List Empty"
}

func NewErrorSignerListEmpty() ErrorSignerListEmpty {
	return ErrorSignerListEmpty{}
}

type ErrorDuplicateSigner struct {
	Signer string
}

func (e ErrorDuplicateSigner) Error() string {
	return fmt.Sprintf("Duplicate Signer: %s", e.Signer)
}

func NewErrorDuplicateSigner(signer string) ErrorDuplicateSigner {
	return ErrorDuplicateSigner{Signer: signer}
}

type ErrorPayloadTooLarge struct {
	Size  int64
	Limit int64
}

func (e ErrorPayloadTooLarge) Error() string {
	return fmt.Sprintf("Payload Too Large: %d bytes (limit %d)", e.Size, e.Limit)
}

func NewErrorPayloadTooLarge(size, limit int64) ErrorPayloadTooLarge {
	return ErrorPayloadTooLarge{Size: size, Limit: limit}
}

type ErrorUploadFailed struct {
	Cause error
}

func (e ErrorUploadFailed) Error() string {
	return fmt.Sprintf("Upload Failed: %v", e.Cause)
}

func (e ErrorUploadFailed) Unwrap() error {
	return e.Cause
}

func NewErrorUploadFailed(cause error) ErrorUploadFailed {
	return ErrorUploadFailed{Cause: cause}
}

type ErrorFetchFailed struct {
	Cause error
}

func (e ErrorFetchFailed) Error() string {
	return fmt.Sprintf("Fetch Failed: %v", e.Cause)
}

func (e ErrorFetchFailed) Unwrap() error {
	return e.Cause
}

func NewErrorFetchFailed(cause error) ErrorFetchFailed {
	return ErrorFetchFailed{Cause: cause}
}

type ErrorTransport struct {
	Cause error
}

func (e ErrorTransport) Error() string {
	return fmt.Sprintf("Transport Error: %v", e.Cause)
}

func (e ErrorTransport) Unwrap() error {
	return e.Cause
}

func NewErrorTransport(cause error) ErrorTransport {
	return ErrorTransport{Cause: cause}
}

type ErrorTransactionRejected struct {
	Reason string
}

func (e ErrorTransactionRejected) Error() string {
	return fmt.Sprintf("Transaction Rejected: %s", e.Reason)
}

func NewErrorTransactionRejected(reason string) ErrorTransactionRejected {
	return ErrorTransactionRejected{Reason: reason}
}
