package ledger

import (
	"errors"

	"github.com/hashsign/hashsign/core"
)

// Wire error codes, stable across the ledger HTTP boundary. Every typed
// rejection gets its own code so a remote caller decodes the same error an
// embedded caller would see.
const (
	codeNotFound          = "not_found"
	codeNotRegistered     = "not_registered"
	codeAlreadyRegistered = "already_registered"
	codeDocumentNotFound  = "document_not_found"
	codeNotASigner        = "not_a_signer"
	codeAlreadySigned     = "already_signed"
	codeAlreadyCompleted  = "already_completed"
	codeSignerListEmpty   = "signer_list_empty"
	codeDuplicateSigner   = "duplicate_signer"
	codeRejected          = "rejected"
)

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Signer  string `json:"signer,omitempty"`
}

func errorToCode(err error) string {
	switch {
	case errors.As(err, &core.ErrorNotRegistered{}):
		return codeNotRegistered
	case errors.As(err, &core.ErrorNotFound{}):
		return codeNotFound
	case errors.As(err, &core.ErrorAlreadyRegistered{}):
		return codeAlreadyRegistered
	case errors.As(err, &core.ErrorDocumentNotFound{}):
		return codeDocumentNotFound
	case errors.As(err, &core.ErrorNotASigner{}):
		return codeNotASigner
	case errors.As(err, &core.ErrorAlreadySigned{}):
		return codeAlreadySigned
	case errors.As(err, &core.ErrorAlreadyCompleted{}):
		return codeAlreadyCompleted
	case errors.As(err, &core.ErrorSignerListEmpty{}):
		return codeSignerListEmpty
	case errors.As(err, &core.ErrorDuplicateSigner{}):
		return codeDuplicateSigner
	default:
		return codeRejected
	}
}

func toWireError(err error) wireError {
	w := wireError{Code: errorToCode(err), Message: err.Error()}

	var duplicate core.ErrorDuplicateSigner
	if errors.As(err, &duplicate) {
		w.Signer = duplicate.Signer
	}

	return w
}

func fromWireError(w wireError) error {
	switch w.Code {
	case codeNotFound:
		return core.NewErrorNotFound()
	case codeNotRegistered:
		return core.NewErrorNotRegistered()
	case codeAlreadyRegistered:
		return core.NewErrorAlreadyRegistered()
	case codeDocumentNotFound:
		return core.NewErrorDocumentNotFound()
	case codeNotASigner:
		return core.NewErrorNotASigner()
	case codeAlreadySigned:
		return core.NewErrorAlreadySigned()
	case codeAlreadyCompleted:
		return core.NewErrorAlreadyCompleted()
	case codeSignerListEmpty:
		return core.NewErrorSignerListEmpty()
	case codeDuplicateSigner:
		return core.NewErrorDuplicateSigner(w.Signer)
	default:
		return core.NewErrorTransactionRejected(w.Message)
	}
}
