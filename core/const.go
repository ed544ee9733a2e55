package core

// Resource types readable through the ledger contract.
const (
	ResourceDocumentStore = "document_store"
)

// Transition function ids submittable through the ledger contract.
// Arguments are positional:
//
//	initialize_store()
//	create_document(contentID string, signers []string)
//	sign_document(documentID uint, signer string)
const (
	FnInitializeStore = "initialize_store"
	FnCreateDocument  = "create_document"
	FnSignDocument    = "sign_document"
)

// MaxUploadBytes is the upload size policy. Payloads above this are rejected
// before any network call. (25 MiB)
const MaxUploadBytes = 25 * 1024 * 1024

// Document lifecycle states.
const (
	StateCreated         = "created"
	StatePartiallySigned = "partially_signed"
	StateCompleted       = "completed"
)

// Lifecycle event actions published per account.
const (
	EventDocumentCreated   = "created"
	EventDocumentSigned    = "signed"
	EventDocumentCompleted = "completed"
)
