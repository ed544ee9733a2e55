package core

import (
	"time"

	"github.com/lib/pq"
)

// DocumentStore is the authoritative per-account document collection.
// DocumentCounter equals the number of documents ever created for the
// account; document ids are dense, start at 1 and are never reused.
type DocumentStore struct {
	Owner           string     `json:"owner" gorm:"primaryKey;type:text"`
	DocumentCounter uint       `json:"documentCounter" gorm:"not null;default:0"`
	Documents       []Document `json:"documents" gorm:"-"`
	CDate           time.Time  `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Document is an immutable content reference plus its signature-collection
// state. Signers is fixed at creation; Signatures is append-only and filled
// by the repository, not by gorm.
type Document struct {
	ID         uint           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Owner      string         `json:"owner" gorm:"primaryKey;type:text"`
	Creator    string         `json:"creator" gorm:"type:text;not null"`
	ContentID  string         `json:"contentId" gorm:"type:text;not null"`
	Signers    pq.StringArray `json:"signers" gorm:"type:text[];not null"`
	Signatures []Signature    `json:"signatures" gorm:"-"`
	CDate      time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Signature is one signer's approval of a document. At most one per signer
// per document; the unique index backs up the engine's own check.
type Signature struct {
	ID         uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	Owner      string    `json:"-" gorm:"type:text;uniqueIndex:uniq_signature"`
	DocumentID uint      `json:"-" gorm:"uniqueIndex:uniq_signature"`
	Signer     string    `json:"signer" gorm:"type:text;uniqueIndex:uniq_signature"`
	CDate      time.Time `json:"timestamp" gorm:"->;<-:create;autoCreateTime"`
}

// IsCompleted reports whether every required signer has signed. Derived
// from the signature set on every call, never stored.
func (d Document) IsCompleted() bool {
	return len(d.Signatures) == len(d.Signers)
}

// HasSigned reports whether the given identity already holds a signature.
func (d Document) HasSigned(signer string) bool {
	for _, s := range d.Signatures {
		if s.Signer == signer {
			return true
		}
	}
	return false
}

// IsSigner reports whether the given identity is a required signer.
func (d Document) IsSigner(identity string) bool {
	for _, s := range d.Signers {
		if s == identity {
			return true
		}
	}
	return false
}

// State returns the lifecycle state derived from the signature count.
func (d Document) State() string {
	switch {
	case len(d.Signatures) == 0:
		return StateCreated
	case d.IsCompleted():
		return StateCompleted
	default:
		return StatePartiallySigned
	}
}

// Event is a document lifecycle event published per account.
type Event struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	Action     string    `json:"action"` // created / signed / completed
	DocumentID uint      `json:"documentId"`
	Signer     string    `json:"signer,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
