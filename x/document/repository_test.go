package document

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/hashsign/hashsign/core"
	"github.com/hashsign/hashsign/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	repo = NewRepository(db)

	m.Run()

	log.Println("Test End")
}

func TestStoreLifecycle(t *testing.T) {

	// reading an unregistered account must be distinguishable from transport failure
	_, err := repo.GetStore(ctx, "alice")
	assert.ErrorAs(t, err, &core.ErrorNotRegistered{})

	store, err := repo.CreateStore(ctx, "alice")
	if assert.NoError(t, err) {
		assert.Equal(t, uint(0), store.DocumentCounter)
	}

	// registration is exactly-once, a second store is never created
	_, err = repo.CreateStore(ctx, "alice")
	assert.ErrorAs(t, err, &core.ErrorAlreadyRegistered{})

	store, err = repo.GetStore(ctx, "alice")
	if assert.NoError(t, err) {
		assert.Equal(t, uint(0), store.DocumentCounter)
		assert.Len(t, store.Documents, 0)
	}
}

func TestCreateDocument(t *testing.T) {

	_, err := repo.CreateStore(ctx, "bob")
	assert.NoError(t, err)

	// ids are dense, start at 1 and match the counter at assignment time
	first, err := repo.CreateDocument(ctx, "bob", "QmFirst", []string{"alice", "bob"})
	if assert.NoError(t, err) {
		assert.Equal(t, uint(1), first.ID)
		assert.Equal(t, "bob", first.Creator)
		assert.False(t, first.IsCompleted())
		assert.Len(t, first.Signatures, 0)
	}

	second, err := repo.CreateDocument(ctx, "bob", "QmSecond", []string{"carol"})
	if assert.NoError(t, err) {
		assert.Equal(t, uint(2), second.ID)
	}

	store, err := repo.GetStore(ctx, "bob")
	if assert.NoError(t, err) {
		assert.Equal(t, uint(2), store.DocumentCounter)
		assert.Len(t, store.Documents, 2)
		assert.Less(t, store.Documents[0].ID, store.Documents[1].ID)
	}

	// creating against an unregistered store must not allocate anything
	_, err = repo.CreateDocument(ctx, "nobody", "QmOrphan", []string{"alice"})
	assert.ErrorAs(t, err, &core.ErrorNotRegistered{})
}

func TestSignDocument(t *testing.T) {

	_, err := repo.CreateStore(ctx, "carol")
	assert.NoError(t, err)

	created, err := repo.CreateDocument(ctx, "carol", "QmAgreement", []string{"alice", "bob"})
	assert.NoError(t, err)

	// scenario: alice signs, document is partially signed
	signed, err := repo.AppendSignature(ctx, "carol", created.ID, "alice")
	if assert.NoError(t, err) {
		assert.Len(t, signed.Signatures, 1)
		assert.Equal(t, "alice", signed.Signatures[0].Signer)
		assert.False(t, signed.IsCompleted())
		assert.Equal(t, core.StatePartiallySigned, signed.State())
	}

	// a signer may sign at most once
	_, err = repo.AppendSignature(ctx, "carol", created.ID, "alice")
	assert.ErrorAs(t, err, &core.ErrorAlreadySigned{})

	after, err := repo.GetDocument(ctx, "carol", created.ID)
	if assert.NoError(t, err) {
		assert.Len(t, after.Signatures, 1)
	}

	// a non-signer is rejected and state is unchanged
	_, err = repo.AppendSignature(ctx, "carol", created.ID, "mallory")
	assert.ErrorAs(t, err, &core.ErrorNotASigner{})

	after, err = repo.GetDocument(ctx, "carol", created.ID)
	if assert.NoError(t, err) {
		assert.Len(t, after.Signatures, 1)
	}

	// bob completes the document
	signed, err = repo.AppendSignature(ctx, "carol", created.ID, "bob")
	if assert.NoError(t, err) {
		assert.Len(t, signed.Signatures, 2)
		assert.True(t, signed.IsCompleted())
		assert.Equal(t, core.StateCompleted, signed.State())
	}

	// completion is terminal
	_, err = repo.AppendSignature(ctx, "carol", created.ID, "alice")
	assert.ErrorAs(t, err, &core.ErrorAlreadyCompleted{})

	after, err = repo.GetDocument(ctx, "carol", created.ID)
	if assert.NoError(t, err) {
		assert.Len(t, after.Signatures, 2)
		assert.True(t, after.IsCompleted())
	}

	// unknown document id
	_, err = repo.AppendSignature(ctx, "carol", 999, "alice")
	assert.ErrorAs(t, err, &core.ErrorDocumentNotFound{})
}

func TestSignatureOrdering(t *testing.T) {

	_, err := repo.CreateStore(ctx, "dave")
	assert.NoError(t, err)

	created, err := repo.CreateDocument(ctx, "dave", "QmOrdered", []string{"x", "y", "z"})
	assert.NoError(t, err)

	for _, signer := range []string{"z", "x", "y"} {
		_, err := repo.AppendSignature(ctx, "dave", created.ID, signer)
		assert.NoError(t, err)
	}

	// signature order is the order of accepted sign transitions
	after, err := repo.GetDocument(ctx, "dave", created.ID)
	if assert.NoError(t, err) {
		assert.Len(t, after.Signatures, 3)
		assert.Equal(t, "z", after.Signatures[0].Signer)
		assert.Equal(t, "x", after.Signatures[1].Signer)
		assert.Equal(t, "y", after.Signatures[2].Signer)
		assert.True(t, after.IsCompleted())
	}
}
