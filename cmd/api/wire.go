//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hashsign/hashsign/core"
	"github.com/hashsign/hashsign/x/document"
	"github.com/hashsign/hashsign/x/registrar"
	"github.com/hashsign/hashsign/x/store"
	"github.com/hashsign/hashsign/x/workflow"
)

var documentServiceProvider = wire.NewSet(document.NewService, document.NewRepository)
var workflowHandlerProvider = wire.NewSet(workflow.NewHandler, workflow.NewService, store.NewService, registrar.NewService)

func SetupDocumentService(db *gorm.DB) core.DocumentService {
	wire.Build(documentServiceProvider)
	return nil
}

func SetupWorkflowHandler(blob core.BlobClient, ledger core.Ledger, mc *memcache.Client, rdb *redis.Client) workflow.Handler {
	wire.Build(workflowHandlerProvider)
	return nil
}
