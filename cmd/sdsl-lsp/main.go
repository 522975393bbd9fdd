// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"sdsl/internal/lsp"
)

const lsName = "sdsl"

var handler protocol.Handler

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	sdslHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:             sdslHandler.Initialize,
		Initialized:            sdslHandler.Initialized,
		Shutdown:               sdslHandler.Shutdown,
		SetTrace:               sdslHandler.SetTrace,
		TextDocumentDidOpen:    sdslHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   sdslHandler.TextDocumentDidClose,
		TextDocumentDidChange:  sdslHandler.TextDocumentDidChange,
		TextDocumentCompletion: sdslHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting SDSL LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting SDSL LSP server:", err)
		os.Exit(1)
	}
}
