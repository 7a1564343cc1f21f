// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lumen/internal/lsp"
)

const lsName = "lumen"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	// Verbosity 1 logs info and above to stderr; stdout carries the protocol.
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("lumen.lsp")

	lumenHandler := lsp.NewLumenHandler()

	handler = protocol.Handler{
		Initialize:                     lumenHandler.Initialize,
		Initialized:                    lumenHandler.Initialized,
		Shutdown:                       lumenHandler.Shutdown,
		SetTrace:                       lumenHandler.SetTrace,
		TextDocumentDidOpen:            lumenHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           lumenHandler.TextDocumentDidClose,
		TextDocumentDidChange:          lumenHandler.TextDocumentDidChange,
		TextDocumentCompletion:         lumenHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: lumenHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
