package api

import (
	"embed"
	"net/http"

	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/util"
)

//go:embed docs/index.html docs/openapi.json
var docsFS embed.FS

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	s.serveDocsAsset(w, "docs/index.html", config.CTypeHTML)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	s.serveDocsAsset(w, "docs/openapi.json", config.CTypeJSON)
}

// serveDocsAsset writes an embedded documentation asset with a content-hash
// ETag. The assets never change at runtime, so hashes are computed once and
// cached.
func (s *Server) serveDocsAsset(w http.ResponseWriter, name, contentType string) {
	data, err := docsFS.ReadFile(name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	etag, ok := s.etags.Get(name)
	if !ok {
		etag = util.ContentHash(data)
		s.etags.Set(name, etag)
	}

	w.Header().Set(config.HCType, contentType)
	w.Header().Set(config.HETag, etag)
	w.Header().Set(config.HCacheControl, "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
