package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arnauddri/csscompare/internal/cssparse"
	"github.com/arnauddri/csscompare/internal/resolve"
	"github.com/arnauddri/csscompare/internal/scanner"
)

// FileImporter implements Importer against the local filesystem, resolving
// a `@import` URI relative to the directory of the stylesheet that
// referenced it. Remote (http/https) URIs are reported as not found rather
// than fetched — URI extraction is in scope, network retrieval is not.
type FileImporter struct{}

func (FileImporter) Import(base, uri string) ([]resolve.Node, string, bool, error) {
	if strings.Contains(uri, "://") {
		return nil, "", false, nil
	}
	path := uri
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, uri)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", false, nil
		}
		return nil, "", false, err
	}
	ss, err := cssparse.ParseStyleSheet(scanner.New(strings.NewReader(string(data))))
	if err != nil {
		return nil, "", false, err
	}
	nodes, err := resolve.Resolve(ss)
	if err != nil {
		return nil, "", false, err
	}
	return nodes, filepath.Dir(path), true, nil
}
