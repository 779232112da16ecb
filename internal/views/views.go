package views

import (
	"embed"
	"io/fs"
	"net/http"
	"slices"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// NewEngine returns the HTML view engine over the embedded templates.
// Views are addressed by path without extension, e.g. "movie/list".
func NewEngine() *html.Engine {
	root, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFunc("hasID", func(ids []uint, id uint) bool {
		return slices.Contains(ids, id)
	})
	return engine
}
