package configs

import (
	"time"

	"nishan.dev/pkg/textutil"

	"github.com/gofiber/template/html/v2"
)

// SetupViews builds the template engine used by the Fiber app.
// Templates live under views/ and share a small set of helpers.
func SetupViews() *html.Engine {
	engine := html.New("./views", ".html")

	engine.AddFunc("striphtml", textutil.StripHTML)
	engine.AddFunc("firsttag", textutil.FirstTag)
	engine.AddFunc("splitlist", textutil.SplitList)
	engine.AddFunc("fmtdate", func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("Jan 2, 2006")
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format("Jan 2, 2006")
		default:
			return ""
		}
	})
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	if GetString("APP_ENV", "development") != "production" {
		engine.Reload(true)
	}

	return engine
}
