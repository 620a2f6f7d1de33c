package handlers

import (
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/douze-points/internal/logging"
	"github.com/aaronzipp/douze-points/internal/sse"
	"github.com/aaronzipp/douze-points/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	Store        store.Store
	Hub          *sse.Hub
	TemplatePath string
	StaticDir    string
	PublicURL    string
	CORSOrigins  []string

	publishMu sync.Mutex
	pending   sync.WaitGroup
}

func logger() *logrus.Entry {
	return logging.For("handlers")
}

// HandleIndex sends the browser to the client app
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusSeeOther)
}
