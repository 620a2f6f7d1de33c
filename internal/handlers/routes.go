package handlers

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aaronzipp/douze-points/internal/docs"
)

// Routes builds the HTTP handler for the whole API
func (ctx *Context) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", ctx.HandleIndex)
	mux.HandleFunc("GET /game", ctx.HandleGetGame)
	mux.HandleFunc("POST /game", ctx.HandlePostGame)
	mux.HandleFunc("POST /reset", ctx.HandleReset)
	mux.HandleFunc("POST /vote", ctx.HandleVote)
	mux.HandleFunc("GET /participants/{name}", ctx.HandleGetParticipant)
	mux.HandleFunc("GET /standings", ctx.HandleStandings)
	mux.HandleFunc("GET /events", ctx.HandleSSE)
	mux.HandleFunc("GET /ws", ctx.HandleWS)
	mux.HandleFunc("GET /qr", ctx.HandleQR)

	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(ctx.StaticDir))))

	return ctx.withRequestLog(ctx.withCORS(mux))
}
