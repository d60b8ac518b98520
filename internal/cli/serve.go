package cli

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
	"github.com/fstkit/fstkit/pkg/fst/transduce"
	"github.com/fstkit/fstkit/pkg/io"
	"github.com/fstkit/fstkit/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
}

// newServeCmd creates the serve command, which exposes a single graph file
// over HTTP.
//
// Routes:
//   - GET  /graph      the graph in textual format
//   - GET  /dot        the graph as Graphviz DOT
//   - GET  /svg        the graph rendered to SVG
//   - POST /transduce  run an input through the graph
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Expose a graph over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := io.Import(args[0])
			if err != nil {
				return err
			}
			logger.Infof("Serving %s on %s", f.Label(), opts.addr)

			srv := &http.Server{
				Addr:              opts.addr,
				Handler:           newServeHandler(f),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				srv.Close()
			}()
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

// transduceRequest is the POST /transduce request body.
type transduceRequest struct {
	Input []string `json:"input"`
	Fast  bool     `json:"fast,omitempty"`
}

// transduceResponse is the POST /transduce response body.
type transduceResponse struct {
	Output []string `json:"output,omitempty"`
	Error  string   `json:"error,omitempty"`
	Code   string   `json:"code,omitempty"`
}

// newServeHandler builds the HTTP routes for a graph.
func newServeHandler(f *fst.FST) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/graph", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := io.WriteText(f, w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	r.Get("/dot", func(w http.ResponseWriter, req *http.Request) {
		dot, err := render.ToDOT(f)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.Write([]byte(dot))
	})

	r.Get("/svg", func(w http.ResponseWriter, req *http.Request) {
		dot, err := render.ToDOT(f)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		svg, err := render.RenderSVG(req.Context(), dot)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	r.Post("/transduce", func(w http.ResponseWriter, req *http.Request) {
		var body transduceRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, transduceResponse{Error: "invalid request body"})
			return
		}

		var output []string
		var err error
		if body.Fast {
			output, err = transduce.Fast(f, body.Input)
		} else {
			output, err = transduce.General(f, body.Input)
		}
		if err != nil {
			status := http.StatusInternalServerError
			if errors.IsSoft(err) {
				status = http.StatusUnprocessableEntity
			}
			writeJSON(w, status, transduceResponse{
				Error: errors.UserMessage(err),
				Code:  string(errors.GetCode(err)),
			})
			return
		}
		writeJSON(w, http.StatusOK, transduceResponse{Output: output})
	})

	return r
}

// requestID tags every request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimSpace(req.Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
