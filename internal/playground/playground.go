package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/history"
	"github.com/arnavsurve/fidel/internal/samples"
)

const samplesPrefix = "/samples/"

type RunRequest struct {
	Source string   `json:"source"`
	Input  []string `json:"input"`
}

type RunResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
	Digest string `json:"digest"`
}

type SampleSource struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type Options struct {
	// Timeout bounds a single run; zero means no limit.
	Timeout time.Duration
	// MaxBodySize caps request bodies in bytes.
	MaxBodySize int
	// MaxOutput caps a run's output, and the length of any string it
	// builds, in bytes; zero means no limit.
	MaxOutput int
	// Interp is applied to every run before the per-request options.
	Interp []interp.Option
}

// Server serves the sample catalog and runs posted programs, each on a
// fresh interpreter.
type Server struct {
	catalog *samples.Catalog
	store   *history.Store // nil disables recording
	opts    Options
	log     *slog.Logger
	srv     *fasthttp.Server
}

func New(catalog *samples.Catalog, store *history.Store, opts Options, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{catalog: catalog, store: store, opts: opts, log: log}
	s.srv = &fasthttp.Server{
		Handler:            s.Handle,
		Name:               "fidel",
		MaxRequestBodySize: opts.MaxBodySize,
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       15 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("playground listening", "addr", addr)
	return s.srv.ListenAndServe(addr)
}

func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

// Handle routes a request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/samples":
		if !ctx.IsGet() {
			ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
			return
		}
		s.handleList(ctx)
	case strings.HasPrefix(path, samplesPrefix):
		if !ctx.IsGet() {
			ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
			return
		}
		s.handleSample(ctx, strings.TrimPrefix(path, samplesPrefix))
	case path == "/run":
		if !ctx.IsPost() {
			ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
			return
		}
		s.handleRun(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (s *Server) handleList(ctx *fasthttp.RequestCtx) {
	list, err := s.catalog.List()
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, list)
}

func (s *Server) handleSample(ctx *fasthttp.RequestCtx, name string) {
	sample, src, err := s.catalog.Read(name)
	if err != nil {
		if errors.Is(err, samples.ErrNotFound) {
			ctx.Error(err.Error(), fasthttp.StatusNotFound)
			return
		}
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, SampleSource{Name: sample.Name, Source: src})
}

func (s *Server) handleRun(ctx *fasthttp.RequestCtx) {
	var req RunRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("invalid request body: "+err.Error(), fasthttp.StatusBadRequest)
		return
	}

	resp := s.Run(context.Background(), req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// Run executes one program with captured output. Program errors are reported
// in the response, not as a failed request.
func (s *Server) Run(parent context.Context, req RunRequest) RunResponse {
	runCtx := parent
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(parent, s.opts.Timeout)
		defer cancel()
	}

	var out bytes.Buffer
	w := &limitWriter{buf: &out, max: s.opts.MaxOutput}
	opts := append([]interp.Option{}, s.opts.Interp...)
	opts = append(opts,
		interp.WithOutput(w),
		interp.WithPrompter(interp.NewLines(req.Input, w)),
		interp.WithContext(runCtx),
		interp.WithMaxStringLen(s.opts.MaxOutput),
	)

	start := time.Now()
	err := compiler.Run(req.Source, opts...)
	elapsed := time.Since(start)

	resp := RunResponse{Output: out.String(), Digest: history.Digest(req.Source)}
	if err != nil {
		resp.Error = err.Error()
	}

	if s.store != nil {
		run := &history.Run{
			Origin:     "playground",
			Digest:     resp.Digest,
			Source:     req.Source,
			Output:     resp.Output,
			Error:      resp.Error,
			DurationMs: elapsed.Milliseconds(),
		}
		if rerr := s.store.Record(context.Background(), run); rerr != nil {
			s.log.Error("recording run failed", "err", rerr)
		}
	}
	return resp
}

// limitWriter refuses writes that would grow buf past max bytes.
type limitWriter struct {
	buf *bytes.Buffer
	max int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.max > 0 && w.buf.Len()+len(p) > w.max {
		return 0, fmt.Errorf("output limit of %d bytes reached", w.max)
	}
	return w.buf.Write(p)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(buf)
}
