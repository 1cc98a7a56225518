package handler

import (
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"sebit-engine/internal/bridge"
	"sebit-engine/internal/config"
	"sebit-engine/internal/model"
)

// Handler routes model, auto-forward, health, and admin endpoints.
type Handler struct {
	cfg    config.Config
	table  *bridge.Table
	client *bridge.Client
	routes map[string]runFunc
}

func New(cfg config.Config) (*Handler, error) {
	table := bridge.DefaultTable()
	if cfg.SummaryMappingFile != "" {
		if err := table.LoadOverrides(cfg.SummaryMappingFile); err != nil {
			return nil, err
		}
	}
	h := &Handler{
		cfg:    cfg,
		table:  table,
		client: bridge.NewClient(cfg.SummaryBaseURL, cfg.SummaryInternalToken),
	}
	h.routes = modelRoutes()
	return h, nil
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch {
	case path == "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/admin/token":
		if !requirePost(ctx) {
			break
		}
		h.adminToken(ctx)
	case strings.HasPrefix(path, "/auto/"):
		if !requirePost(ctx) {
			break
		}
		h.runAndForward(ctx, strings.TrimPrefix(path, "/auto/"))
	default:
		if !requirePost(ctx) {
			break
		}
		h.runDirect(ctx, strings.TrimPrefix(path, "/"))
	}

	log.Debug().
		Str("method", string(ctx.Method())).
		Str("path", path).
		Int("status", ctx.Response.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request handled")
}

func (h *Handler) runDirect(ctx *fasthttp.RequestCtx, endpoint string) {
	run, ok := h.routes[endpoint]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown model endpoint: "+endpoint)
		return
	}
	out, err := run(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

// bridgeFailure carries the transport error together with the already
// computed model output, which a forwarding failure never invalidates.
type bridgeFailure struct {
	Status      int            `json:"status"`
	Message     string         `json:"message"`
	ModelOutput map[string]any `json:"model_output"`
}

func (h *Handler) runAndForward(ctx *fasthttp.RequestCtx, endpoint string) {
	run, ok := h.routes[endpoint]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown model endpoint: "+endpoint)
		return
	}
	out, err := run(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	output, err := bridge.AsMapping(out)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	entry, err := h.table.MapOutput(endpoint, output)
	if err != nil {
		var unknown *bridge.UnknownEndpointError
		if errors.As(err, &unknown) {
			writeError(ctx, fasthttp.StatusNotFound, err.Error())
		} else {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		}
		return
	}

	calculationID := uuid.New().String()
	summary, err := h.client.Forward(calculationID, []bridge.SummaryEntry{entry})
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadGateway, bridgeFailure{
			Status:      fasthttp.StatusBadGateway,
			Message:     err.Error(),
			ModelOutput: output,
		})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, summary)
}

func requirePost(ctx *fasthttp.RequestCtx) bool {
	if string(ctx.Method()) != fasthttp.MethodPost {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
