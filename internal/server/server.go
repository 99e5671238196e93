// Package server exposes the metrics engine and relationship graph over a
// JSON API consumed by the dashboard views.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/graph"
	"github.com/iwvelando/saas-metrics/internal/metrics"
	"github.com/iwvelando/saas-metrics/pkg/constants"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the metrics API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/version", h.handleVersion)

	// Calculation endpoint driving every dashboard view
	mux.HandleFunc("/api/metrics", h.handleMetrics)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/export", h.handleConfigExport)

	// Relationship graph queries for the metrics-map views
	mux.HandleFunc("/api/graph", h.handleGraph)
	mux.HandleFunc("/api/graph/connections", h.handleGraphConnections)
	mux.HandleFunc("/api/graph/focus", h.handleGraphFocus)
	mux.HandleFunc("/api/graph/path", h.handleGraphPath)

	return mux
}

type metricsRequest struct {
	Industry string          `json:"industry"`
	Inputs   json.RawMessage `json:"inputs"`
}

type metricsResponse struct {
	Industry   string                    `json:"industry"`
	Inputs     config.Inputs             `json:"inputs"`
	Metrics    metrics.CalculatedMetrics `json:"metrics"`
	KeyMetrics []metrics.KeyMetric       `json:"keyMetrics"`
	Warnings   []string                  `json:"warnings,omitempty"`
	Sparklines map[string][]float64      `json:"sparklines,omitempty"`
	Statuses   map[string]metrics.Status `json:"statuses"`
	Duration   string                    `json:"duration"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleMetrics")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleMetrics")
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = constants.DefaultIndustry
	}

	// Field overrides decode over the industry profile; absent fields keep
	// their profile defaults.
	inputs := config.DefaultInputs(industry)
	if len(req.Inputs) > 0 {
		if err := json.Unmarshal(req.Inputs, &inputs); err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid inputs payload: %v", err), "server.handleMetrics")
			return
		}
	}

	warnings := config.ValidateInputs(inputs)
	calculated := metrics.Calculate(inputs)
	keyMetrics := metrics.KeyMetrics(inputs, calculated)

	values := metrics.MetricValues(inputs, calculated)
	sparklines := make(map[string][]float64, len(keyMetrics))
	statuses := make(map[string]metrics.Status, len(values))
	for id, value := range values {
		statuses[id] = metrics.MetricStatus(id, value)
	}
	for _, km := range keyMetrics {
		sparklines[km.ID] = metrics.Sparkline(km.ID, values[km.ID], constants.DefaultSparklinePoints)
	}

	elapsed := time.Since(start)

	response := metricsResponse{
		Industry:   industry,
		Inputs:     inputs,
		Metrics:    calculated,
		KeyMetrics: keyMetrics,
		Warnings:   warnings,
		Sparklines: sparklines,
		Statuses:   statuses,
		Duration:   elapsed.String(),
	}

	h.logger.Info("metrics computed",
		zap.String("op", "server.handleMetrics"),
		zap.String("industry", industry),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

type graphNode struct {
	ID           string             `json:"id"`
	Tier         string             `json:"tier"`
	Relationship graph.Relationship `json:"relationship"`
}

func (h *handler) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	rels := graph.Relationships()
	ids := make([]string, 0, len(rels))
	for id := range rels {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]graphNode, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, graphNode{
			ID:           id,
			Tier:         graph.Tier(id),
			Relationship: rels[id],
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"nodes": nodes})
}

func (h *handler) handleGraphConnections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	h.writeJSON(w, http.StatusOK, graph.DirectConnections(id))
}

func (h *handler) handleGraphFocus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	degrees := graph.TwoDegrees(id)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"primary":   degrees.Primary,
		"secondary": degrees.Secondary,
		"opacities": graph.Opacities(id),
	})
}

func (h *handler) handleGraphPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	direction := r.URL.Query().Get("direction")
	depth := constants.DefaultTraversalDepth
	if depthParam := r.URL.Query().Get("depth"); depthParam != "" {
		parsed, err := strconv.Atoi(depthParam)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid depth %q", depthParam), "server.handleGraphPath")
			return
		}
		depth = parsed
	}

	var path []string
	switch direction {
	case "upstream":
		path = graph.UpstreamPath(id, depth)
	case "downstream":
		path = graph.DownstreamPath(id, depth)
	default:
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("direction must be upstream or downstream, got %q", direction), "server.handleGraphPath")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"path": path})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleConfigExport")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range []string{"industry", "inputs", "logging", "output"} {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
