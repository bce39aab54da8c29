//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package server exposes a computed pipeline result over HTTP: a JSON
// API for every rollup table, chart configurations ready for Chart.js,
// and an embedded dashboard page that renders them.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/rollup"
)

//go:embed index.html
var indexHTML []byte

// Server serves one computed pipeline result. The result is immutable
// after construction, so handlers need no locking.
type Server struct {
	addr      string
	suite     *rollup.Suite
	campaigns []pipeline.CampaignWindow
}

// New builds a server around a rollup suite and the campaign windows.
func New(addr string, suite *rollup.Suite, campaigns []pipeline.CampaignWindow) *Server {
	return &Server{addr: addr, suite: suite, campaigns: campaigns}
}

// Handler returns the full HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/customers", s.handleCustomers)
	mux.HandleFunc("/api/products", s.handleProducts)
	mux.HandleFunc("/api/departments", s.handleDepartments)
	mux.HandleFunc("/api/campaign-response", s.handleCampaignResponse)
	mux.HandleFunc("/api/monthly-sales", s.handleMonthlySales)
	mux.HandleFunc("/api/campaigns", s.handleCampaigns)
	mux.HandleFunc("/api/charts", s.handleChartList)
	mux.HandleFunc("/api/charts/", s.handleChart)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	})
	return c.Handler(mux)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("listen", s.addr).Msg("Dashboard listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down dashboard")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.suite.Overview)
}

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.suite.Customers)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products := s.suite.Products
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		products = topProducts(products, n)
	}
	writeJSON(w, products)
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.suite.Departments)
}

func (s *Server) handleCampaignResponse(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.suite.Campaigns)
}

func (s *Server) handleMonthlySales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.suite.Monthly)
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.campaigns)
}

func (s *Server) handleChartList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ChartNames())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	build, err := Chart(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	cfg := build(s.suite)
	data, options := cfg.ChartJS()
	writeJSON(w, map[string]any{
		"name":    name,
		"config":  cfg,
		"type":    cfg.ChartType,
		"data":    data,
		"options": options,
	})
}

// topProducts returns the n best sellers by total sales without
// disturbing the suite's product order.
func topProducts(products []rollup.ProductStats, n int) []rollup.ProductStats {
	out := make([]rollup.ProductStats, len(products))
	copy(out, products)
	sort.Slice(out, func(i, j int) bool { return out[i].TotalSales > out[j].TotalSales })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}
