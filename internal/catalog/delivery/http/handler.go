package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/stockwise/inventory-catalog/internal/catalog/usecase/command"
	"github.com/stockwise/inventory-catalog/internal/catalog/usecase/query"
	"github.com/stockwise/inventory-catalog/kafka"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog using the
// CQRS handlers. The deletion endpoints map one-to-one onto the deletion
// policy engine: evaluate, safe delete, soft delete, force delete.
type CatalogHandler struct {
	// Command handlers
	createHandler      *command.CreateProductHandler
	updateHandler      *command.UpdateProductHandler
	safeDeleteHandler  *command.SafeDeleteHandler
	softDeleteHandler  *command.SoftDeleteHandler
	forceDeleteHandler *command.ForceDeleteHandler

	// Query handlers
	evaluateHandler   *query.EvaluateDeletionHandler
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	categoriesHandler *query.ListCategoriesHandler
	lowStockHandler   *query.LowStockHandler
	statsHandler      *query.GetStatsHandler

	publisher *kafka.Publisher // optional, best-effort delete events

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	requestSummary  *prometheus.SummaryVec
	deletionCounter *prometheus.CounterVec
}

// NewCatalogHandler creates a new catalog handler wired to the usecase
// handlers. publisher may be nil when Kafka is not configured.
func NewCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	safeDeleteHandler *command.SafeDeleteHandler,
	softDeleteHandler *command.SoftDeleteHandler,
	forceDeleteHandler *command.ForceDeleteHandler,
	evaluateHandler *query.EvaluateDeletionHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	categoriesHandler *query.ListCategoriesHandler,
	lowStockHandler *query.LowStockHandler,
	statsHandler *query.GetStatsHandler,
	publisher *kafka.Publisher,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	deletionCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_deletions_total",
			Help: "Product deletion attempts by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(deletionCounter)

	return &CatalogHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		safeDeleteHandler:  safeDeleteHandler,
		softDeleteHandler:  softDeleteHandler,
		forceDeleteHandler: forceDeleteHandler,
		evaluateHandler:    evaluateHandler,
		getProductHandler:  getProductHandler,
		listHandler:        listHandler,
		categoriesHandler:  categoriesHandler,
		lowStockHandler:    lowStockHandler,
		statsHandler:       statsHandler,
		publisher:          publisher,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		requestSummary:     requestSummary,
		deletionCounter:    deletionCounter,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	route := func(endpoint string, fn http.HandlerFunc) http.HandlerFunc {
		return h.metricsMiddleware(endpoint, AuthMiddleware(fn))
	}

	router.HandleFunc("/api/products", route("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", route("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/stats", route("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/low-stock", route("/api/products/low-stock", h.LowStock)).Methods("GET")
	router.HandleFunc("/api/products/categories", route("/api/products/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/products/{id}", route("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", route("/api/products/{id}", h.UpdateProduct)).Methods("PUT")

	// Deletion workflow
	router.HandleFunc("/api/products/{id}/deletion-check", route("/api/products/{id}/deletion-check", h.CheckDeletion)).Methods("GET")
	router.HandleFunc("/api/products/{id}", route("/api/products/{id}", h.SafeDeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/deactivate", route("/api/products/{id}/deactivate", h.SoftDeleteProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}/force", route("/api/products/{id}/force", h.ForceDeleteProduct)).Methods("DELETE")
}

type productRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	ProductCode string          `json:"product_code"`
}

func (h *CatalogHandler) owner(w http.ResponseWriter, r *http.Request) (uint, bool) {
	ownerID, ok := ownerFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	return ownerID, true
}

func productID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{
		OwnerID:     ownerID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		Image:       req.Image,
		ProductCode: req.ProductCode,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	products, err := h.listHandler.Handle(query.ListProductsQuery{
		OwnerID:         ownerID,
		Search:          r.URL.Query().Get("search"),
		Category:        r.URL.Query().Get("category"),
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ProductID: id, OwnerID: ownerID})
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found or access denied")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ProductID:   id,
		OwnerID:     ownerID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// CheckDeletion handles GET /api/products/{id}/deletion-check
func (h *CatalogHandler) CheckDeletion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	result := h.evaluateHandler.Handle(query.EvaluateDeletionQuery{ProductID: id, OwnerID: ownerID})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// SafeDeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) SafeDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	outcome := h.safeDeleteHandler.Handle(command.SafeDeleteCommand{ProductID: id, OwnerID: ownerID})
	h.recordDeletion(kafka.DeleteModeSafe, outcome.Success)

	if !outcome.Success {
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: outcome.Message})
		return
	}

	h.publishDeleted(r, id, ownerID, kafka.DeleteModeSafe)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: outcome.Message})
}

// SoftDeleteProduct handles POST /api/products/{id}/deactivate
func (h *CatalogHandler) SoftDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	outcome := h.softDeleteHandler.Handle(command.SoftDeleteCommand{ProductID: id, OwnerID: ownerID})
	h.recordDeletion(kafka.DeleteModeSoft, outcome.Success)

	if !outcome.Success {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: outcome.Message})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: outcome.Message})
}

// ForceDeleteProduct handles DELETE /api/products/{id}/force
func (h *CatalogHandler) ForceDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := productID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	// Destroying dependent business records needs an explicit confirmation
	// from the user, enforced here at the controller boundary.
	if r.URL.Query().Get("confirm") != "true" {
		respondError(w, http.StatusBadRequest, "Force delete requires confirm=true")
		return
	}

	outcome := h.forceDeleteHandler.Handle(command.ForceDeleteCommand{ProductID: id, OwnerID: ownerID})
	h.recordDeletion(kafka.DeleteModeForce, outcome.Success)

	if !outcome.Success {
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: outcome.Message})
		return
	}

	h.publishDeleted(r, id, ownerID, kafka.DeleteModeForce)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: outcome.Message})
}

// LowStock handles GET /api/products/low-stock
func (h *CatalogHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))
	report, err := h.lowStockHandler.Handle(query.LowStockQuery{OwnerID: ownerID, Threshold: threshold})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build low stock report")
		respondError(w, http.StatusInternalServerError, "Failed to build low stock report")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// ListCategories handles GET /api/products/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	categories, err := h.categoriesHandler.Handle(query.ListCategoriesQuery{OwnerID: ownerID})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	stats, err := h.statsHandler.Handle(query.GetStatsQuery{OwnerID: ownerID})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get stats")
		respondError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

func (h *CatalogHandler) recordDeletion(mode string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	h.deletionCounter.WithLabelValues(mode, outcome).Inc()
}

// publishDeleted emits a product.deleted event, best effort.
func (h *CatalogHandler) publishDeleted(r *http.Request, productID, ownerID uint, mode string) {
	if h.publisher == nil {
		return
	}
	event := kafka.ProductDeletedEvent{
		ProductID: productID,
		OwnerID:   ownerID,
		Mode:      mode,
	}
	if err := h.publisher.PublishProductDeleted(r.Context(), event); err != nil {
		logger.Logger.Warn().
			Err(err).
			Uint("product_id", productID).
			Msg("Failed to publish product deleted event")
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
