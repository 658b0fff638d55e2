package cardbrand

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hugochinchilla79/cardbrand/models"
)

// API is a HTTP API for the classifier.
type API struct {
	classifier *Classifier
	logger     *zap.Logger
}

// NewAPI creates the HTTP API. A nil logger disables request logging.
func NewAPI(classifier *Classifier, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		classifier: classifier,
		logger:     logger,
	}
}

// maxRequestBytes bounds the body of POST /cards/classify.
const maxRequestBytes = 1 << 10

// ClassifyRequest is the body of POST /cards/classify.
type ClassifyRequest struct {
	Number string `json:"number"`
}

// AppendRoutes mounts the API routes on r.
func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/brands", a.listBrands)
	r.Post("/cards/classify", a.classify)
}

func (a *API) classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := a.classifier.Describe(req.Number)
	a.logger.Info("classify request",
		zap.String("number", result.Masked),
		zap.String("brand", result.Brand),
		zap.Bool("valid", result.Valid),
	)

	writeJSON(w, http.StatusOK, result)
}

func (a *API) listBrands(w http.ResponseWriter, r *http.Request) {
	brands := make([]models.BrandInfo, 0, len(knownBrands))
	for _, b := range knownBrands {
		pattern, _ := b.Pattern()
		icon, _ := Icon(b)
		brands = append(brands, models.BrandInfo{
			Brand:        b.String(),
			Pattern:      pattern,
			Icon:         icon,
			CardTypeCode: b.CardTypeCode(),
		})
	}
	writeJSON(w, http.StatusOK, brands)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
