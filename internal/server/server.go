// Package server exposes the analysis pipeline over HTTP. One dataset is
// held in memory at a time; every read endpoint derives a view from it.
package server

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/db"
	"github.com/opsecfreak/webintel/pkg/query"
	"github.com/opsecfreak/webintel/pkg/storage"
)

// Analyzer is the model-call dependency, satisfied by genai.Client.
type Analyzer interface {
	Analyze(ctx context.Context, opts models.ScrapeOptions) (*models.ScrapedData, error)
}

type Server struct {
	cfg      *models.Config
	store    *storage.Storage
	database *db.DB
	analyzer Analyzer

	// analyzing is the single-flight guard: a second analyze request while
	// one is running gets 409 instead of queueing.
	analyzing atomic.Bool

	mu   sync.RWMutex
	memo *query.Memo
}

// New builds a Server. If a latest dataset artifact exists it is loaded so
// read endpoints work immediately after a restart.
func New(cfg *models.Config, store *storage.Storage, database *db.DB, analyzer Analyzer) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		database: database,
		analyzer: analyzer,
	}
	if store.HasLatest() {
		data, err := store.LoadDataset("")
		if err != nil {
			log.Warn("could not load latest dataset", "err", err)
		} else {
			s.memo = query.NewMemo(data)
		}
	}
	return s
}

// Router wires the HTTP routes.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	router.POST("/analyze", s.handleAnalyze)
	router.GET("/summary", s.handleSummary)
	router.GET("/products", s.handleProducts)
	router.GET("/qa", s.handleQA)
	router.GET("/export/csv", s.handleExportCSV)
	router.GET("/export/html", s.handleExportHTML)
	router.GET("/sources", s.handleGetSources)
	router.PUT("/sources", s.handlePutSources)

	return router
}

// Run starts the server on the configured listen address.
func (s *Server) Run() error {
	log.Info("listening", "addr", s.cfg.ListenAddr)
	return s.Router().Run(s.cfg.ListenAddr)
}

// currentMemo returns the memoized dataset, or nil before the first analysis.
func (s *Server) currentMemo() *query.Memo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memo
}

func (s *Server) setDataset(data *models.ScrapedData) {
	s.mu.Lock()
	s.memo = query.NewMemo(data)
	s.mu.Unlock()
}
