package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/db"
	"github.com/opsecfreak/webintel/pkg/export"
	"github.com/opsecfreak/webintel/pkg/genai"
	"github.com/opsecfreak/webintel/pkg/query"
	"github.com/opsecfreak/webintel/pkg/summary"
)

type analyzeRequest struct {
	URLs       []string `json:"urls"`
	Topic      string   `json:"topic"`
	MaxResults int      `json:"maxResults"`
	CrawlDepth int      `json:"crawlDepth"`
}

type analyzeResponse struct {
	Data  *models.ScrapedData `json:"data"`
	Stats summary.Stats       `json:"stats"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	if !s.analyzing.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "an analysis is already running"})
		return
	}
	defer s.analyzing.Store(false)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	urls := req.URLs
	if len(urls) == 0 {
		saved, err := s.database.LoadSources()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		urls = saved
	}
	valid, invalid := common.SanitizeAndValidateURLs(urls)
	if len(valid) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": genai.ErrNoSources.Error(), "invalidUrls": invalid})
		return
	}

	opts := models.ScrapeOptions{
		URLs:       valid,
		Topic:      req.Topic,
		MaxResults: req.MaxResults,
		CrawlDepth: req.CrawlDepth,
	}

	data, err := s.analyzer.Analyze(c.Request.Context(), opts)

	run := db.Run{Model: s.cfg.Model, Topic: opts.Topic, URLCount: len(opts.URLs)}
	if err != nil {
		run.Status = db.RunStatusFailed
		run.ErrorMessage = err.Error()
		if _, recErr := s.database.RecordRun(run); recErr != nil {
			log.Warn("failed to record run", "err", recErr)
		}
		c.JSON(analyzeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	artifactPath, err := s.store.SaveDataset(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	run.Status = db.RunStatusOK
	run.ProductCount = len(data.Products)
	run.QACount = len(data.QAItems)
	run.ArtifactPath = artifactPath
	if _, err := s.database.RecordRun(run); err != nil {
		log.Warn("failed to record run", "err", err)
	}

	s.setDataset(data)
	c.JSON(http.StatusOK, analyzeResponse{Data: data, Stats: summary.Compute(data)})
}

// analyzeErrorStatus maps the analysis error taxonomy to HTTP statuses:
// configuration problems are the caller's, everything else is upstream.
func analyzeErrorStatus(err error) int {
	switch {
	case errors.Is(err, genai.ErrMissingAPIKey), errors.Is(err, genai.ErrMissingModel):
		return http.StatusInternalServerError
	case errors.Is(err, genai.ErrNoSources):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleSummary(c *gin.Context) {
	memo := s.currentMemo()
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded; run an analysis first"})
		return
	}
	c.JSON(http.StatusOK, summary.Compute(memo.Data()))
}

func (s *Server) handleProducts(c *gin.Context) {
	memo := s.currentMemo()
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded; run an analysis first"})
		return
	}
	view := memo.View(query.Criteria{Products: productCriteriaFromParams(c)})
	c.JSON(http.StatusOK, gin.H{"products": view.Products, "count": len(view.Products)})
}

func (s *Server) handleQA(c *gin.Context) {
	memo := s.currentMemo()
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded; run an analysis first"})
		return
	}
	view := memo.View(query.Criteria{QA: qaCriteriaFromParams(c)})
	c.JSON(http.StatusOK, gin.H{"qaItems": view.QAItems, "count": len(view.QAItems)})
}

func (s *Server) handleExportCSV(c *gin.Context) {
	memo := s.currentMemo()
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded; run an analysis first"})
		return
	}
	view := memo.View(criteriaFromParams(c))
	if c.Query("report") == "parts" {
		writeAttachment(c, export.CSVFile("parts-list.csv", export.PartsListCSV(view.Products)))
		return
	}
	writeAttachment(c, export.CSVFile("full-report.csv", export.FullReportCSV(view)))
}

func (s *Server) handleExportHTML(c *gin.Context) {
	memo := s.currentMemo()
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded; run an analysis first"})
		return
	}
	view := memo.View(criteriaFromParams(c))
	content, err := export.FullReportHTML(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writeAttachment(c, export.HTMLFile("full-report.html", content))
}

func writeAttachment(c *gin.Context, f export.File) {
	c.Header("Content-Disposition", `attachment; filename="`+f.Filename+`"`)
	c.Data(http.StatusOK, f.MediaType, []byte(f.Content))
}

func (s *Server) handleGetSources(c *gin.Context) {
	urls, err := s.database.LoadSources()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

type putSourcesRequest struct {
	URLs []string `json:"urls"`
}

func (s *Server) handlePutSources(c *gin.Context) {
	var req putSourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	valid, invalid := common.SanitizeAndValidateURLs(req.URLs)
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source URLs", "invalidUrls": invalid})
		return
	}
	if err := s.database.SaveSources(valid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": valid})
}

func productCriteriaFromParams(c *gin.Context) query.ProductCriteria {
	criteria := query.ProductCriteria{
		Search:          c.Query("search"),
		ExcludeUnpriced: c.Query("excludeUnpriced") == "true",
		HasPartNumber:   c.Query("hasPartNumber") == "true",
		SortKey:         c.Query("sort"),
		Descending:      c.Query("desc") == "true",
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		criteria.MaxPrice = &v
	}
	return criteria
}

func qaCriteriaFromParams(c *gin.Context) query.QACriteria {
	return query.QACriteria{
		Search:         c.Query("qaSearch"),
		RelatedProduct: c.Query("relatedProduct"),
		SortKey:        c.Query("qaSort"),
		Descending:     c.Query("qaDesc") == "true",
	}
}

func criteriaFromParams(c *gin.Context) query.Criteria {
	return query.Criteria{
		Products: productCriteriaFromParams(c),
		QA:       qaCriteriaFromParams(c),
	}
}
