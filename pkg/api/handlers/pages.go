package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"page-search-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// PageIndex is the storage the stub handlers need
type PageIndex interface {
	Add(url string) bool
	Delete(url string) bool
	Has(url string) bool
	List() []string
	Search(query string, k int) []string
}

// HealthCheck reports that the stub is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddPage indexes a URL
func AddPage(index PageIndex) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := "indexed"
		if !index.Add(req.URL) {
			status = "already_indexed"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "url": req.URL})
	}
}

// ListPages returns every indexed URL
func ListPages(index PageIndex) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.IndexedPages{URLs: index.List()})
	}
}

// DeletePage removes a URL from the index
func DeletePage(index PageIndex) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !index.Delete(req.URL) {
			c.JSON(http.StatusOK, gin.H{"status": "not_found", "url": req.URL})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted", "url": req.URL})
	}
}

// Summarize returns a canned summary that, like an LLM, wraps its JSON
// answer in prose
func Summarize(index PageIndex) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !index.Has(req.URL) {
			c.JSON(http.StatusOK, models.SummaryResult{
				Error: "No content found for this URL. Please index it first.",
			})
			return
		}

		answer, _ := json.Marshal(map[string]string{
			"answer": fmt.Sprintf("Stub summary of %s.\nIndexed pages are not fetched by the stub backend.", req.URL),
		})
		c.JSON(http.StatusOK, gin.H{
			"url":     req.URL,
			"summary": "Here is the summary:\n" + string(answer),
		})
	}
}

// Query matches question words against indexed URLs
func Query(index PageIndex) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.K <= 0 {
			req.K = models.DefaultQueryLimit
		}

		matches := index.Search(req.Query, req.K)
		if len(matches) == 0 {
			c.JSON(http.StatusOK, models.QueryResult{
				Answer:     "No indexed page matches this question.",
				SourceURLs: []string{},
			})
			return
		}

		c.JSON(http.StatusOK, models.QueryResult{
			Answer:      fmt.Sprintf("Found %d matching page(s) for %q:\n%s", len(matches), req.Query, strings.Join(matches, "\n")),
			FoundAnswer: true,
			SourceURLs:  matches,
		})
	}
}

// Stats reports index statistics derived from the stored pages
func Stats(index PageIndex, embeddingDim int) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages := len(index.List())
		indexType := "IndexFlatL2"
		c.JSON(http.StatusOK, models.IndexStats{
			NumPages:       &pages,
			NumChunks:      &pages,
			EmbeddingDim:   &embeddingDim,
			FaissIndexType: &indexType,
		})
	}
}
