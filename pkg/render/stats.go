package render

import (
	"strconv"

	"page-search-go/pkg/models"
)

// Missing stands in for an absent statistic
const Missing = "—"

// StatRow is one labeled statistic
type StatRow struct {
	Label       string
	Description string
	Value       string
}

// Stats lays out index statistics in a fixed order
func Stats(s *models.IndexStats) []StatRow {
	if s == nil {
		s = &models.IndexStats{}
	}
	return []StatRow{
		{Label: "Pages Indexed", Description: "Number of unique web pages stored.", Value: intOrMissing(s.NumPages)},
		{Label: "Total Chunks", Description: "Number of text sections split and embedded.", Value: intOrMissing(s.NumChunks)},
		{Label: "Vector Dimensions", Description: "Size of each embedding vector.", Value: intOrMissing(s.EmbeddingDim)},
		{Label: "FAISS Index Type", Description: "Algorithm used for fast search.", Value: stringOrMissing(s.FaissIndexType)},
	}
}

func intOrMissing(v *int) string {
	if v == nil {
		return Missing
	}
	return strconv.Itoa(*v)
}

func stringOrMissing(v *string) string {
	if v == nil {
		return Missing
	}
	return *v
}
