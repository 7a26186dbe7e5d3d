package server

import (
	"pwstrength/internal/domain/entity"
	"pwstrength/pkg/rest"
)

func newRESTCheckResponse(report entity.Report) rest.CheckResponse {
	suggestions := report.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return rest.CheckResponse{
		Entropy:     report.EntropyBits,
		Length:      report.Length,
		Score:       report.Score,
		Rating:      report.Rating.String(),
		Common:      report.Common,
		Mode:        string(report.Mode),
		Suggestions: suggestions,
		Warning:     report.Warning,
	}
}
