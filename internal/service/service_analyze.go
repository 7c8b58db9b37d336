package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/store"
	"github.com/MKhiriev/go-saas-starter/models"
)

// previewLength is the number of characters of the trimmed text included in
// the analysis preview.
const previewLength = 80

// analyzeService implements AnalyzeService. It measures the trimmed input
// text and meters the call against the caller's usage counter.
type analyzeService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAnalyzeService constructs an AnalyzeService. The user repository is used
// solely for usage metering.
func NewAnalyzeService(userRepository store.UserRepository, logger *logger.Logger) AnalyzeService {
	return &analyzeService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Analyze counts whitespace-delimited words and characters of the trimmed
// text and returns an 80-character preview. Characters are counted on the
// trimmed text, in code points, exactly as the public contract promises.
//
// Each successful analysis increments the caller's usage counter. Metering is
// fire-and-forget: a metering failure is logged and the analysis result is
// returned anyway.
func (s *analyzeService) Analyze(ctx context.Context, user models.User, text string) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.AnalysisResult{}, ErrEmptyText
	}

	result := models.AnalysisResult{
		Email:      user.Email,
		Plan:       user.Plan,
		Words:      len(strings.Fields(trimmed)),
		Characters: utf8.RuneCountInString(trimmed),
		Preview:    preview(trimmed),
	}

	if err := s.userRepository.IncrementUsage(ctx, user.Email); err != nil {
		log.Err(err).Str("email", user.Email).Msg("usage metering failed, returning result anyway")
	}

	return result, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength])
}
