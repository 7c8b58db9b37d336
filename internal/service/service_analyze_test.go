package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/mock"
	"github.com/MKhiriev/go-saas-starter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAnalyzeSvc(t *testing.T, ctrl *gomock.Controller) (AnalyzeService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAnalyzeService(mockUsers, logger.Nop())

	return svc, mockUsers
}

func TestAnalyzeService_Analyze_CountsTrimmedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAnalyzeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{Email: "alice@example.com", Plan: models.PlanPro}

	mockUsers.EXPECT().IncrementUsage(ctx, user.Email).Return(nil)

	result, err := svc.Analyze(ctx, user, "  the quick   brown fox\n")
	require.NoError(t, err)

	assert.Equal(t, user.Email, result.Email)
	assert.Equal(t, models.PlanPro, result.Plan)
	assert.Equal(t, 4, result.Words)
	assert.Equal(t, len("the quick   brown fox"), result.Characters)
	assert.Equal(t, "the quick   brown fox", result.Preview)
}

func TestAnalyzeService_Analyze_CountsCodePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAnalyzeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{Email: "alice@example.com"}

	mockUsers.EXPECT().IncrementUsage(ctx, user.Email).Return(nil)

	// 10 Cyrillic letters plus a space: 11 code points, 21 bytes.
	result, err := svc.Analyze(ctx, user, "привет мир")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Words)
	assert.Equal(t, 11, result.Characters)
}

func TestAnalyzeService_Analyze_PreviewTruncatedAt80(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAnalyzeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{Email: "alice@example.com"}

	mockUsers.EXPECT().IncrementUsage(ctx, user.Email).Return(nil)

	long := strings.Repeat("x", 200)
	result, err := svc.Analyze(ctx, user, long)
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("x", 80), result.Preview)
	assert.Equal(t, 200, result.Characters)
}

func TestAnalyzeService_Analyze_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAnalyzeSvc(t, ctrl)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.Analyze(context.Background(), models.User{Email: "alice@example.com"}, text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestAnalyzeService_Analyze_MeteringFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAnalyzeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{Email: "alice@example.com"}

	mockUsers.EXPECT().
		IncrementUsage(ctx, user.Email).
		Return(errors.New("connection reset"))

	result, err := svc.Analyze(ctx, user, "still works")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Words)
}
