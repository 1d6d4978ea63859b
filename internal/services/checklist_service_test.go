package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unclip12/focusflow/internal/services"
	"github.com/unclip12/focusflow/internal/testutil/mocks"
)

func TestGenerate_NilClientUsesFallback(t *testing.T) {
	svc := services.NewChecklistService(nil)

	items := svc.Generate(context.Background(), "Cardiac physiology", 60)

	require.Len(t, items, 3)
	assert.Equal(t, "Review core definitions", items[0])
}

func TestGenerate_ClientErrorUsesFallback(t *testing.T) {
	client := new(mocks.MockGeminiClient)
	client.On("GenerateChecklist", mock.Anything, "Renal", 30).Return(nil, fmt.Errorf("upstream unavailable"))
	svc := services.NewChecklistService(client)

	items := svc.Generate(context.Background(), "Renal", 30)

	require.Len(t, items, 3)
	assert.Equal(t, "Practice 3 basic problems", items[1])
}

func TestGenerate_EmptyResultUsesFallback(t *testing.T) {
	client := new(mocks.MockGeminiClient)
	client.On("GenerateChecklist", mock.Anything, "Renal", 30).Return([]string{}, nil)
	svc := services.NewChecklistService(client)

	items := svc.Generate(context.Background(), "Renal", 30)

	require.Len(t, items, 3)
}

func TestGenerate_ReturnsClientItems(t *testing.T) {
	client := new(mocks.MockGeminiClient)
	client.On("GenerateChecklist", mock.Anything, "Cardiac physiology", 60).
		Return([]string{"Sketch the cardiac cycle", "List the murmurs"}, nil)
	svc := services.NewChecklistService(client)

	items := svc.Generate(context.Background(), "Cardiac physiology", 60)

	assert.Equal(t, []string{"Sketch the cardiac cycle", "List the murmurs"}, items)
	client.AssertExpectations(t)
}
