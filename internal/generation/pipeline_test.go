package generation

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/mathgrade/internal/inference"
	"github.com/at-ishikawa/mathgrade/internal/linear"
	mock_inference "github.com/at-ishikawa/mathgrade/internal/mocks/inference"
)

func TestPipeline_Run(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mock_inference.MockClient)
		wantAccepted   []linear.Problem
		wantRejections []Rejection
		wantErr        bool
	}{
		{
			name: "keeps only problems whose answer solves the equation",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().GenerateProblems(gomock.Any(), inference.GenerateProblemsRequest{
					UnitName: "일차방정식",
					Count:    4,
				}).Return(inference.GenerateProblemsResponse{
					Problems: []inference.GeneratedProblem{
						{Question: "2x+3=7", Answer: "2"},
						{Question: "2x+3=7", Answer: "3"},
						{Question: "다음 방정식을 푸시오", Question2: "3(x-1)=2x+5", Answer: "x=8"},
						{Question: "x^2=4", Answer: "2"},
					},
				}, nil)
			},
			wantAccepted: []linear.Problem{
				{Question: "2x+3=7", Answer: "2"},
				{Question: "다음 방정식을 푸시오", Question2: "3(x-1)=2x+5", Answer: "x=8"},
			},
			wantRejections: []Rejection{
				{
					Problem: linear.Problem{Question: "2x+3=7", Answer: "3"},
					Reason:  "정답 불일치: 기대값=3, 계산값=2",
				},
				{
					Problem: linear.Problem{Question: "x^2=4", Answer: "2"},
					Reason:  linear.ReasonParseFailure,
				},
			},
		},
		{
			name: "empty generation",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().GenerateProblems(gomock.Any(), gomock.Any()).
					Return(inference.GenerateProblemsResponse{}, nil)
			},
		},
		{
			name: "client error",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().GenerateProblems(gomock.Any(), gomock.Any()).
					Return(inference.GenerateProblemsResponse{}, fmt.Errorf("response error 401: unauthorized"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			tt.setupMock(client)

			pipeline := NewPipeline(client, linear.NewValidator())
			pipeline.newID = func() string { return "batch-1" }

			got, err := pipeline.Run(context.Background(), "일차방정식", 4)
			assert.Equal(t, "batch-1", got.ID)
			assert.Equal(t, "일차방정식", got.UnitName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, got.Accepted)
			assert.Equal(t, tt.wantRejections, got.Rejections)
		})
	}
}

func TestNewPipeline_AssignsUUIDBatchIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_inference.NewMockClient(ctrl)
	client.EXPECT().GenerateProblems(gomock.Any(), gomock.Any()).
		Return(inference.GenerateProblemsResponse{}, nil).Times(2)

	pipeline := NewPipeline(client, linear.NewValidator())
	first, err := pipeline.Run(context.Background(), "일차방정식", 1)
	require.NoError(t, err)
	second, err := pipeline.Run(context.Background(), "일차방정식", 1)
	require.NoError(t, err)

	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
