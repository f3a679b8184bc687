package services

import (
	"context"
	"testing"

	"github.com/example/luxe/internal/models"
)

func TestQuizRecommend(t *testing.T) {
	st, _ := seededStore(t)
	quiz := NewQuizService(st)

	tests := []struct {
		name    string
		answers models.QuizAnswer
		want    []string
	}{
		{
			name:    "no criteria returns arbitrary fragrances",
			answers: models.QuizAnswer{},
			want:    []string{"Noir Élite", "Lumière Blanche", "Verde Sera"},
		},
		{
			name:    "gender",
			answers: models.QuizAnswer{Gender: "male"},
			want:    []string{"Verde Sera"},
		},
		{
			name:    "single season matches multi-value field",
			answers: models.QuizAnswer{Season: "summer"},
			want:    []string{"Lumière Blanche", "Verde Sera"},
		},
		{
			name:    "occasion",
			answers: models.QuizAnswer{Occasion: "evening"},
			want:    []string{"Noir Élite"},
		},
		{
			name:    "preferences intersect families",
			answers: models.QuizAnswer{Preferences: []string{"woody", "fresh"}},
			want:    []string{"Noir Élite", "Verde Sera"},
		},
		{
			name:    "all criteria conjoined",
			answers: models.QuizAnswer{Gender: "female", Season: "spring", Occasion: "office", Preferences: []string{"floral"}},
			want:    []string{"Lumière Blanche"},
		},
		{
			name:    "no match",
			answers: models.QuizAnswer{Gender: "male", Preferences: []string{"floral"}},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragrances, err := quiz.Recommend(context.Background(), tt.answers)
			if err != nil {
				t.Fatalf("recommend failed: %v", err)
			}
			got := names(fragrances)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}
