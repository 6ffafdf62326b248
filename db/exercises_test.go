package db

import (
	"errors"
	"testing"
)

func TestPlayerProgressFreshPlayer(t *testing.T) {
	openTestDB(t)
	playerID := addTestUser(t, "ana", RolePlayer)

	progress, err := PlayerProgress(playerID)
	if err != nil {
		t.Fatalf("unable to get player progress: %v", err)
	}

	wantCategories := []string{"PAC", "SHO", "PAS", "DRI", "DEF", "PHY"}
	wantCounts := []int{2, 3, 3, 3, 3, 3}
	if len(progress) != len(wantCategories) {
		t.Fatalf("expected %d categories, got %d", len(wantCategories), len(progress))
	}
	for i, category := range progress {
		if category.Category != wantCategories[i] {
			t.Errorf("category %d: expected %q, got %q", i, wantCategories[i],
				category.Category)
		}
		if len(category.Exercises) != wantCounts[i] {
			t.Errorf("category %q: expected %d exercises, got %d",
				category.Category, wantCounts[i], len(category.Exercises))
		}
		for _, exercise := range category.Exercises {
			if exercise.Result.Valid || exercise.Rating.Valid {
				t.Errorf("exercise %q: expected no result or rating yet, got %+v",
					exercise.Exercise, exercise)
			}
		}
	}
}

func TestUpdateExerciseResult(t *testing.T) {
	openTestDB(t)
	playerID := addTestUser(t, "ana", RolePlayer)

	matched, err := UpdateExerciseResult(ExerciseResult{
		Exercise: "Sprint Speed",
		PlayerID: playerID,
		Result:   "4.8s",
		Rating:   3,
	})
	if err != nil {
		t.Fatalf("unable to update exercise result: %v", err)
	}
	if !matched {
		t.Fatal("expected the update to match the player's exercise row")
	}

	// A rating-only update must leave the stored result untouched.
	matched, err = UpdateExerciseResult(ExerciseResult{
		Exercise: "Sprint Speed",
		PlayerID: playerID,
		Rating:   5,
	})
	if err != nil || !matched {
		t.Fatalf("rating-only update failed: matched=%v, err=%v", matched, err)
	}

	progress, err := PlayerProgress(playerID)
	if err != nil {
		t.Fatal(err)
	}
	sprint := progress[0].Exercises[0]
	if sprint.Exercise != "Sprint Speed" {
		t.Fatalf("expected Sprint Speed first, got %q", sprint.Exercise)
	}
	if !sprint.Result.Valid || sprint.Result.String != "4.8s" {
		t.Errorf("expected result to survive rating-only update, got %+v", sprint.Result)
	}
	if !sprint.Rating.Valid || sprint.Rating.Int64 != 5 {
		t.Errorf("expected rating 5, got %+v", sprint.Rating)
	}

	// And the other way around for a result-only update.
	matched, err = UpdateExerciseResult(ExerciseResult{
		Exercise: "Sprint Speed",
		PlayerID: playerID,
		Result:   "4.5s",
	})
	if err != nil || !matched {
		t.Fatalf("result-only update failed: matched=%v, err=%v", matched, err)
	}
	progress, err = PlayerProgress(playerID)
	if err != nil {
		t.Fatal(err)
	}
	sprint = progress[0].Exercises[0]
	if !sprint.Rating.Valid || sprint.Rating.Int64 != 5 {
		t.Errorf("expected rating to survive result-only update, got %+v", sprint.Rating)
	}
	if !sprint.Result.Valid || sprint.Result.String != "4.5s" {
		t.Errorf("expected result 4.5s, got %+v", sprint.Result)
	}
}

func TestUpdateExerciseResultValidation(t *testing.T) {
	openTestDB(t)
	playerID := addTestUser(t, "ana", RolePlayer)

	cases := []struct {
		name string
		in   ExerciseResult
		want error
	}{
		{
			name: "empty exercise name",
			in:   ExerciseResult{PlayerID: playerID, Result: "4.8s"},
			want: ErrInvalidInput,
		},
		{
			name: "placeholder result and zero rating",
			in:   ExerciseResult{Exercise: "Sprint Speed", PlayerID: playerID, Result: "N/A"},
			want: ErrInvalidInput,
		},
		{
			name: "rating out of range",
			in:   ExerciseResult{Exercise: "Sprint Speed", PlayerID: playerID, Rating: 6},
			want: ErrInvalidInput,
		},
		{
			name: "unknown exercise",
			in:   ExerciseResult{Exercise: "Juggling", PlayerID: playerID, Rating: 3},
			want: ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UpdateExerciseResult(tc.in); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUpdateExerciseResultNoMatchingRow(t *testing.T) {
	openTestDB(t)

	// An id with no exercise rows reports no match but no error.
	matched, err := UpdateExerciseResult(ExerciseResult{
		Exercise: "Sprint Speed",
		PlayerID: 9999,
		Rating:   3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Error("expected no matching row")
	}
}
