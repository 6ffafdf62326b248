package db

import (
	"database/sql"
	"fmt"
	"strings"

	"bflow/log"
)

type ExerciseProgress struct {
	Exercise string
	Result   sql.NullString
	Rating   sql.NullInt64
}

type CategoryProgress struct {
	Category  string
	Exercises []ExerciseProgress
}

// placeholderResult is the client-side stand-in for "no result entered".
const placeholderResult = "N/A"

var stmtSelectExerciseIDByName *sql.Stmt
var stmtSelectPlayerProgress *sql.Stmt

// PlayerProgress returns every category with its exercises and the player's
// recorded result and rating for each, in seed order. Exercises the player
// has no row for are reported with null result and rating.
func PlayerProgress(playerID int64) ([]CategoryProgress, error) {
	rows, err := stmtSelectPlayerProgress.Query(playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []CategoryProgress
	for rows.Next() {
		var category string
		var exercise ExerciseProgress
		if err := rows.Scan(&category, &exercise.Exercise, &exercise.Result,
			&exercise.Rating); err != nil {
			return nil, err
		}
		if len(progress) == 0 || progress[len(progress)-1].Category != category {
			progress = append(progress, CategoryProgress{Category: category})
		}
		last := &progress[len(progress)-1]
		last.Exercises = append(last.Exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return progress, nil
}

// ExerciseResult carries a player's new result and/or self-assessment rating
// for a named exercise. An empty or "N/A" result and a zero rating count as
// not supplied.
type ExerciseResult struct {
	Exercise string
	PlayerID int64
	Result   string
	Rating   int
}

// UpdateExerciseResult writes the supplied fields onto the player's row for
// the named exercise. It returns false without error when the player has no
// row for that exercise.
func UpdateExerciseResult(r ExerciseResult) (bool, error) {
	if r.Exercise == "" {
		return false, fmt.Errorf("exercise name is required: %w", ErrInvalidInput)
	}

	hasResult := r.Result != "" && r.Result != placeholderResult
	hasRating := r.Rating != 0
	if !hasResult && !hasRating {
		return false, fmt.Errorf("at least one of result or rating must be supplied: %w",
			ErrInvalidInput)
	}
	if hasRating && (r.Rating < 1 || r.Rating > 5) {
		return false, fmt.Errorf("rating %d outside 1-5: %w", r.Rating, ErrInvalidInput)
	}

	var exerciseID int64
	err := stmtSelectExerciseIDByName.QueryRow(r.Exercise).Scan(&exerciseID)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("exercise %q: %w", r.Exercise, ErrNotFound)
	}
	if err != nil {
		return false, err
	}

	var assignments []string
	var args []interface{}
	if hasResult {
		assignments = append(assignments, "result = ?")
		args = append(args, r.Result)
	}
	if hasRating {
		assignments = append(assignments, "rating = ?")
		args = append(args, r.Rating)
	}
	args = append(args, r.PlayerID, exerciseID)

	query := "UPDATE player_exercise SET " + strings.Join(assignments, ", ") +
		" WHERE player_id = ? AND exercise_id = ?"
	result, err := session.Exec(query, args...)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		log.WithFields(log.Fields{
			"exercise":  r.Exercise,
			"player_id": r.PlayerID,
		}).Warn("no matching exercise row for player")
		return false, nil
	}

	log.WithFields(log.Fields{
		"exercise":  r.Exercise,
		"player_id": r.PlayerID,
	}).Debug("exercise result updated")
	return true, nil
}

func prepareExercisesStatements() {
	log.Debug("preparing exercises statements")
	stmtSelectExerciseIDByName = prepare(sqlSelectExerciseIDByName)
	stmtSelectPlayerProgress = prepare(sqlSelectPlayerProgress)
	log.Debug("exercises statements prepared")
}

func closePreparedExercisesStatements() {
	log.Debug("closing prepared exercises statements")
	stmtSelectExerciseIDByName.Close()
	stmtSelectPlayerProgress.Close()
	log.Debug("prepared exercises statements closed")
}
