package db

import (
	_ "embed"

	"bflow/log"

	json "github.com/tidwall/gjson"
)

// Skill categories and their exercises. Fixed reference data for the
// application; players rate themselves against these.
//go:embed seed.json
var seedJSON []byte

// seedReferenceData inserts the category and exercise reference data, skipping
// rows that already exist.
func seedReferenceData() error {
	log.Debug("seeding categories and exercises")
	tx, err := session.Begin()
	if err != nil {
		return err
	}

	stmtInsertCategory := txPrepare(tx, sqlInsertCategory)
	stmtInsertExercise := txPrepare(tx, sqlInsertExercise)
	defer stmtInsertCategory.Close()
	defer stmtInsertExercise.Close()

	var seedErr error
	json.GetBytes(seedJSON, "categories").ForEach(func(key, value json.Result) bool {
		name := value.Get("name").String()
		if _, err := stmtInsertCategory.Exec(name); err != nil {
			seedErr = err
			return false
		}

		var categoryID int64
		if err := tx.QueryRow(sqlSelectCategoryIDByName, name).Scan(&categoryID); err != nil {
			seedErr = err
			return false
		}

		value.Get("exercises").ForEach(func(key, exercise json.Result) bool {
			if _, err := stmtInsertExercise.Exec(categoryID, exercise.String()); err != nil {
				seedErr = err
				return false
			}
			log.WithFields(log.Fields{
				"category": name,
				"exercise": exercise.String(),
			}).Trace("transactionally execute exercise SQL insert statement")
			return true
		})
		return seedErr == nil
	})

	if seedErr != nil {
		tx.Rollback()
		return seedErr
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug("categories and exercises seeded")
	return nil
}
