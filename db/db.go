package db

import (
	"database/sql"

	"bflow/log"

	_ "github.com/mattn/go-sqlite3"
)

var session *sql.DB

// Open initializes the BFLOW database at the given path: tables are created
// when absent, reference data is seeded and statements are prepared. Safe to
// call on every process start.
func Open(path string) {
	openDatabase(path)
	createTables()
	if err := seedReferenceData(); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("unable to seed reference data")
	}
	prepareAllStatements()
	log.Debug("BFLOW database initialized")
}

func Close() {
	closeAllPreparedStatements()

	log.Debug("closing BFLOW database")
	session.Close()
	log.Debug("BFLOW database closed")
}

func txExec(tx *sql.Tx, sql string) sql.Result {
	result, err := tx.Exec(sql)
	if err != nil {
		log.WithFields(log.Fields{
			"statement": sql,
			"error":     err,
		}).Panic("unable to transactionally execute SQL statement")
		return nil
	}

	return result
}

func prepare(sql string) *sql.Stmt {
	stmt, err := session.Prepare(sql)
	if err != nil {
		log.WithFields(log.Fields{
			"statement": sql,
			"error":     err,
		}).Panic("unable to prepare SQL statement")
	}
	return stmt
}

func txPrepare(tx *sql.Tx, sql string) *sql.Stmt {
	stmt, err := tx.Prepare(sql)
	if err != nil {
		log.WithFields(log.Fields{
			"statement": sql,
			"error":     err,
		}).Panic("unable to transactionally prepare SQL statement")
	}
	return stmt
}

func prepareAllStatements() {
	log.Debug("preparing statements")
	prepareUsersStatements()
	prepareTeamsStatements()
	prepareExercisesStatements()
	log.Debug("statements prepared")
}

func closeAllPreparedStatements() {
	log.Debug("closing prepared statements")
	closePreparedUsersStatements()
	closePreparedTeamsStatements()
	closePreparedExercisesStatements()
	log.Debug("prepared statements closed")
}

func openDatabase(path string) {
	var err error
	log.WithFields(log.Fields{
		"path": path,
	}).Debug("opening BFLOW database")
	session, err = sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Panic("unable open BFLOW database")
	}

	// Single writer keeps SQLite from returning "database is locked" under
	// interleaved statements.
	session.SetMaxIdleConns(1)
	session.SetMaxOpenConns(1)
	session.SetConnMaxLifetime(0)
}

func createTables() {
	tx, err := session.Begin()
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("unable to begin transaction for BFLOW table creation")
	}

	txExec(tx, playerTable)
	txExec(tx, coachTable)
	txExec(tx, teamTable)
	txExec(tx, parentTable)
	txExec(tx, categoryTable)
	txExec(tx, exerciseTable)
	txExec(tx, parentPlayerTable)
	txExec(tx, playerExerciseTable)

	err = tx.Commit()
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("unable to commit transaction for BFLOW table creation")
	}
}
