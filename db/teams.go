package db

import (
	"database/sql"
	"fmt"

	"bflow/log"
)

type Team struct {
	ID      int64
	Name    string
	CoachID int64
}

var stmtSelectTeamByCoach *sql.Stmt

// CreateTeam creates a team owned by the given coach. The team name must be
// unused and a coach may own at most one team.
func CreateTeam(name string, coachID int64) (int64, error) {
	tx, err := session.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(sqlSelectTeamIDByName, name).Scan(&existingID)
	if err == nil {
		return 0, fmt.Errorf("team name %q: %w", name, ErrConflict)
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = tx.QueryRow(sqlSelectTeamIDByCoach, coachID).Scan(&existingID)
	if err == nil {
		return 0, fmt.Errorf("coach %d already has a team: %w", coachID, ErrConflict)
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	result, err := tx.Exec(sqlInsertTeam, name, coachID)
	if err != nil {
		if foreignKeyViolation(err) {
			return 0, fmt.Errorf("coach %d: %w", coachID, ErrNotFound)
		}
		return 0, err
	}
	teamID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"id":       teamID,
		"name":     name,
		"coach_id": coachID,
	}).Debug("team created")
	return teamID, nil
}

// GetTeamByCoach retrieves the team owned by the given coach, or (nil, nil)
// when the coach has none.
func GetTeamByCoach(coachID int64) (*Team, error) {
	var team Team
	err := stmtSelectTeamByCoach.QueryRow(coachID).Scan(&team.ID, &team.Name,
		&team.CoachID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// JoinTeam puts a player on the named team and copies the team's coach name
// and email onto the player row. All writes happen in one transaction.
func JoinTeam(teamName string, playerID int64) error {
	tx, err := session.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var teamID, coachID int64
	err = tx.QueryRow(sqlSelectTeamByName, teamName).Scan(&teamID, &coachID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("team %q: %w", teamName, ErrNotFound)
	}
	if err != nil {
		return err
	}

	var coachName, coachEmail string
	err = tx.QueryRow(sqlSelectCoachNameEmail, coachID).Scan(&coachName, &coachEmail)
	if err == sql.ErrNoRows {
		// Team rows always carry a coach reference; a missing coach row means
		// the store has been corrupted out-of-band.
		return fmt.Errorf("team %q references missing coach %d: %w", teamName,
			coachID, ErrInconsistentState)
	}
	if err != nil {
		return err
	}

	result, err := tx.Exec(sqlUpdatePlayerTeam, teamID, coachName, coachEmail, playerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"team":      teamName,
		"player_id": playerID,
		"coach_id":  coachID,
	}).Debug("player joined team")
	return nil
}

func prepareTeamsStatements() {
	log.Debug("preparing teams statements")
	stmtSelectTeamByCoach = prepare(sqlSelectTeamByCoach)
	log.Debug("teams statements prepared")
}

func closePreparedTeamsStatements() {
	log.Debug("closing prepared teams statements")
	stmtSelectTeamByCoach.Close()
	log.Debug("prepared teams statements closed")
}
