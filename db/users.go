package db

import (
	"database/sql"
	"fmt"
	"strings"

	"bflow/log"
)

// Role selects which table a person's record lives in.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleParent:
		return true
	}
	return false
}

// User is the role-tagged view of a person record. The concrete type is
// *Player, *Coach or *Parent.
type User interface {
	UserRole() Role
}

type Player struct {
	ID          int64
	Username    string
	Password    string
	Email       string
	Name        string
	Picture     sql.NullString
	BirthYear   int
	Country     string
	Number      sql.NullInt64
	Parent      sql.NullString
	ParentEmail sql.NullString
	ParentPhone sql.NullString
	Coach       sql.NullString
	CoachEmail  sql.NullString
	CoachPhone  sql.NullString
	Team        sql.NullString
	ShirtNumber sql.NullInt64
	TeamID      sql.NullInt64
}

func (*Player) UserRole() Role { return RolePlayer }

type Coach struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	Name      string
	Picture   sql.NullString
	BirthYear int
	Country   string
	Team      sql.NullString
	TeamID    sql.NullInt64
}

func (*Coach) UserRole() Role { return RoleCoach }

type Parent struct {
	ID         int64
	Username   string
	Password   string
	Email      string
	Name       string
	Picture    sql.NullString
	BirthYear  int
	Country    string
	ChildName  sql.NullString
	ChildEmail sql.NullString
}

func (*Parent) UserRole() Role { return RoleParent }

// Registration carries the fields common to all roles plus the optional
// player/coach extras. Number defaults to 0 and TeamID to null when absent.
type Registration struct {
	Username  string
	Password  string
	Email     string
	Name      string
	BirthYear int
	Country   string
	Role      Role
	Number    int
	TeamID    sql.NullInt64
}

var stmtSelectPlayerByID *sql.Stmt
var stmtSelectCoachByID *sql.Stmt
var stmtSelectParentByID *sql.Stmt
var stmtSelectPlayerByEmail *sql.Stmt
var stmtSelectCoachByEmail *sql.Stmt
var stmtSelectParentByEmail *sql.Stmt

// AddUser inserts a new user into the table selected by the registration
// role and returns the assigned id. Registering a player also creates one
// blank player_exercise row per seeded exercise, in the same transaction.
func AddUser(reg Registration) (int64, error) {
	if !reg.Role.Valid() {
		return 0, fmt.Errorf("role %q: %w", reg.Role, ErrInvalidInput)
	}

	tx, err := session.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var result sql.Result
	switch reg.Role {
	case RolePlayer:
		result, err = tx.Exec(sqlInsertPlayer,
			reg.Username, reg.Password, reg.Email, reg.Name, reg.BirthYear,
			reg.Country, reg.Number, reg.TeamID)
	case RoleCoach:
		result, err = tx.Exec(sqlInsertCoach,
			reg.Username, reg.Password, reg.Email, reg.Name, reg.BirthYear,
			reg.Country, reg.TeamID)
	case RoleParent:
		result, err = tx.Exec(sqlInsertParent,
			reg.Username, reg.Password, reg.Email, reg.Name, reg.BirthYear,
			reg.Country)
	}
	if err != nil {
		if uniqueViolation(err) {
			return 0, fmt.Errorf("%s username or email: %w", reg.Role, ErrDuplicate)
		}
		if foreignKeyViolation(err) {
			return 0, fmt.Errorf("team reference: %w", ErrInvalidInput)
		}
		return 0, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if reg.Role == RolePlayer {
		if err := addPlayerExercises(tx, userID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"id":       userID,
		"username": reg.Username,
		"role":     reg.Role,
	}).Debug("user added")
	return userID, nil
}

// addPlayerExercises fans out one blank result row per currently seeded
// exercise for a freshly registered player.
func addPlayerExercises(tx *sql.Tx, playerID int64) error {
	rows, err := tx.Query(sqlSelectExerciseIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	var exerciseIDs []int64
	for rows.Next() {
		var exerciseID int64
		if err := rows.Scan(&exerciseID); err != nil {
			return err
		}
		exerciseIDs = append(exerciseIDs, exerciseID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	stmt, err := tx.Prepare(sqlInsertPlayerExercise)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, exerciseID := range exerciseIDs {
		if _, err := stmt.Exec(playerID, exerciseID); err != nil {
			return err
		}
	}
	return nil
}

// GetUser retrieves a user by id within the given role's table. A missing row
// yields (nil, nil).
func GetUser(id int64, role Role) (User, error) {
	switch role {
	case RolePlayer:
		player, err := scanPlayer(stmtSelectPlayerByID.QueryRow(id))
		if player == nil || err != nil {
			return nil, err
		}
		return player, nil
	case RoleCoach:
		coach, err := scanCoach(stmtSelectCoachByID.QueryRow(id))
		if coach == nil || err != nil {
			return nil, err
		}
		return coach, nil
	case RoleParent:
		parent, err := scanParent(stmtSelectParentByID.QueryRow(id))
		if parent == nil || err != nil {
			return nil, err
		}
		return parent, nil
	}
	return nil, fmt.Errorf("role %q: %w", role, ErrInvalidInput)
}

// GetUserByEmail probes the player, coach and parent tables in that order and
// returns the first match. No match yields (nil, nil).
func GetUserByEmail(email string) (User, error) {
	player, err := scanPlayer(stmtSelectPlayerByEmail.QueryRow(email))
	if err != nil {
		return nil, err
	}
	if player != nil {
		return player, nil
	}

	coach, err := scanCoach(stmtSelectCoachByEmail.QueryRow(email))
	if err != nil {
		return nil, err
	}
	if coach != nil {
		return coach, nil
	}

	parent, err := scanParent(stmtSelectParentByEmail.QueryRow(email))
	if err != nil {
		return nil, err
	}
	if parent != nil {
		return parent, nil
	}
	return nil, nil
}

func scanPlayer(row *sql.Row) (*Player, error) {
	var p Player
	err := row.Scan(&p.ID, &p.Username, &p.Password, &p.Email, &p.Name,
		&p.Picture, &p.BirthYear, &p.Country, &p.Number, &p.Parent,
		&p.ParentEmail, &p.ParentPhone, &p.Coach, &p.CoachEmail, &p.CoachPhone,
		&p.Team, &p.ShirtNumber, &p.TeamID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanCoach(row *sql.Row) (*Coach, error) {
	var c Coach
	err := row.Scan(&c.ID, &c.Username, &c.Password, &c.Email, &c.Name,
		&c.Picture, &c.BirthYear, &c.Country, &c.Team, &c.TeamID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanParent(row *sql.Row) (*Parent, error) {
	var p Parent
	err := row.Scan(&p.ID, &p.Username, &p.Password, &p.Email, &p.Name,
		&p.Picture, &p.BirthYear, &p.Country, &p.ChildName, &p.ChildEmail)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PlayerUpdate, CoachUpdate and ParentUpdate name the profile columns a
// caller may change; nil fields are left untouched. Relationship columns
// (team and coach/parent copies) are owned by JoinTeam and LinkChild and are
// not reachable from here.
type PlayerUpdate struct {
	Password    *string
	Email       *string
	Name        *string
	Picture     *string
	BirthYear   *int
	Country     *string
	Number      *int
	ShirtNumber *int
}

type CoachUpdate struct {
	Password  *string
	Email     *string
	Name      *string
	Picture   *string
	BirthYear *int
	Country   *string
}

type ParentUpdate struct {
	Password  *string
	Email     *string
	Name      *string
	Picture   *string
	BirthYear *int
	Country   *string
}

func UpdatePlayer(id int64, update PlayerUpdate) error {
	set := newSetClause()
	set.addString("password", update.Password)
	set.addString("email", update.Email)
	set.addString("name", update.Name)
	set.addString("picture", update.Picture)
	set.addInt("birth_year", update.BirthYear)
	set.addString("country", update.Country)
	set.addInt("number", update.Number)
	set.addInt("shirt_number", update.ShirtNumber)
	return updateRecord("player", id, set)
}

func UpdateCoach(id int64, update CoachUpdate) error {
	set := newSetClause()
	set.addString("password", update.Password)
	set.addString("email", update.Email)
	set.addString("name", update.Name)
	set.addString("picture", update.Picture)
	set.addInt("birth_year", update.BirthYear)
	set.addString("country", update.Country)
	return updateRecord("coach", id, set)
}

func UpdateParent(id int64, update ParentUpdate) error {
	set := newSetClause()
	set.addString("password", update.Password)
	set.addString("email", update.Email)
	set.addString("name", update.Name)
	set.addString("picture", update.Picture)
	set.addInt("birth_year", update.BirthYear)
	set.addString("country", update.Country)
	return updateRecord("parent", id, set)
}

// setClause accumulates column assignments; columns come only from the fixed
// names above, never from callers.
type setClause struct {
	assignments []string
	args        []interface{}
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) addString(column string, value *string) {
	if value != nil {
		s.assignments = append(s.assignments, column+" = ?")
		s.args = append(s.args, *value)
	}
}

func (s *setClause) addInt(column string, value *int) {
	if value != nil {
		s.assignments = append(s.assignments, column+" = ?")
		s.args = append(s.args, *value)
	}
}

func updateRecord(table string, id int64, set *setClause) error {
	if len(set.assignments) == 0 {
		return fmt.Errorf("no fields to update: %w", ErrInvalidInput)
	}

	query := "UPDATE " + table + " SET " + strings.Join(set.assignments, ", ") +
		" WHERE id = ?"
	args := append(set.args, id)
	result, err := session.Exec(query, args...)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("%s email: %w", table, ErrDuplicate)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}

	log.WithFields(log.Fields{
		"table": table,
		"id":    id,
	}).Debug("user updated")
	return nil
}

// DeleteUser removes a player row. The store cascades the removal to the
// player's exercise results and parent links. Deleting an id with no row is a
// no-op.
func DeleteUser(id int64) error {
	if _, err := session.Exec(sqlDeletePlayer, id); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"id": id,
	}).Debug("player deleted")
	return nil
}

func prepareUsersStatements() {
	log.Debug("preparing users statements")
	stmtSelectPlayerByID = prepare(sqlSelectPlayerByID)
	stmtSelectCoachByID = prepare(sqlSelectCoachByID)
	stmtSelectParentByID = prepare(sqlSelectParentByID)
	stmtSelectPlayerByEmail = prepare(sqlSelectPlayerByEmail)
	stmtSelectCoachByEmail = prepare(sqlSelectCoachByEmail)
	stmtSelectParentByEmail = prepare(sqlSelectParentByEmail)
	log.Debug("users statements prepared")
}

func closePreparedUsersStatements() {
	log.Debug("closing prepared users statements")
	stmtSelectPlayerByID.Close()
	stmtSelectCoachByID.Close()
	stmtSelectParentByID.Close()
	stmtSelectPlayerByEmail.Close()
	stmtSelectCoachByEmail.Close()
	stmtSelectParentByEmail.Close()
	log.Debug("prepared users statements closed")
}
