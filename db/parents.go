package db

import (
	"database/sql"
	"fmt"

	"bflow/log"
)

// LinkChild links the player with the given username to a parent: the child's
// name and email are copied onto the parent row, the parent's name and email
// onto the player row, and a link row is recorded. Re-linking an existing
// pair is a no-op. All writes happen in one transaction.
func LinkChild(childUsername string, parentID int64) error {
	tx, err := session.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var childID int64
	var childName, childEmail string
	err = tx.QueryRow(sqlSelectPlayerByUsername, childUsername).Scan(&childID,
		&childName, &childEmail)
	if err == sql.ErrNoRows {
		return fmt.Errorf("child %q: %w", childUsername, ErrNotFound)
	}
	if err != nil {
		return err
	}

	var parentName, parentEmail string
	err = tx.QueryRow(sqlSelectParentNameEmail, parentID).Scan(&parentName,
		&parentEmail)
	if err == sql.ErrNoRows {
		return fmt.Errorf("parent %d: %w", parentID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(sqlUpdateParentChild, childName, childEmail, parentID); err != nil {
		return err
	}
	if _, err := tx.Exec(sqlUpdatePlayerParent, parentName, parentEmail, childID); err != nil {
		return err
	}
	if _, err := tx.Exec(sqlInsertParentPlayer, parentID, childID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"child":     childUsername,
		"parent_id": parentID,
	}).Debug("child linked to parent")
	return nil
}
