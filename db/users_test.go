package db

import (
	"errors"
	"testing"
)

func TestAddUserInvalidRole(t *testing.T) {
	openTestDB(t)
	_, err := AddUser(Registration{
		Username:  "ana",
		Password:  "secret",
		Email:     "ana@example.com",
		Name:      "Ana",
		BirthYear: 2012,
		Country:   "ES",
		Role:      Role("referee"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestAddPlayerCreatesExerciseRows(t *testing.T) {
	openTestDB(t)
	addTestUser(t, "ana", RolePlayer)
	if got := countRows(t, "player_exercise"); got != 17 {
		t.Errorf("expected one player_exercise row per exercise (17), got %d", got)
	}

	// Coaches and parents get no exercise rows.
	addTestUser(t, "carl", RoleCoach)
	addTestUser(t, "pam", RoleParent)
	if got := countRows(t, "player_exercise"); got != 17 {
		t.Errorf("expected still 17 player_exercise rows, got %d", got)
	}
}

func TestAddUserDuplicate(t *testing.T) {
	openTestDB(t)
	addTestUser(t, "ana", RolePlayer)

	_, err := AddUser(Registration{
		Username:  "ana",
		Password:  "secret",
		Email:     "other@example.com",
		Name:      "Ana",
		BirthYear: 2012,
		Country:   "ES",
		Role:      RolePlayer,
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error for reused username, got %v", err)
	}

	_, err = AddUser(Registration{
		Username:  "ana2",
		Password:  "secret",
		Email:     "ana@example.com",
		Name:      "Ana",
		BirthYear: 2012,
		Country:   "ES",
		Role:      RolePlayer,
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error for reused email, got %v", err)
	}

	// Uniqueness is per role table, not global.
	if _, err := AddUser(Registration{
		Username:  "ana",
		Password:  "secret",
		Email:     "ana@example.com",
		Name:      "Ana",
		BirthYear: 1980,
		Country:   "ES",
		Role:      RoleCoach,
	}); err != nil {
		t.Errorf("expected coach with same username/email to be accepted, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	openTestDB(t)
	coachID := addTestUser(t, "carl", RoleCoach)

	user, err := GetUser(coachID, RoleCoach)
	if err != nil {
		t.Fatalf("unable to get coach: %v", err)
	}
	coach, ok := user.(*Coach)
	if !ok {
		t.Fatalf("expected *Coach, got %T", user)
	}
	if coach.Username != "carl" || coach.Email != "carl@example.com" {
		t.Errorf("unexpected coach record: %+v", coach)
	}

	user, err = GetUser(coachID+1000, RoleCoach)
	if err != nil || user != nil {
		t.Errorf("expected absent user without error, got %v, %v", user, err)
	}

	if _, err := GetUser(coachID, Role("admin")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input error for bad role, got %v", err)
	}
}

func TestGetUserByEmailProbeOrder(t *testing.T) {
	openTestDB(t)

	// The same email can live in all three tables; lookups must prefer the
	// player, then the coach, then the parent.
	shared := Registration{
		Password:  "secret",
		Email:     "shared@example.com",
		Name:      "Shared",
		BirthYear: 2000,
		Country:   "ES",
	}
	for username, role := range map[string]Role{
		"sharedplayer": RolePlayer,
		"sharedcoach":  RoleCoach,
		"sharedparent": RoleParent,
	} {
		registration := shared
		registration.Username = username
		registration.Role = role
		if _, err := AddUser(registration); err != nil {
			t.Fatalf("unable to add %s: %v", role, err)
		}
	}

	user, err := GetUserByEmail("shared@example.com")
	if err != nil {
		t.Fatalf("unable to get user by email: %v", err)
	}
	if user == nil || user.UserRole() != RolePlayer {
		t.Errorf("expected the player record first, got %+v", user)
	}

	user, err = GetUserByEmail("nobody@example.com")
	if err != nil || user != nil {
		t.Errorf("expected absent user without error, got %v, %v", user, err)
	}
}

func TestUpdatePlayer(t *testing.T) {
	openTestDB(t)
	playerID := addTestUser(t, "ana", RolePlayer)

	name := "Ana Martinez"
	shirtNumber := 10
	err := UpdatePlayer(playerID, PlayerUpdate{Name: &name, ShirtNumber: &shirtNumber})
	if err != nil {
		t.Fatalf("unable to update player: %v", err)
	}

	user, err := GetUser(playerID, RolePlayer)
	if err != nil {
		t.Fatal(err)
	}
	player := user.(*Player)
	if player.Name != "Ana Martinez" {
		t.Errorf("expected updated name, got %q", player.Name)
	}
	if !player.ShirtNumber.Valid || player.ShirtNumber.Int64 != 10 {
		t.Errorf("expected shirt number 10, got %+v", player.ShirtNumber)
	}
	if player.Email != "ana@example.com" {
		t.Errorf("email changed unexpectedly: %q", player.Email)
	}
}

func TestUpdateUserErrors(t *testing.T) {
	openTestDB(t)
	addTestUser(t, "ana", RolePlayer)
	playerID := addTestUser(t, "bea", RolePlayer)

	if err := UpdatePlayer(playerID, PlayerUpdate{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input error for empty update, got %v", err)
	}

	name := "Ghost"
	if err := UpdatePlayer(playerID+1000, PlayerUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found error for unknown id, got %v", err)
	}

	email := "ana@example.com"
	if err := UpdatePlayer(playerID, PlayerUpdate{Email: &email}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error for taken email, got %v", err)
	}
}

func TestUpdateCoachAndParent(t *testing.T) {
	openTestDB(t)
	coachID := addTestUser(t, "carl", RoleCoach)
	parentID := addTestUser(t, "pam", RoleParent)

	country := "PT"
	if err := UpdateCoach(coachID, CoachUpdate{Country: &country}); err != nil {
		t.Fatalf("unable to update coach: %v", err)
	}
	user, err := GetUser(coachID, RoleCoach)
	if err != nil {
		t.Fatal(err)
	}
	if got := user.(*Coach).Country; got != "PT" {
		t.Errorf("expected updated country, got %q", got)
	}

	picture := "pam.png"
	if err := UpdateParent(parentID, ParentUpdate{Picture: &picture}); err != nil {
		t.Fatalf("unable to update parent: %v", err)
	}
	user, err = GetUser(parentID, RoleParent)
	if err != nil {
		t.Fatal(err)
	}
	if got := user.(*Parent).Picture; !got.Valid || got.String != "pam.png" {
		t.Errorf("expected updated picture, got %+v", got)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	openTestDB(t)
	playerID := addTestUser(t, "ana", RolePlayer)
	parentID := addTestUser(t, "pam", RoleParent)
	if err := LinkChild("ana", parentID); err != nil {
		t.Fatalf("unable to link child: %v", err)
	}

	if got := countRows(t, "player_exercise"); got != 17 {
		t.Fatalf("expected 17 player_exercise rows before delete, got %d", got)
	}
	if got := countRows(t, "parent_player"); got != 1 {
		t.Fatalf("expected 1 parent_player row before delete, got %d", got)
	}

	if err := DeleteUser(playerID); err != nil {
		t.Fatalf("unable to delete player: %v", err)
	}

	if got := countRows(t, "player"); got != 0 {
		t.Errorf("expected player row to be gone, got %d", got)
	}
	if got := countRows(t, "player_exercise"); got != 0 {
		t.Errorf("expected player_exercise rows to cascade, got %d", got)
	}
	if got := countRows(t, "parent_player"); got != 0 {
		t.Errorf("expected parent_player rows to cascade, got %d", got)
	}
	if got := countRows(t, "parent"); got != 1 {
		t.Errorf("expected the parent row to remain, got %d", got)
	}

	// Deleting an absent id stays a no-op.
	if err := DeleteUser(playerID); err != nil {
		t.Errorf("expected delete of missing player to be a no-op, got %v", err)
	}
}
