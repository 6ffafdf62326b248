package db

// Tables
const playerTable = `CREATE TABLE IF NOT EXISTS player (
  id           INTEGER PRIMARY KEY AUTOINCREMENT
                       NOT NULL,
  username     STRING  NOT NULL
                       UNIQUE,
  password     STRING  NOT NULL,
  email        STRING  NOT NULL
                       UNIQUE,
  name         STRING  NOT NULL,
  picture      STRING,
  birth_year   INTEGER NOT NULL,
  country      STRING  NOT NULL,
  number       INTEGER DEFAULT 0,
  parent       STRING,
  parent_email STRING,
  parent_phone STRING,
  coach        STRING,
  coach_email  STRING,
  coach_phone  STRING,
  team         STRING,
  shirt_number INTEGER,
  team_id      INTEGER REFERENCES team (id)
                       ON DELETE SET NULL);`

const coachTable = `CREATE TABLE IF NOT EXISTS coach (
  id         INTEGER PRIMARY KEY AUTOINCREMENT
                     NOT NULL,
  username   STRING  NOT NULL
                     UNIQUE,
  password   STRING  NOT NULL,
  email      STRING  NOT NULL
                     UNIQUE,
  name       STRING  NOT NULL,
  picture    STRING,
  birth_year INTEGER NOT NULL,
  country    STRING  NOT NULL,
  team       STRING,
  team_id    INTEGER REFERENCES team (id)
                     ON DELETE SET NULL);`

const teamTable = `CREATE TABLE IF NOT EXISTS team (
  id       INTEGER PRIMARY KEY AUTOINCREMENT
                   NOT NULL,
  name     STRING  NOT NULL
                   UNIQUE,
  coach_id INTEGER REFERENCES coach (id)
                   NOT NULL);`

const parentTable = `CREATE TABLE IF NOT EXISTS parent (
  id          INTEGER PRIMARY KEY AUTOINCREMENT
                      NOT NULL,
  username    STRING  NOT NULL
                      UNIQUE,
  password    STRING  NOT NULL,
  email       STRING  NOT NULL
                      UNIQUE,
  name        STRING  NOT NULL,
  picture     STRING,
  birth_year  INTEGER NOT NULL,
  country     STRING  NOT NULL,
  child_name  STRING,
  child_email STRING);`

const categoryTable = `CREATE TABLE IF NOT EXISTS category (
  id   INTEGER PRIMARY KEY AUTOINCREMENT
               NOT NULL,
  name STRING  NOT NULL
               UNIQUE);`

const exerciseTable = `CREATE TABLE IF NOT EXISTS exercise (
  id          INTEGER PRIMARY KEY AUTOINCREMENT
                      NOT NULL,
  category_id INTEGER REFERENCES category (id)
                      ON DELETE CASCADE
                      NOT NULL,
  name        STRING  NOT NULL,
  UNIQUE (category_id, name));`

const parentPlayerTable = `CREATE TABLE IF NOT EXISTS parent_player (
  id        INTEGER PRIMARY KEY AUTOINCREMENT
                    NOT NULL,
  parent_id INTEGER REFERENCES parent (id)
                    ON DELETE CASCADE
                    NOT NULL,
  player_id INTEGER REFERENCES player (id)
                    ON DELETE CASCADE
                    NOT NULL,
  UNIQUE (parent_id, player_id));`

const playerExerciseTable = `CREATE TABLE IF NOT EXISTS player_exercise (
  id          INTEGER PRIMARY KEY AUTOINCREMENT
                      NOT NULL,
  player_id   INTEGER REFERENCES player (id)
                      ON DELETE CASCADE
                      NOT NULL,
  exercise_id INTEGER REFERENCES exercise (id)
                      ON DELETE CASCADE
                      NOT NULL,
  result      STRING,
  rating      INTEGER CHECK (rating BETWEEN 1 AND 5),
  UNIQUE (player_id, exercise_id));`

// Reference data queries
const sqlInsertCategory = `INSERT OR IGNORE INTO category (name)
  VALUES (?);`

const sqlSelectCategoryIDByName = `SELECT id
  FROM category
  WHERE name = ?`

const sqlInsertExercise = `INSERT OR IGNORE INTO exercise (category_id, name)
  VALUES (?, ?);`

// User table queries
const sqlInsertPlayer = `INSERT INTO player (
  username, password, email, name, birth_year, country, number, team_id)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

const sqlInsertCoach = `INSERT INTO coach (
  username, password, email, name, birth_year, country, team_id)
  VALUES (?, ?, ?, ?, ?, ?, ?);`

const sqlInsertParent = `INSERT INTO parent (
  username, password, email, name, birth_year, country)
  VALUES (?, ?, ?, ?, ?, ?);`

const playerColumns = `id, username, password, email, name, picture, birth_year, country,
    number, parent, parent_email, parent_phone, coach, coach_email, coach_phone,
    team, shirt_number, team_id`

const coachColumns = `id, username, password, email, name, picture, birth_year, country,
    team, team_id`

const parentColumns = `id, username, password, email, name, picture, birth_year, country,
    child_name, child_email`

const sqlSelectPlayerByID = `SELECT ` + playerColumns + `
  FROM player
  WHERE id = ?`

const sqlSelectCoachByID = `SELECT ` + coachColumns + `
  FROM coach
  WHERE id = ?`

const sqlSelectParentByID = `SELECT ` + parentColumns + `
  FROM parent
  WHERE id = ?`

const sqlSelectPlayerByEmail = `SELECT ` + playerColumns + `
  FROM player
  WHERE email = ?`

const sqlSelectCoachByEmail = `SELECT ` + coachColumns + `
  FROM coach
  WHERE email = ?`

const sqlSelectParentByEmail = `SELECT ` + parentColumns + `
  FROM parent
  WHERE email = ?`

const sqlSelectPlayerByUsername = `SELECT id, name, email
  FROM player
  WHERE username = ?`

const sqlDeletePlayer = `DELETE FROM player
  WHERE id = ?`

// Team table queries
const sqlInsertTeam = `INSERT INTO team (name, coach_id)
  VALUES (?, ?);`

const sqlSelectTeamIDByName = `SELECT id
  FROM team
  WHERE name = ?`

const sqlSelectTeamIDByCoach = `SELECT id
  FROM team
  WHERE coach_id = ?`

const sqlSelectTeamByName = `SELECT id, coach_id
  FROM team
  WHERE name = ?`

const sqlSelectTeamByCoach = `SELECT id, name, coach_id
  FROM team
  WHERE coach_id = ?`

const sqlSelectCoachNameEmail = `SELECT name, email
  FROM coach
  WHERE id = ?`

const sqlUpdatePlayerTeam = `UPDATE player
  SET team_id = ?, coach = ?, coach_email = ?
  WHERE id = ?`

// Parent linking queries
const sqlSelectParentNameEmail = `SELECT name, email
  FROM parent
  WHERE id = ?`

const sqlUpdateParentChild = `UPDATE parent
  SET child_name = ?, child_email = ?
  WHERE id = ?`

const sqlUpdatePlayerParent = `UPDATE player
  SET parent = ?, parent_email = ?
  WHERE id = ?`

const sqlInsertParentPlayer = `INSERT OR IGNORE INTO parent_player (parent_id, player_id)
  VALUES (?, ?);`

// Exercise queries
const sqlSelectExerciseIDs = `SELECT id
  FROM exercise`

const sqlSelectExerciseIDByName = `SELECT id
  FROM exercise
  WHERE name = ?`

const sqlInsertPlayerExercise = `INSERT INTO player_exercise (player_id, exercise_id)
  VALUES (?, ?);`

const sqlSelectPlayerProgress = `SELECT c.name, e.name, pe.result, pe.rating
  FROM category c
  JOIN exercise e ON c.id = e.category_id
  LEFT JOIN player_exercise pe ON e.id = pe.exercise_id AND pe.player_id = ?
  ORDER BY c.id, e.id`
