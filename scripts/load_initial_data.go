package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flagfootball-backend/internal/config"
	"flagfootball-backend/internal/database"
	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	Name          string `yaml:"name"`
	Category      string `yaml:"category"`
	CoachUsername string `yaml:"coach_username"`
	CoachName     string `yaml:"coach_name"`
	LogoURL       string `yaml:"logo_url"`
	Color1        string `yaml:"color1"`
	Color2        string `yaml:"color2"`
}

type PlayerData struct {
	Name         string `yaml:"name"`
	Username     string `yaml:"username,omitempty"`
	TeamName     string `yaml:"team_name,omitempty"`
	JerseyNumber int    `yaml:"jersey_number"`
	Position     string `yaml:"position"`
}

type GameData struct {
	HomeTeam string `yaml:"home_team"`
	AwayTeam string `yaml:"away_team"`
	GameDate string `yaml:"game_date"`
	GameTime string `yaml:"game_time"`
	Venue    string `yaml:"venue"`
	Field    string `yaml:"field"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

func main() {
	log.Println("🚀 Loading initial league data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if errors.Is(err, apperrors.ErrSchemaOutdated) {
			return nil, err
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadFiles(dataDir, "users", func(f UsersFile) []UserData { return f.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	teams, err := loadFiles(dataDir, "teams", func(f TeamsFile) []TeamData { return f.Teams })
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	players, err := loadFiles(dataDir, "players", func(f PlayersFile) []PlayerData { return f.Players })
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	games, err := loadFiles(dataDir, "games", func(f GamesFile) []GameData { return f.Games })
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create roster rows
	playerCreated := 0
	for _, playerData := range players {
		created, err := createPlayer(db, playerData, userMap, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create player %s: %v", playerData.Name, err)
			continue
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(players))

	// Create games
	gameCreated := 0
	for _, gameData := range games {
		created, err := createGame(db, gameData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create game %s vs %s: %v", gameData.HomeTeam, gameData.AwayTeam, err)
			continue
		}
		if created {
			gameCreated++
		}
	}
	log.Printf("📋 Games: %d created, %d total", gameCreated, len(games))

	return nil
}

// loadFiles reads every .yaml file under dataDir whose path contains match and collects its entries
func loadFiles[F any, T any](dataDir, match string, entries func(F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), match) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, entries(file)...)
		}
		return nil
	})

	return all, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("username = ?", userData.Username).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.UserRoleCoach
	if userData.Role == string(models.UserRolePlayer) {
		role = models.UserRolePlayer
	}

	user = models.User{
		Username:     userData.Username,
		Email:        strings.ToLower(userData.Email),
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{
		Name:      teamData.Name,
		CoachName: teamData.CoachName,
		LogoURL:   teamData.LogoURL,
		Color1:    teamData.Color1,
		Color2:    teamData.Color2,
	}
	if teamData.Category != "" {
		category := teamData.Category
		team.Category = &category
	}
	if teamData.CoachUsername != "" {
		coach := userMap[teamData.CoachUsername]
		if coach == nil {
			return nil, false, fmt.Errorf("coach %s not found for team %s", teamData.CoachUsername, teamData.Name)
		}
		team.CoachID = &coach.ID
	}

	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createPlayer(db *gorm.DB, playerData PlayerData, userMap map[string]*models.User, teamMap map[string]*models.Team) (bool, error) {
	player := models.Player{
		Name:         playerData.Name,
		JerseyNumber: playerData.JerseyNumber,
		Position:     playerData.Position,
	}

	query := db.Model(&models.Player{}).Where("LOWER(name) = LOWER(?)", playerData.Name)
	if playerData.TeamName != "" {
		team := teamMap[playerData.TeamName]
		if team == nil {
			return false, fmt.Errorf("team %s not found", playerData.TeamName)
		}
		player.TeamID = &team.ID
		query = query.Where("team_id = ?", team.ID)
	} else {
		query = query.Where("team_id IS NULL")
	}
	if playerData.Username != "" {
		user := userMap[playerData.Username]
		if user == nil {
			return false, fmt.Errorf("user %s not found", playerData.Username)
		}
		player.UserID = &user.ID
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query player: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := db.Create(&player).Error; err != nil {
		return false, fmt.Errorf("failed to create player: %w", err)
	}
	return true, nil
}

func createGame(db *gorm.DB, gameData GameData) (bool, error) {
	date, err := time.Parse("2006-01-02", gameData.GameDate)
	if err != nil {
		return false, fmt.Errorf("invalid game_date %q: %w", gameData.GameDate, err)
	}

	var count int64
	err = db.Model(&models.Game{}).
		Where("home_team = ? AND away_team = ? AND game_date = ?", gameData.HomeTeam, gameData.AwayTeam, date).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query game: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	status := models.GameStatusScheduled
	if gameData.Status != "" {
		status = models.GameStatus(gameData.Status)
	}

	game := models.Game{
		HomeTeam: gameData.HomeTeam,
		AwayTeam: gameData.AwayTeam,
		GameDate: datatypes.Date(date),
		GameTime: gameData.GameTime,
		Venue:    gameData.Venue,
		Field:    gameData.Field,
		Category: gameData.Category,
		Status:   status,
	}
	if err := db.Create(&game).Error; err != nil {
		return false, fmt.Errorf("failed to create game: %w", err)
	}
	return true, nil
}
