package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
)

const userSearchLimit = 10

// defaultCategories สร้างให้ user ใหม่ทุกคนตอน register
var defaultCategories = []struct {
	Name  string
	Color string
	Icon  string
}{
	{"Personal", "#6366f1", "🏠"},
	{"Work", "#ef4444", "💼"},
	{"Shopping", "#22c55e", "🛒"},
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	prefsRepo    repositories.PreferencesRepository
	activity     services.ActivityService
	jwtSecret    string
	jwtExpiry    time.Duration
}

func NewUserService(
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	prefsRepo repositories.PreferencesRepository,
	activity services.ActivityService,
	jwtSecret string,
	jwtExpiryHours int,
) services.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		prefsRepo:    prefsRepo,
		activity:     activity,
		jwtSecret:    jwtSecret,
		jwtExpiry:    time.Duration(jwtExpiryHours) * time.Hour,
	}
}

// Register สร้าง user ใหม่พร้อม default categories และ preferences
// คืน token ด้วยเพื่อให้ client login ต่อได้ทันที
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already exists", "email", req.Email)
		return "", nil, errors.New("email already exists")
	}

	existingUser, _ = s.userRepo.GetByUsername(ctx, req.Username)
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return "", nil, errors.New("username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		ID:              uuid.New(),
		Email:           req.Email,
		Username:        req.Username,
		Password:        string(hashedPassword),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ThemePreference: "light",
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return "", nil, err
	}

	// default categories และ preferences เป็นของแถม ถ้าพลาดไม่ต้อง fail ทั้ง registration
	for _, c := range defaultCategories {
		category := &models.Category{
			ID:     uuid.New(),
			Name:   c.Name,
			UserID: user.ID,
			Color:  c.Color,
			Icon:   c.Icon,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			logger.WarnContext(ctx, "Failed to create default category",
				"user_id", user.ID, "category", c.Name, "error", err)
		}
	}

	prefs := &models.UserPreferences{
		ID:                 uuid.New(),
		UserID:             user.ID,
		EmailReminders:     true,
		EmailWeeklySummary: true,
		DefaultView:        "list",
		ItemsPerPage:       20,
		ShowCompleted:      true,
		DefaultPriority:    models.PriorityMedium,
		AllowSharing:       true,
	}
	if err := s.prefsRepo.Create(ctx, prefs); err != nil {
		logger.WarnContext(ctx, "Failed to create default preferences", "user_id", user.ID, "error", err)
	}

	if s.activity != nil {
		if err := s.activity.RecordAccount(ctx, user.ID, models.ActionCreated, "Account"); err != nil {
			logger.WarnContext(ctx, "Failed to record account activity", "user_id", user.ID, "error", err)
		}
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// ให้ login ด้วย email ได้เหมือนกัน
		user, err = s.userRepo.GetByEmail(ctx, req.Username)
		if err != nil {
			logger.WarnContext(ctx, "Login failed - user not found", "username", req.Username)
			return "", nil, errors.New("invalid username or password")
		}
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Login failed - account disabled", "user_id", user.ID)
		return "", nil, errors.New("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, errors.New("invalid username or password")
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User not found for profile update", "user_id", userID)
		return nil, errors.New("user not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, _ := s.userRepo.GetByEmail(ctx, *req.Email)
		if existing != nil {
			return nil, errors.New("email already exists")
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.ThemePreference != nil {
		user.ThemePreference = *req.ThemePreference
	}
	if req.NotificationEnabled != nil {
		user.NotificationEnabled = *req.NotificationEnabled
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)

	return user, nil
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, query string, exclude uuid.UUID) ([]*models.User, error) {
	if len(query) < 2 {
		return []*models.User{}, nil
	}
	return s.userRepo.Search(ctx, query, exclude, userSearchLimit)
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.jwtExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *UserServiceImpl) ValidateJWT(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	return s.userRepo.GetByID(context.Background(), userID)
}
