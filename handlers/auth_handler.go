package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/youth_platform/auth"
	config "github.com/skillbridge/youth_platform/configs"
	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

var validate = validator.New()

const tenantTokenExpiry = 24 * time.Hour

type RegisterRequest struct {
	Username       string   `json:"username" validate:"required,min=3"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	MunicipalityID *string  `json:"municipality_id,omitempty"`
	EducationLevel *string  `json:"education_level,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUser creates a youth account and its profile atomically.
func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var newUser models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		newUser = models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: hashedPassword,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("username already exists")
			}
			return err
		}

		profile := models.Profile{
			UserID:         newUser.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			EducationLevel: req.EducationLevel,
			Skills:         req.Skills,
		}
		if req.MunicipalityID != nil {
			municipalityID, err := uuid.Parse(*req.MunicipalityID)
			if err != nil {
				return errors.New("invalid municipality id")
			}
			profile.MunicipalityID = &municipalityID
		}
		return tx.Create(&profile).Error
	})

	if err != nil {
		if err.Error() == "username already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already exists"})
		}
		if err.Error() == "invalid municipality id" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid municipality id"})
		}
		log.Printf("Failed to register user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        newUser.ID.String(),
		Username:  newUser.Username,
		Email:     newUser.Email,
		Role:      newUser.Role,
		CreatedAt: newUser.CreatedAt,
	})
}

func lookupUser(username string) (*auth.Principal, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &auth.Principal{
		ID:           user.ID,
		Username:     user.Username,
		Role:         user.Role,
		Type:         auth.TypeUser,
		IsActive:     user.IsActive,
		PasswordHash: user.Password,
	}, nil
}

func lookupCompany(username string) (*auth.Principal, error) {
	var company models.Company
	if err := database.DB.Where("username = ?", username).First(&company).Error; err != nil {
		return nil, err
	}
	return &auth.Principal{
		ID:           company.ID,
		Username:     company.Username,
		Role:         "company",
		Type:         auth.TypeCompany,
		IsActive:     company.IsActive,
		PasswordHash: company.Password,
	}, nil
}

func lookupInstitution(username string) (*auth.Principal, error) {
	var institution models.Institution
	if err := database.DB.Where("username = ?", username).First(&institution).Error; err != nil {
		return nil, err
	}
	return &auth.Principal{
		ID:           institution.ID,
		Username:     institution.Username,
		Role:         "institution",
		Type:         auth.TypeInstitution,
		IsActive:     institution.IsActive,
		PasswordHash: institution.Password,
	}, nil
}

func lookupMunicipality(username string) (*auth.Principal, error) {
	var municipality models.Municipality
	if err := database.DB.Where("username = ?", username).First(&municipality).Error; err != nil {
		return nil, err
	}
	return &auth.Principal{
		ID:           municipality.ID,
		Username:     municipality.Username,
		Role:         "municipality",
		Type:         auth.TypeMunicipality,
		IsActive:     municipality.IsActive,
		PasswordHash: municipality.Password,
	}, nil
}

func login(c *fiber.Ctx, lookup auth.LookupFunc, expiry time.Duration) (string, *auth.Principal, error) {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return "", nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return "", nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, principal, err := auth.Login(lookup, req.Username, req.Password, config.Config("JWT_SECRET"), expiry)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return "", nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		log.Printf("Failed to issue token: %v", err)
		return "", nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}
	return token, principal, nil
}

// LoginUser authenticates a youth account and issues an access token plus
// a single-use refresh token.
func LoginUser(c *fiber.Ctx) error {
	expiry := config.ConfigDuration("JWT_USER_EXPIRY", tenantTokenExpiry)
	token, principal, err := login(c, lookupUser, expiry)
	if principal == nil {
		return err
	}

	refreshToken, dbErr := issueRefreshToken(principal.ID)
	if dbErr != nil {
		log.Printf("Failed to store refresh token: %v", dbErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.JSON(fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":       principal.ID,
			"username": principal.Username,
			"role":     principal.Role,
		},
	})
}

func LoginCompany(c *fiber.Ctx) error {
	token, principal, err := login(c, lookupCompany, tenantTokenExpiry)
	if principal == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token":   token,
		"company": fiber.Map{"id": principal.ID, "username": principal.Username},
	})
}

func LoginInstitution(c *fiber.Ctx) error {
	token, principal, err := login(c, lookupInstitution, tenantTokenExpiry)
	if principal == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token":       token,
		"institution": fiber.Map{"id": principal.ID, "username": principal.Username},
	})
}

func LoginMunicipality(c *fiber.Ctx) error {
	token, principal, err := login(c, lookupMunicipality, tenantTokenExpiry)
	if principal == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token":        token,
		"municipality": fiber.Map{"id": principal.ID, "username": principal.Username},
	})
}

func issueRefreshToken(userID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(tokenBytes)

	row := models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(config.ConfigDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour)),
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshSession rotates a refresh token: the presented token is revoked
// and a fresh access/refresh pair is issued.
func RefreshSession(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var stored models.RefreshToken
	if err := database.DB.Where("token = ?", req.RefreshToken).First(&stored).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}
	if stored.Revoked || stored.ExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", stored.UserID).Error; err != nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	var newToken string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stored).Update("revoked", true).Error; err != nil {
			return err
		}

		tokenBytes := make([]byte, 32)
		if _, err := rand.Read(tokenBytes); err != nil {
			return err
		}
		newToken = hex.EncodeToString(tokenBytes)
		replacement := models.RefreshToken{
			Token:     newToken,
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(config.ConfigDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour)),
		}
		return tx.Create(&replacement).Error
	})
	if err != nil {
		log.Printf("Failed to rotate refresh token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to refresh session"})
	}

	expiry := config.ConfigDuration("JWT_USER_EXPIRY", tenantTokenExpiry)
	accessToken, err := auth.IssueToken(&auth.Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Type:     auth.TypeUser,
	}, config.Config("JWT_SECRET"), expiry)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": accessToken, "refresh_token": newToken})
}

// Logout revokes the presented refresh token. Revoking an already-revoked
// token succeeds.
func Logout(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	database.DB.Model(&models.RefreshToken{}).
		Where("token = ?", req.RefreshToken).
		Update("revoked", true)

	return c.JSON(fiber.Map{"message": "Logged out"})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// ChangePassword re-verifies the current password before storing a new
// hash. The switch on token type covers all four tenant tables.
func ChangePassword(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var currentHash string
	switch principal.Type {
	case auth.TypeUser:
		var user models.User
		if err := database.DB.First(&user, "id = ?", principal.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		currentHash = user.Password
	case auth.TypeCompany:
		var company models.Company
		if err := database.DB.First(&company, "id = ?", principal.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		currentHash = company.Password
	case auth.TypeInstitution:
		var institution models.Institution
		if err := database.DB.First(&institution, "id = ?", principal.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		currentHash = institution.Password
	case auth.TypeMunicipality:
		var municipality models.Municipality
		if err := database.DB.First(&municipality, "id = ?", principal.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		currentHash = municipality.Password
	default:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown account type"})
	}

	if !auth.VerifyPassword(currentHash, req.CurrentPassword) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var updateErr error
	switch principal.Type {
	case auth.TypeUser:
		updateErr = database.DB.Model(&models.User{}).Where("id = ?", principal.ID).Update("password", newHash).Error
	case auth.TypeCompany:
		updateErr = database.DB.Model(&models.Company{}).Where("id = ?", principal.ID).Update("password", newHash).Error
	case auth.TypeInstitution:
		updateErr = database.DB.Model(&models.Institution{}).Where("id = ?", principal.ID).Update("password", newHash).Error
	case auth.TypeMunicipality:
		updateErr = database.DB.Model(&models.Municipality{}).Where("id = ?", principal.ID).Update("password", newHash).Error
	}
	if updateErr != nil {
		log.Printf("Failed to update password: %v", updateErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password has been changed successfully."})
}
