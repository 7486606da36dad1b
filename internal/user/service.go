package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wecare/internal/auth"
	"wecare/internal/triage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type RegisterRequest struct {
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	BloodGroup  string     `json:"blood_group"`
	Address     string     `json:"address"`
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	// ParseToken implements auth.TokenParser.
	ParseToken(token string) (*auth.Identity, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	AddHistory(ctx context.Context, userID uuid.UUID, h *MedicalHistory) error
	ListHistory(ctx context.Context, userID uuid.UUID) ([]MedicalHistory, error)
	DeleteHistory(ctx context.Context, userID, id uuid.UUID) error

	// ListConditions implements triage.HistoryProvider.
	ListConditions(ctx context.Context, userID uuid.UUID) ([]triage.HistoryEntry, error)
}

type service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) Service {
	return &service{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		BloodGroup:   req.BloodGroup,
		Address:      req.Address,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

type claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

func (s *service) Login(ctx context.Context, username, password string) (string, *User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		IsAdmin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return signed, u, nil
}

func (s *service) ParseToken(tokenStr string) (*auth.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject")
	}
	return &auth.Identity{UserID: id, IsAdmin: c.IsAdmin}, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) AddHistory(ctx context.Context, userID uuid.UUID, h *MedicalHistory) error {
	if h.Condition == "" {
		return fmt.Errorf("condition is required")
	}
	h.ID = uuid.New()
	h.UserID = userID
	return s.repo.CreateHistory(ctx, h)
}

func (s *service) ListHistory(ctx context.Context, userID uuid.UUID) ([]MedicalHistory, error) {
	return s.repo.ListHistory(ctx, userID)
}

func (s *service) DeleteHistory(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteHistory(ctx, userID, id)
}

func (s *service) ListConditions(ctx context.Context, userID uuid.UUID) ([]triage.HistoryEntry, error) {
	entries, err := s.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]triage.HistoryEntry, 0, len(entries))
	for _, h := range entries {
		out = append(out, triage.HistoryEntry{
			Condition: h.Condition,
			Notes:     h.Notes,
			IsChronic: h.IsChronic,
		})
	}
	return out, nil
}
