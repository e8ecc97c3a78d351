package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	custrepo "github.com/Bart563/KBZ-Computers/internal/repository/customer"
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles customer signup/login flows and session tokens.
type Service struct {
	repo        custrepo.Repository
	secret      []byte
	tokenTTL    time.Duration
	passwordMin int
	now         func() time.Time
}

func New(repo custrepo.Repository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		passwordMin: 8,
		now:         time.Now,
	}
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// Register creates a customer with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"email": "email is required"}}
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"password": fmt.Sprintf("must be at least %d characters", s.passwordMin),
		}}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Customer{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
	})
}

type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// Login validates credentials and returns the customer plus a signed
// session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	claims := sessionClaims{
		UserID: c.ID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  s.now().Unix(),
			ExpiresAt: s.now().Add(s.tokenTTL).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

// VerifyToken returns the user id carried by a valid session token.
func (s *Service) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, userID)
}

type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.Customer, error) {
	return s.repo.Update(ctx, domain.Customer{
		ID:        userID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
	})
}
