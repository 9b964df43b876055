package store

import (
	"context"
	"errors"
	"time"

	"github.com/maisonbelle/salon-api/internal/models"
)

var ErrMissingOpenID = errors.New("openId is required for upsert")

type UpsertUserParams struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// UpsertUser creates the user on first sign-in and refreshes the mutable
// profile fields on every subsequent one. When no explicit role is supplied
// and the OpenID matches the configured owner, the row gets the admin role.
func (s *Store) UpsertUser(ctx context.Context, p UpsertUserParams) (*models.User, error) {
	if p.OpenID == "" {
		return nil, ErrMissingOpenID
	}

	db := s.handle()
	if db == nil {
		return nil, ErrUnavailable
	}

	now := time.Now()
	signedIn := now
	if p.LastSignedIn != nil {
		signedIn = *p.LastSignedIn
	}

	role := ""
	if p.Role != nil {
		role = *p.Role
	} else if s.cfg != nil && s.cfg.OwnerOpenID != "" && p.OpenID == s.cfg.OwnerOpenID {
		role = models.RoleAdmin
	}

	var user models.User
	err := db.WithContext(ctx).Where("open_id = ?", p.OpenID).First(&user).Error
	switch {
	case errors.Is(err, ErrNotFound):
		user = models.User{
			OpenID:       p.OpenID,
			Role:         models.RoleUser,
			LastSignedIn: signedIn,
		}
		if role != "" {
			user.Role = role
		}
		applyProfile(&user, p)
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil

	case err != nil:
		return nil, err
	}

	applyProfile(&user, p)
	if role != "" {
		user.Role = role
	}
	user.LastSignedIn = signedIn
	user.UpdatedAt = now

	if err := db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func applyProfile(u *models.User, p UpsertUserParams) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.LoginMethod != nil {
		u.LoginMethod = *p.LoginMethod
	}
}

func (s *Store) GetUserByOpenID(ctx context.Context, openID string) (*models.User, error) {
	db := s.handle()
	if db == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	db := s.handle()
	if db == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
