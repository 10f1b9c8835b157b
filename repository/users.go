package repository

import (
	"fmt"
	"math/rand"

	"github.com/newshubio/newshub/model"
	. "github.com/newshubio/newshub/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultUserLimit = 100
	// How many generated ids we try before giving up on signup. The id space
	// is 10^9, collisions are vanishingly rare at this dataset's scale.
	maxUserIdAttempts = 10
)

// UserFilter narrows the user listing. When Name is set, StartsWith selects
// prefix match over the default substring match. Matching is
// case-insensitive (ILIKE).
type UserFilter struct {
	Limit      int
	Name       string
	StartsWith bool
}

// NewUserId generates a random id in the NN-NNNNNNN format. Uniqueness is
// the caller's concern, see CreateUser's retry loop.
func NewUserId() string {
	return fmt.Sprintf("%02d-%07d", rand.Intn(100), rand.Intn(10000000))
}

// ListUsers returns at most Limit users ordered by id, optionally filtered
// by display name.
func ListUsers(db *gorm.DB, filter UserFilter) ([]*model.User, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultUserLimit
	}
	query := db.Model(&model.User{}).Order("id").Limit(limit)
	if filter.Name != "" {
		if filter.StartsWith {
			query = query.Where("name ILIKE ?", filter.Name+"%")
		} else {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
	}
	var users []*model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser resolves a user by id, mapping absence to ErrNotFound.
func GetUser(db *gorm.DB, userId string) (*model.User, error) {
	if !IsValidUserId(userId) {
		return nil, NewInvalidArgument("malformed user id", userId)
	}
	var user model.User
	result := db.First(&user, "id = ?", userId)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "user %s", userId)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// CreateUser registers a user under a freshly generated id. A duplicate
// email is a conflict; id collisions are retried against the store.
func CreateUser(db *gorm.DB, name string, email string) (*model.User, error) {
	user := model.User{Name: name, Email: email}
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.Wrapf(ErrConflict, "email %s already registered", email)
		}

		for attempt := 0; ; attempt++ {
			user.Id = NewUserId()
			var taken int64
			if err := tx.Model(&model.User{}).Where("id = ?", user.Id).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken == 0 {
				break
			}
			if attempt >= maxUserIdAttempts {
				return errors.New("cannot generate an unused user id")
			}
		}

		if err := tx.Create(&user).Error; err != nil {
			// Two signups with the same email can both pass the pre-check;
			// the unique index on email settles the race.
			if isUniqueViolation(err) {
				return errors.Wrapf(ErrConflict, "email %s already registered", email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	Log.Info("created user ", user.Id)
	return &user, nil
}

// UpdateUserName renames an existing user.
func UpdateUserName(db *gorm.DB, userId string, name string) (*model.User, error) {
	user, err := GetUser(db, userId)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("name", name).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user together with all of its preference rows. A
// missing user is a negative result, not an error.
func DeleteUser(db *gorm.DB, userId string) (bool, error) {
	if !IsValidUserId(userId) {
		return false, NewInvalidArgument("malformed user id", userId)
	}
	found := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.User{}, "id = ?", userId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true
		// Drop the preference rows in the same transaction instead of
		// relying on the schema-level cascade alone.
		return tx.Where("user_id = ?", userId).
			Delete(&model.UserPreference{}).Error
	})
	if err != nil {
		return false, err
	}
	if found {
		Log.Info("deleted user ", userId, " and its preferences")
	}
	return found, nil
}
