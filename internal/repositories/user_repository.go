package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

// CreateUser inserts the user, its profile row and the default free
// subscription in one transaction. A partial account must never be
// observable.
func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email, phone, password, role, city, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		user.Name, user.Email, user.Phone, user.Password, user.Role, user.City,
	)
	if err != nil {
		tx.Rollback()
		return models.User{}, translateUserInsertError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.User{}, err
	}
	user.ID = int(id)

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, full_name, contact_phone, created_at) VALUES (?, ?, ?, NOW())`,
		user.ID, user.Name, user.Phone,
	); err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, plan_type, is_active, created_at) VALUES (?, ?, 1, NOW())`,
		user.ID, models.PlanFree,
	); err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT id, name, email, phone, role, city, created_at, updated_at FROM users WHERE id = ?`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail includes the password hash for credential checks.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, name, email, phone, password, role, city, created_at, updated_at FROM users WHERE email = ?`

	var (
		user      models.User
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.City, &user.CreatedAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		user.UpdatedAt = &t
	}
	return user, nil
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (models.User, error) {
	var (
		user      models.User
		updatedAt sql.NullTime
	)
	err := scanner.Scan(&user.ID, &user.Name, &user.Email, &user.Phone,
		&user.Role, &user.City, &user.CreatedAt, &updatedAt)
	if err != nil {
		return models.User{}, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		user.UpdatedAt = &t
	}
	return user, nil
}

// translateUserInsertError maps MySQL duplicate-key failures onto the
// sentinel errors the handlers turn into 409 responses.
func translateUserInsertError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		if strings.Contains(strings.ToLower(mysqlErr.Message), "phone") {
			return models.ErrDuplicatePhone
		}
		return models.ErrDuplicateEmail
	}
	return err
}
