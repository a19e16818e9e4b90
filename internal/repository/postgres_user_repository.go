package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradejournal-backend/internal/domain"
)

// PostgresUserRepository stores users in Postgres.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func (r *PostgresUserRepository) Create(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	_, err := r.pool.Exec(context.Background(), `
		insert into users(id, email, username, first_name, last_name, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7)
	`,
		user.ID,
		user.Email,
		user.Username,
		nullableText(user.FirstName),
		nullableText(user.LastName),
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(id string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		select id, email, username, first_name, last_name, created_at, updated_at
		from users where id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(email string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		select id, email, username, first_name, last_name, created_at, updated_at
		from users where email = $1
	`, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (r *PostgresUserRepository) GetAll() []*domain.User {
	rows, err := r.pool.Query(context.Background(), `
		select id, email, username, first_name, last_name, created_at, updated_at
		from users order by created_at desc
	`)
	if err != nil {
		return []*domain.User{}
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, scanErr := scanUser(rows)
		if scanErr != nil {
			continue
		}
		users = append(users, u)
	}
	return users
}

func (r *PostgresUserRepository) Update(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	tag, err := r.pool.Exec(context.Background(), `
		update users set
			email=$2, username=$3, first_name=$4, last_name=$5, updated_at=$6
		where id=$1
	`,
		user.ID,
		user.Email,
		user.Username,
		nullableText(user.FirstName),
		nullableText(user.LastName),
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (r *PostgresUserRepository) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `delete from users where id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	var firstName, lastName pgtype.Text

	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&firstName,
		&lastName,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.FirstName = textPtr(firstName)
	u.LastName = textPtr(lastName)
	return &u, nil
}

// compile-time check
var _ domain.UserRepository = (*PostgresUserRepository)(nil)
