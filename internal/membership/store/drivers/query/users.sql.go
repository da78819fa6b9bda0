package query

import (
	"context"
	"time"
)

const userColumns = `id, email, firstname, lastname, phone, roles, created_at, updated_at, deleted_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID, &u.Email, &u.Firstname, &u.Lastname, &u.Phone, &u.Roles,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	return u, err
}

type CreateUserParams struct {
	ID        string
	Email     string
	Firstname string
	Lastname  string
	Phone     string
	Roles     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const createUser = `INSERT INTO users (id, email, firstname, lastname, phone, roles, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.exec(ctx, createUser,
		arg.ID, arg.Email, arg.Firstname, arg.Lastname, arg.Phone, arg.Roles,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	return scanUser(q.queryRow(ctx, getUserByID, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ? AND deleted_at IS NULL`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.queryRow(ctx, getUserByEmail, email))
}

const listUsers = `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at, id`

func (q *Queries) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	stmt, args := paginate(listUsers, nil, limit, offset)
	rows, err := q.query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

type UpdateUserParams struct {
	ID        string
	Email     string
	Firstname string
	Lastname  string
	Phone     string
	UpdatedAt time.Time
}

const updateUser = `UPDATE users SET email = ?, firstname = ?, lastname = ?, phone = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (int64, error) {
	return q.exec(ctx, updateUser,
		arg.Email, arg.Firstname, arg.Lastname, arg.Phone, arg.UpdatedAt, arg.ID,
	)
}

const updateUserRoles = `UPDATE users SET roles = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) UpdateUserRoles(ctx context.Context, id, roles string, at time.Time) (int64, error) {
	return q.exec(ctx, updateUserRoles, roles, at, id)
}

const softDeleteUser = `UPDATE users SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) SoftDeleteUser(ctx context.Context, id string, at time.Time) (int64, error) {
	return q.exec(ctx, softDeleteUser, at, at, id)
}
