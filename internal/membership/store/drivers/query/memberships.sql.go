package query

import (
	"context"
	"time"
)

const membershipColumns = `id, name, description, price, start_at, end_at, created_at, updated_at, deleted_at`

func scanMembership(s scanner) (Membership, error) {
	var m Membership
	err := s.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.StartAt, &m.EndAt,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	return m, err
}

type CreateMembershipParams struct {
	ID          string
	Name        string
	Description string
	Price       int64
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const createMembership = `INSERT INTO memberships (id, name, description, price, start_at, end_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) CreateMembership(ctx context.Context, arg CreateMembershipParams) error {
	_, err := q.exec(ctx, createMembership,
		arg.ID, arg.Name, arg.Description, arg.Price, arg.StartAt, arg.EndAt,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getMembershipByID = `SELECT ` + membershipColumns + ` FROM memberships WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) GetMembershipByID(ctx context.Context, id string) (Membership, error) {
	return scanMembership(q.queryRow(ctx, getMembershipByID, id))
}

const listMemberships = `SELECT ` + membershipColumns + ` FROM memberships WHERE deleted_at IS NULL
ORDER BY start_at DESC, id DESC`

func (q *Queries) ListMemberships(ctx context.Context, limit, offset int) ([]Membership, error) {
	stmt, args := paginate(listMemberships, nil, limit, offset)
	rows, err := q.query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

type UpdateMembershipParams struct {
	ID          string
	Name        string
	Description string
	Price       int64
	StartAt     time.Time
	EndAt       time.Time
	UpdatedAt   time.Time
}

const updateMembership = `UPDATE memberships
SET name = ?, description = ?, price = ?, start_at = ?, end_at = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) UpdateMembership(ctx context.Context, arg UpdateMembershipParams) (int64, error) {
	return q.exec(ctx, updateMembership,
		arg.Name, arg.Description, arg.Price, arg.StartAt, arg.EndAt, arg.UpdatedAt, arg.ID,
	)
}

const softDeleteMembership = `UPDATE memberships SET deleted_at = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL`

func (q *Queries) SoftDeleteMembership(ctx context.Context, id string, at time.Time) (int64, error) {
	return q.exec(ctx, softDeleteMembership, at, at, id)
}
