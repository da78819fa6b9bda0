package query

import (
	"context"
	"database/sql"
	"time"
)

// Plans are joined even when soft deleted so history stays readable.
const userMembershipSelect = `SELECT
	um.id, um.user_id, um.membership_id, um.is_paid,
	um.has_newsletter_subscription, um.has_shifts_subscription,
	um.created_at, um.updated_at,
	m.id, m.name, m.description, m.price, m.start_at, m.end_at,
	m.created_at, m.updated_at, m.deleted_at
FROM user_memberships um
JOIN memberships m ON m.id = um.membership_id`

func scanUserMembershipRow(s scanner) (UserMembershipRow, error) {
	var r UserMembershipRow
	err := s.Scan(
		&r.ID, &r.UserID, &r.MembershipID, &r.IsPaid,
		&r.HasNewsletterSubscription, &r.HasShiftsSubscription,
		&r.CreatedAt, &r.UpdatedAt,
		&r.Membership.ID, &r.Membership.Name, &r.Membership.Description, &r.Membership.Price,
		&r.Membership.StartAt, &r.Membership.EndAt,
		&r.Membership.CreatedAt, &r.Membership.UpdatedAt, &r.Membership.DeletedAt,
	)
	return r, err
}

func collectUserMembershipRows(rows *sql.Rows, err error) ([]UserMembershipRow, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UserMembershipRow
	for rows.Next() {
		r, err := scanUserMembershipRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type CreateUserMembershipParams struct {
	ID                        string
	UserID                    string
	MembershipID              string
	IsPaid                    bool
	HasNewsletterSubscription bool
	HasShiftsSubscription     bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

const createUserMembership = `INSERT INTO user_memberships (
	id, user_id, membership_id, is_paid,
	has_newsletter_subscription, has_shifts_subscription,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) CreateUserMembership(ctx context.Context, arg CreateUserMembershipParams) error {
	_, err := q.exec(ctx, createUserMembership,
		arg.ID, arg.UserID, arg.MembershipID, arg.IsPaid,
		arg.HasNewsletterSubscription, arg.HasShiftsSubscription,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getUserMembershipByID = userMembershipSelect + ` WHERE um.id = ?`

func (q *Queries) GetUserMembershipByID(ctx context.Context, id string) (UserMembershipRow, error) {
	return scanUserMembershipRow(q.queryRow(ctx, getUserMembershipByID, id))
}

const getUserMembershipByPair = userMembershipSelect + ` WHERE um.user_id = ? AND um.membership_id = ?`

func (q *Queries) GetUserMembershipByPair(ctx context.Context, userID, membershipID string) (UserMembershipRow, error) {
	return scanUserMembershipRow(q.queryRow(ctx, getUserMembershipByPair, userID, membershipID))
}

const listUserMemberships = userMembershipSelect + ` ORDER BY um.created_at DESC, um.id DESC`

func (q *Queries) ListUserMemberships(ctx context.Context, limit, offset int) ([]UserMembershipRow, error) {
	stmt, args := paginate(listUserMemberships, nil, limit, offset)
	return collectUserMembershipRows(q.query(ctx, stmt, args...))
}

const listUserMembershipsByUser = userMembershipSelect + ` WHERE um.user_id = ?
ORDER BY um.created_at DESC, um.id DESC`

func (q *Queries) ListUserMembershipsByUser(ctx context.Context, userID string) ([]UserMembershipRow, error) {
	return collectUserMembershipRows(q.query(ctx, listUserMembershipsByUser, userID))
}

const getActiveUserMembership = userMembershipSelect + ` WHERE um.user_id = ?
	AND m.deleted_at IS NULL
	AND m.start_at <= ?
	AND m.end_at >= ?
ORDER BY um.created_at DESC, um.id DESC
LIMIT 1`

func (q *Queries) GetActiveUserMembership(ctx context.Context, userID string, at time.Time) (UserMembershipRow, error) {
	return scanUserMembershipRow(q.queryRow(ctx, getActiveUserMembership, userID, at, at))
}

type UpdateUserMembershipParams struct {
	ID                        string
	IsPaid                    bool
	HasNewsletterSubscription bool
	HasShiftsSubscription     bool
	UpdatedAt                 time.Time
}

const updateUserMembership = `UPDATE user_memberships
SET is_paid = ?, has_newsletter_subscription = ?, has_shifts_subscription = ?, updated_at = ?
WHERE id = ?`

func (q *Queries) UpdateUserMembership(ctx context.Context, arg UpdateUserMembershipParams) (int64, error) {
	return q.exec(ctx, updateUserMembership,
		arg.IsPaid, arg.HasNewsletterSubscription, arg.HasShiftsSubscription, arg.UpdatedAt, arg.ID,
	)
}

const deleteUserMembership = `DELETE FROM user_memberships WHERE id = ?`

func (q *Queries) DeleteUserMembership(ctx context.Context, id string) (int64, error) {
	return q.exec(ctx, deleteUserMembership, id)
}
