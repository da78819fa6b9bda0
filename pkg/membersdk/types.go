package membersdk

import "time"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error            string `json:"error" example:"insufficient_permissions"`
	ErrorDescription string `json:"error_description,omitempty" example:"insufficient permissions: missing membership:delete"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"v0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Verifier string `json:"verifier" example:"ok"`
	Cache    string `json:"cache,omitempty" example:"disabled"`
}

// ============================================================================
// Roles
// ============================================================================

// RoleInfo describes one role and the permissions it grants.
type RoleInfo struct {
	ID          string   `json:"id" example:"board"`
	Label       string   `json:"label" example:"Board"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// WhoAmIResponse describes the caller.
type WhoAmIResponse struct {
	Subject     string        `json:"subject"`
	Roles       []string      `json:"roles"`
	Permissions []string      `json:"permissions"`
	User        *UserResponse `json:"user,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// UserRequest creates a user (POST) or replaces one (PUT).
type UserRequest struct {
	Email     string `json:"email" validate:"required,email,max=254" example:"camille@example.com"`
	Firstname string `json:"firstname" validate:"required,max=100" example:"Camille"`
	Lastname  string `json:"lastname" validate:"required,max=100" example:"Martin"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32" example:"+33 6 12 34 56 78"`
}

// PatchUserRequest changes the fields that are present.
type PatchUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitnil,email,max=254"`
	Firstname *string `json:"firstname,omitempty" validate:"omitnil,min=1,max=100"`
	Lastname  *string `json:"lastname,omitempty" validate:"omitnil,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,max=32"`
}

// UpdateRolesRequest replaces the roles of a user. An empty list resets the
// user to the default role.
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"max=10,dive,required" example:"member,barista"`
}

type UserResponse struct {
	ID        string    `json:"id" example:"01J9Z3K4X5Y6Z7A8B9C0D1E2F3"`
	Email     string    `json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Phone     string    `json:"phone,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// Memberships
// ============================================================================

// MembershipRequest creates a plan (POST) or replaces one (PUT). Price is in
// cents.
type MembershipRequest struct {
	Name        string    `json:"name" validate:"required,max=120" example:"Saison 2026-2027"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	Price       int64     `json:"price" validate:"gte=0" example:"1500"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
}

// PatchMembershipRequest changes the fields that are present.
type PatchMembershipRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitnil,min=1,max=120"`
	Description *string    `json:"description,omitempty" validate:"omitnil,max=1000"`
	Price       *int64     `json:"price,omitempty" validate:"omitnil,gte=0"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
}

type MembershipResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListMembershipsResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
}

// ============================================================================
// User memberships
// ============================================================================

// UserMembershipRequest subscribes a user to a plan (POST) or replaces an
// association (PUT).
type UserMembershipRequest struct {
	UserID                    string `json:"user_id" validate:"required,ulid"`
	MembershipID              string `json:"membership_id" validate:"required,ulid"`
	IsPaid                    bool   `json:"is_paid"`
	HasNewsletterSubscription bool   `json:"has_newsletter_subscription"`
	HasShiftsSubscription     bool   `json:"has_shifts_subscription"`
}

// PatchUserMembershipRequest changes the flags that are present.
type PatchUserMembershipRequest struct {
	IsPaid                    *bool `json:"is_paid,omitempty"`
	HasNewsletterSubscription *bool `json:"has_newsletter_subscription,omitempty"`
	HasShiftsSubscription     *bool `json:"has_shifts_subscription,omitempty"`
}

type UserMembershipResponse struct {
	ID                        string              `json:"id"`
	UserID                    string              `json:"user_id"`
	MembershipID              string              `json:"membership_id"`
	IsPaid                    bool                `json:"is_paid"`
	HasNewsletterSubscription bool                `json:"has_newsletter_subscription"`
	HasShiftsSubscription     bool                `json:"has_shifts_subscription"`
	CreatedAt                 time.Time           `json:"created_at"`
	UpdatedAt                 time.Time           `json:"updated_at"`
	Membership                *MembershipResponse `json:"membership,omitempty"`
}

type ListUserMembershipsResponse struct {
	UserMemberships []UserMembershipResponse `json:"user_memberships"`
}

// Page selects a window of a list. Zero values use the server defaults.
type Page struct {
	Limit  int
	Offset int
}
