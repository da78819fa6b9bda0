package authz

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownOperation = errors.New("authz: operation has no declared permissions")

// Operation identifies a guarded operation, e.g. "users.list".
type Operation string

// Policy declares the permissions each operation requires. An operation mapped
// to an empty list is public.
type Policy map[Operation][]Permission

// Principal is the caller of one request.
type Principal struct {
	Subject string
	Roles   Roles
}

// DecisionKind classifies the outcome of an authorization check.
type DecisionKind int

const (
	KindAllowed DecisionKind = iota
	KindUnauthenticated
	KindInsufficientPermission
)

func (k DecisionKind) String() string {
	switch k {
	case KindAllowed:
		return "allowed"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInsufficientPermission:
		return "insufficient_permission"
	default:
		return fmt.Sprintf("DecisionKind(%d)", int(k))
	}
}

// Decision is the verdict of the access guard. A denial is a normal value, not
// an error.
type Decision struct {
	Allowed bool
	Kind    DecisionKind
	Reason  string
	Missing []Permission
}

const reasonNotAuthenticated = "not authenticated"

func allow() Decision { return Decision{Allowed: true, Kind: KindAllowed} }

// Authorize decides whether principal may run an operation that requires the
// given permissions. It fails closed: a missing principal or an empty role set
// is denied whenever anything is required.
func Authorize(required []Permission, principal *Principal) Decision {
	if len(required) == 0 {
		return allow()
	}
	if principal == nil || len(principal.Roles) == 0 {
		return Decision{Kind: KindUnauthenticated, Reason: reasonNotAuthenticated}
	}
	if AllPermissionsSatisfied(principal.Roles, required) {
		return allow()
	}
	missing := MissingPermissions(principal.Roles, required)
	return Decision{
		Kind:    KindInsufficientPermission,
		Reason:  "insufficient permissions: missing " + JoinPermissions(missing),
		Missing: missing,
	}
}

// Guard evaluates operations against a fixed Policy.
type Guard struct {
	policy Policy
}

// NewGuard copies policy and rejects unknown permissions in it.
func NewGuard(policy Policy) (*Guard, error) {
	copied := make(Policy, len(policy))
	for op, perms := range policy {
		for _, p := range perms {
			if !p.Valid() {
				return nil, fmt.Errorf("operation %q: %w: %q", op, ErrUnknownPermission, p)
			}
		}
		copied[op] = slices.Clone(perms)
	}
	return &Guard{policy: copied}, nil
}

// Requirements returns the permissions declared for op.
func (g *Guard) Requirements(op Operation) ([]Permission, error) {
	perms, ok := g.policy[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return slices.Clone(perms), nil
}

// Check authorizes principal for op. Undeclared operations are reported as an
// error and must never be treated as public.
func (g *Guard) Check(op Operation, principal *Principal) (Decision, error) {
	perms, ok := g.policy[op]
	if !ok {
		return Decision{Kind: KindInsufficientPermission, Reason: "operation not declared"},
			fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return Authorize(perms, principal), nil
}

// Operations lists the declared operations in lexical order.
func (g *Guard) Operations() []Operation {
	out := make([]Operation, 0, len(g.policy))
	for op := range g.policy {
		out = append(out, op)
	}
	slices.Sort(out)
	return out
}
