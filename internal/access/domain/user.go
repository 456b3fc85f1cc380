package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GrantStatus is the lifecycle state of a single access grant.
type GrantStatus string

const (
	StatusPending  GrantStatus = "Pending"
	StatusActive   GrantStatus = "Active"
	StatusInactive GrantStatus = "Inactive"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s GrantStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// Grant is one user's access assignment to a (role, application) pair. Grants
// are embedded in the user document; the (role, app) pair identifies a grant
// within its user and must be unique there. A grant is never removed, only
// set Inactive.
type Grant struct {
	Role            bson.ObjectID `bson:"role" json:"role"`
	App             bson.ObjectID `bson:"app" json:"app"`
	Code            string        `bson:"code" json:"-"`
	Token           string        `bson:"token" json:"-"`
	Status          GrantStatus   `bson:"status" json:"status"`
	CodeExpiration  string        `bson:"code_expiration" json:"-"`
	IsSessionActive bool          `bson:"is_session_active" json:"is_session_active"`
}

// User is the aggregate root. The apps array preserves insertion order; new
// grants are always appended.
type User struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Email           string        `bson:"email" json:"email"`
	Password        string        `bson:"password" json:"-"`
	Apps            []Grant       `bson:"apps" json:"apps"`
	ResetCode       string        `bson:"reset_code,omitempty" json:"-"`
	ResetExpiration time.Time     `bson:"reset_expiration,omitempty" json:"-"`
	TempPassword    string        `bson:"temp_password,omitempty" json:"-"`
}

// GrantByApp returns the grant assigned to the given application, or nil.
func (u *User) GrantByApp(appID bson.ObjectID) *Grant {
	for i := range u.Apps {
		if u.Apps[i].App.Hex() == appID.Hex() {
			return &u.Apps[i]
		}
	}
	return nil
}

// HasActiveGrant reports whether at least one grant is Active.
func (u *User) HasActiveGrant() bool {
	for _, g := range u.Apps {
		if g.Status == StatusActive {
			return true
		}
	}
	return false
}

// Role is a read-only registry document.
type Role struct {
	ID   bson.ObjectID `bson:"_id" json:"id"`
	Name string        `bson:"name" json:"name"`
}

// Application is a read-only registry document.
type Application struct {
	ID   bson.ObjectID `bson:"_id" json:"id"`
	Name string        `bson:"name" json:"name"`
}
