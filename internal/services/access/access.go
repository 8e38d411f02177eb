// Package access decides whether a caller may change a resource.
//
// A resource is described by its Owner: the account that created it and,
// for comments, the password stored with it. A caller presents
// Credentials and every one of them has to hold.
package access

import "errors"

var (
	ErrNotOwner    = errors.New("caller does not own the resource")
	ErrWrongSecret = errors.New("secret does not match")
)

type Owner struct {
	ResourceID int64
	UserID     int64
	Secret     string
}

type Credential interface {
	check(owner Owner) error
}

// AccountOwner holds when the caller's account created the resource.
type AccountOwner struct {
	UserID int64
}

func (c AccountOwner) check(owner Owner) error {
	if owner.UserID == 0 || c.UserID != owner.UserID {
		return ErrNotOwner
	}

	return nil
}

// SharedSecret holds when the password matches the one stored with the comment.
type SharedSecret struct {
	CommentID int64
	Password  string
}

func (c SharedSecret) check(owner Owner) error {
	if c.CommentID != owner.ResourceID {
		return ErrNotOwner
	}

	if owner.Secret == "" || c.Password != owner.Secret {
		return ErrWrongSecret
	}

	return nil
}

// Authorize checks creds in order and returns the first failure.
func Authorize(owner Owner, creds ...Credential) error {
	if len(creds) == 0 {
		return ErrNotOwner
	}

	for _, c := range creds {
		if err := c.check(owner); err != nil {
			return err
		}
	}

	return nil
}
