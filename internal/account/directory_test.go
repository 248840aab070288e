package account

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeRepo is an in-memory Repository for tests.
type fakeRepo struct {
	users map[string]time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]time.Time)}
}

func (f *fakeRepo) Create(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; ok {
		return ErrUserExists
	}
	f.users[userID] = time.Now()
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, userID string) (*User, error) {
	at, ok := f.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &User{ID: userID, CreatedAt: at}, nil
}

func TestCreateUser(t *testing.T) {
	dir := NewDirectory(newFakeRepo(), nil)
	ctx := context.Background()

	if err := dir.CreateUser(ctx, "alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Second create with the same id must conflict.
	if err := dir.CreateUser(ctx, "alice"); !errors.Is(err, ErrUserExists) {
		t.Errorf("CreateUser duplicate error = %v, want ErrUserExists", err)
	}
}

func TestCreateUserEmptyID(t *testing.T) {
	dir := NewDirectory(newFakeRepo(), nil)

	if err := dir.CreateUser(context.Background(), ""); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("CreateUser(\"\") error = %v, want ErrEmptyUserID", err)
	}
}

func TestDeleteUser(t *testing.T) {
	dir := NewDirectory(newFakeRepo(), nil)
	ctx := context.Background()

	if err := dir.DeleteUser(ctx, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("DeleteUser missing error = %v, want ErrUserNotFound", err)
	}

	if err := dir.CreateUser(ctx, "bob"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := dir.DeleteUser(ctx, "bob"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := dir.GetUser(ctx, "bob"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser after delete error = %v, want ErrUserNotFound", err)
	}
}

func TestGetUser(t *testing.T) {
	dir := NewDirectory(newFakeRepo(), nil)
	ctx := context.Background()

	if err := dir.CreateUser(ctx, "carol"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	u, err := dir.GetUser(ctx, "carol")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.ID != "carol" {
		t.Errorf("GetUser ID = %q, want %q", u.ID, "carol")
	}
}
