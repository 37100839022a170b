package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/brieflyhq/briefly-backend/internal/types"
)

func seedUser(t *testing.T, repo UserRepo, email, username string) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: "hashed-password",
	}
	if _, err := repo.Create(context.Background(), nil, []*types.User{user}); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func TestUserRepoCreateAndGetByIDs(t *testing.T) {
	tx := testDB(t)
	repo := NewUserRepo(tx, testRepoLogger(t))
	ctx := context.Background()

	created := seedUser(t, repo, "ada@example.com", "ada")

	got, err := repo.GetByIDs(ctx, nil, []uuid.UUID{created.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Email != "ada@example.com" {
		t.Fatalf("GetByIDs = %+v", got)
	}

	got, err = repo.GetByIDs(ctx, nil, []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatalf("GetByIDs unknown id: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unknown id should match nothing, got %d rows", len(got))
	}
}

func TestUserRepoGetByIdentifiers(t *testing.T) {
	tx := testDB(t)
	repo := NewUserRepo(tx, testRepoLogger(t))
	ctx := context.Background()

	seedUser(t, repo, "ada@example.com", "ada")

	byEmail, err := repo.GetByIdentifiers(ctx, nil, []string{"ada@example.com"})
	if err != nil {
		t.Fatalf("GetByIdentifiers by email: %v", err)
	}
	byUsername, err := repo.GetByIdentifiers(ctx, nil, []string{"ada"})
	if err != nil {
		t.Fatalf("GetByIdentifiers by username: %v", err)
	}
	if len(byEmail) != 1 || len(byUsername) != 1 || byEmail[0].ID != byUsername[0].ID {
		t.Fatalf("identifier lookup mismatch: email=%d username=%d", len(byEmail), len(byUsername))
	}
}

func TestUserRepoExistenceChecks(t *testing.T) {
	tx := testDB(t)
	repo := NewUserRepo(tx, testRepoLogger(t))
	ctx := context.Background()

	seedUser(t, repo, "ada@example.com", "ada")

	if ok, err := repo.EmailExists(ctx, nil, "ada@example.com"); err != nil || !ok {
		t.Fatalf("EmailExists = %v, %v", ok, err)
	}
	if ok, err := repo.EmailExists(ctx, nil, "nobody@example.com"); err != nil || ok {
		t.Fatalf("EmailExists for unknown = %v, %v", ok, err)
	}
	if ok, err := repo.UsernameExists(ctx, nil, "ada"); err != nil || !ok {
		t.Fatalf("UsernameExists = %v, %v", ok, err)
	}
	if ok, err := repo.UsernameExists(ctx, nil, "nobody"); err != nil || ok {
		t.Fatalf("UsernameExists for unknown = %v, %v", ok, err)
	}
}

func TestUserRepoUpdateLastLoginIP(t *testing.T) {
	tx := testDB(t)
	repo := NewUserRepo(tx, testRepoLogger(t))
	ctx := context.Background()

	created := seedUser(t, repo, "ada@example.com", "ada")

	if err := repo.UpdateLastLoginIP(ctx, nil, created.ID, "203.0.113.7"); err != nil {
		t.Fatalf("UpdateLastLoginIP: %v", err)
	}

	got, err := repo.GetByIDs(ctx, nil, []uuid.UUID{created.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("reload user: %v (%d rows)", err, len(got))
	}
	if got[0].LastLoginIP != "203.0.113.7" {
		t.Fatalf("last_login_ip = %q", got[0].LastLoginIP)
	}
}
