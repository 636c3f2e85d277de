package repository

import (
	"Socialens/internal/model"
	"context"
	"testing"
)

func TestUserRepoCreateUser(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	uid := "auth-1"
	created, err := repo.CreateUser(ctx, &model.User{Email: "a@example.com", AuthUID: &uid})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if created.IsPro {
		t.Error("new user should not be pro")
	}
	if !created.IsFirstLogin {
		t.Error("new user should be marked as first login")
	}
	if created.LastLogin.IsZero() || created.CreatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}

	second, err := repo.CreateUser(ctx, &model.User{Email: "b@example.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if second.ID != created.ID+1 {
		t.Errorf("ids should be strictly increasing, got %d after %d", second.ID, created.ID)
	}
}

func TestUserRepoLookups(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	uid := "auth-x"
	created, err := repo.CreateUser(ctx, &model.User{Email: "x@example.com", AuthUID: &uid})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	byID, err := repo.GetUserById(ctx, created.ID)
	if err != nil || byID == nil || byID.Email != "x@example.com" {
		t.Fatalf("GetUserById = %+v, %v", byID, err)
	}

	byEmail, err := repo.GetUserByEmail(ctx, "x@example.com")
	if err != nil || byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("GetUserByEmail = %+v, %v", byEmail, err)
	}

	byUID, err := repo.GetUserByAuthUID(ctx, "auth-x")
	if err != nil || byUID == nil || byUID.ID != created.ID {
		t.Fatalf("GetUserByAuthUID = %+v, %v", byUID, err)
	}

	// 不存在的查询统一返回 nil 而不是错误
	missing, err := repo.GetUserById(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("unknown id should yield nil, got %+v, %v", missing, err)
	}
	missing, err = repo.GetUserByEmail(ctx, "none@example.com")
	if err != nil || missing != nil {
		t.Errorf("unknown email should yield nil, got %+v, %v", missing, err)
	}
	missing, err = repo.GetUserByAuthUID(ctx, "auth-none")
	if err != nil || missing != nil {
		t.Errorf("unknown auth uid should yield nil, got %+v, %v", missing, err)
	}
}

func TestUserRepoGetUserByEmailFirstMatch(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	first, _ := repo.CreateUser(ctx, &model.User{Email: "dup@example.com"})
	repo.CreateUser(ctx, &model.User{Email: "dup@example.com"})

	got, err := repo.GetUserByEmail(ctx, "dup@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("expected earliest inserted user %d, got %d", first.ID, got.ID)
	}
}

func TestUserRepoUpdateUser(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	created, _ := repo.CreateUser(ctx, &model.User{Email: "u@example.com"})

	name := "Alice"
	isPro := true
	updated, err := repo.UpdateUser(ctx, created.ID, &model.UserUpdate{
		DisplayName: &name,
		IsPro:       &isPro,
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.DisplayName == nil || *updated.DisplayName != "Alice" {
		t.Errorf("display name not updated: %+v", updated.DisplayName)
	}
	if !updated.IsPro {
		t.Error("is_pro not updated")
	}
	// 未携带的字段保持原值
	if updated.Email != "u@example.com" {
		t.Errorf("email should be untouched, got %q", updated.Email)
	}

	got, _ := repo.GetUserById(ctx, created.ID)
	if got.DisplayName == nil || *got.DisplayName != "Alice" {
		t.Error("update not visible through subsequent read")
	}
}

func TestUserRepoUpdateUnknownUser(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	repo.CreateUser(ctx, &model.User{Email: "u@example.com"})

	name := "ghost"
	got, err := repo.UpdateUser(ctx, 404, &model.UserUpdate{DisplayName: &name})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got != nil {
		t.Errorf("update of unknown id should yield nil, got %+v", got)
	}

	// 不允许顺手创建记录
	if ghost, _ := repo.GetUserById(ctx, 404); ghost != nil {
		t.Error("update of unknown id must not create a record")
	}
}
