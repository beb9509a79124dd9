package service

import (
	"context"
	"net/http"
	"testing"

	"playtube/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	db := newTestDB(t)
	media := &fakeMedia{}
	svc := newUserService(db, media, newFakeTokenStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, &UserRegisterOpt{
		Username: "Alice",
		Email:    "Alice@Example.com",
		FullName: "Alice A",
		Password: "s3cret!",
		Avatar:   fileHeader("avatar.png"),
	})
	require.NoError(t, err)

	// 用户名与邮箱统一小写
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret!", user.Password)
	assert.NotEmpty(t, user.Avatar)
	assert.Len(t, media.uploaded, 1)
}

func TestUserService_Register_Conflict(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())
	ctx := context.Background()

	seedUser(t, db, "alice", "s3cret!")

	_, err := svc.Register(ctx, &UserRegisterOpt{
		Username: "ALICE",
		Email:    "fresh@example.com",
		FullName: "Impostor",
		Password: "s3cret!",
		Avatar:   fileHeader("avatar.png"),
	})
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusConflict))
}

func TestUserService_Register_MissingAvatar(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())

	_, err := svc.Register(context.Background(), &UserRegisterOpt{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "s3cret!",
	})
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusBadRequest))
}

func TestUserService_Login(t *testing.T) {
	db := newTestDB(t)
	store := newFakeTokenStore()
	svc := newUserService(db, &fakeMedia{}, store)
	ctx := context.Background()

	seeded := seedUser(t, db, "alice", "s3cret!")

	user, pair, err := svc.Login(ctx, "alice", "", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// 访问令牌能解析回用户
	claims, err := jwt.ParseToken([]byte(svc.Jwt.Secret), jwt.TypeAccess, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)

	// 刷新令牌已入库
	stored, err := store.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, stored)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())

	seedUser(t, db, "alice", "s3cret!")

	_, _, err := svc.Login(context.Background(), "alice", "", "wrong")
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusUnauthorized))
}

func TestUserService_Login_UnknownAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())

	_, _, err := svc.Login(context.Background(), "ghost", "", "whatever")
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusNotFound))
}

func TestUserService_Refresh_Rotation(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())
	ctx := context.Background()

	seedUser(t, db, "alice", "s3cret!")
	_, pair, err := svc.Login(ctx, "alice", "", "s3cret!")
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// 旧刷新令牌已被轮换掉 再用必须拒绝
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusUnauthorized))
}

func TestUserService_Refresh_AfterLogout(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())
	ctx := context.Background()

	seeded := seedUser(t, db, "alice", "s3cret!")
	_, pair, err := svc.Login(ctx, "alice", "", "s3cret!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, seeded.ID))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusUnauthorized))
}

func TestUserService_ChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())
	ctx := context.Background()

	seeded := seedUser(t, db, "alice", "old-pass")

	err := svc.ChangePassword(ctx, seeded.ID, "wrong", "new-pass")
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusUnauthorized))

	require.NoError(t, svc.ChangePassword(ctx, seeded.ID, "old-pass", "new-pass"))

	_, _, err = svc.Login(ctx, "alice", "", "new-pass")
	require.NoError(t, err)
}

func TestUserService_UpdateAvatar_ReplacesOld(t *testing.T) {
	db := newTestDB(t)
	media := &fakeMedia{}
	svc := newUserService(db, media, newFakeTokenStore())
	ctx := context.Background()

	seeded := seedUser(t, db, "alice", "s3cret!")
	require.NoError(t, db.Model(seeded).UpdateColumn("avatar", "https://media.example.com/avatar/old").Error)

	updated, err := svc.UpdateAvatar(ctx, seeded.ID, fileHeader("new.png"))
	require.NoError(t, err)
	assert.NotEqual(t, "https://media.example.com/avatar/old", updated.Avatar)

	// 新图落库后旧图被删
	assert.Contains(t, media.deleted, "https://media.example.com/avatar/old")
}

func TestUserService_ChannelProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMedia{}, newFakeTokenStore())
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "s3cret!")
	bob := seedUser(t, db, "bob", "s3cret!")

	subSvc := &SubscriptionService{
		SubscriptionDAO: svc.SubscriptionDAO,
		UsersRepo:       svc.UsersRepo,
	}
	_, err := subSvc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	profile, err := svc.ChannelProfile(ctx, "Alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, int64(1), profile.SubscriberCount)
	assert.True(t, profile.IsSubscribed)

	// 未订阅的访问者
	profile, err = svc.ChannelProfile(ctx, "bob", alice.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = svc.ChannelProfile(ctx, "ghost", bob.ID)
	require.Error(t, err)
	assert.True(t, isBizError(err, http.StatusNotFound))
}
