package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justifyman/alansar/internal/member/domain"
	"github.com/justifyman/alansar/pkg/encrypt"
	"github.com/justifyman/alansar/pkg/logger"
	token "github.com/justifyman/alansar/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMemberRepo Mock MemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) CreateUser(ctx context.Context, user *domain.Member) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockMemberRepo) UpdateMemberStatus(ctx context.Context, user *domain.Member) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockMemberRepo) FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	args := m.Called(ctx, memberQuery)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRedisRepo 針對 MemberSession 的 Mock
type MockRedisRepo struct {
	mock.Mock
}

// Set 模擬 Redis Set 操作
func (m *MockRedisRepo) Set(ctx context.Context, key string, value domain.MemberSession, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Get 模擬 Redis Get 操作
func (m *MockRedisRepo) Get(ctx context.Context, key string) (domain.MemberSession, error) {
	args := m.Called(ctx, key)
	if args.Get(0) != nil {
		return args.Get(0).(domain.MemberSession), args.Error(1)
	}
	return domain.MemberSession{}, args.Error(1)
}

// Del 模擬 Redis Del 操作
func (m *MockRedisRepo) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// ExtendTTL 模擬 Redis ExtendTTL 操作
func (m *MockRedisRepo) ExtendTTL(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

// GetTTL 模擬 Redis GetTTL 操作
func (m *MockRedisRepo) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func TestMemberUseCase_Register(t *testing.T) {
	ctx := context.Background()
	email := "test@example.com"
	password := "!!Securepassword111"

	logger.SetNewNop()

	// **情境 1: 註冊成功，角色為一般使用者**
	t.Run("成功註冊", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.Email == email && m.Role == string(token.RoleUser) && m.MemberID != ""
		})).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Register(ctx, email, "tester", password)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	// **情境 2: Email 已存在**
	t.Run("Email 已存在", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		existingUser := &domain.Member{
			ID:       1,
			MemberID: "AAA",
			Email:    email,
			Status:   domain.MemberStatusOffLine,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).
			Return(existingUser, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Register(ctx, email, "tester", password)

		assert.Error(t, err)
		assert.Equal(t, "email already exists", err.Error())
		mockRepo.AssertExpectations(t)
	})

	// **情境 3: 密碼強度不足**
	t.Run("密碼強度不足", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Register(ctx, email, "tester", "123")

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	// **情境 4: 建立用戶失敗**
	t.Run("建立用戶失敗", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("CreateUser", ctx, mock.Anything).Return(errors.New("db error")).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Register(ctx, email, "tester", password)

		assert.Error(t, err)
		assert.Equal(t, "db error", err.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberUseCase_Login(t *testing.T) {
	ctx := context.Background()
	email := "test@example.com"
	password := "!!Securepassword111"
	hashedPassword, _ := encrypt.HashPassword(password)

	logger.SetNewNop()

	// **情境 1: 成功登入，token 內含角色**
	t.Run("成功登入", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		member := &domain.Member{
			ID:       1,
			MemberID: "m-1",
			Email:    email,
			Password: hashedPassword,
			Role:     string(token.RoleAdmin),
			Status:   domain.MemberStatusOffLine,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(member, nil).Once()
		mockRedis.On("Set", mock.Anything, "m-1", mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.Status == domain.MemberStatusOnLine
		})).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, 30*time.Minute, mockRedis)
		tokenStr, err := uc.Login(ctx, email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenStr)

		claims, err := token.ParseJWT(tokenStr)
		assert.NoError(t, err)
		assert.Equal(t, "m-1", claims.MemberID)
		assert.Equal(t, string(token.RoleAdmin), claims.Role)
		mockRepo.AssertExpectations(t)
	})

	// **情境 2: 密碼錯誤**
	t.Run("密碼錯誤", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		member := &domain.Member{
			MemberID: "m-1",
			Email:    email,
			Password: hashedPassword,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(member, nil).Once()

		uc := NewMemberUseCase(mockRepo, 30*time.Minute, mockRedis)
		_, err := uc.Login(ctx, email, "wrongpass")

		assert.Error(t, err)
	})

	// **情境 3: 找不到會員**
	t.Run("找不到會員", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("no member found with given criteria")).Once()

		uc := NewMemberUseCase(mockRepo, 30*time.Minute, mockRedis)
		_, err := uc.Login(ctx, email, password)

		assert.Error(t, err)
		assert.Equal(t, "user not found", err.Error())
	})
}

func TestMemberUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 成功登出**
	t.Run("成功登出", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		tokenStr, err := token.GenerateJWT("m-1", string(token.RoleUser), "catalog_service")
		assert.NoError(t, err)

		mockRedis.On("Del", mock.Anything, "m-1").Return(nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.MemberID == "m-1" && m.Status == domain.MemberStatusOffLine
		})).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, 30*time.Minute, mockRedis)
		err = uc.Logout(ctx, tokenStr)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	// **情境 2: token 無效**
	t.Run("token 無效", func(t *testing.T) {
		uc := NewMemberUseCase(new(MockMemberRepo), 30*time.Minute, new(MockRedisRepo))
		err := uc.Logout(ctx, "not-a-token")

		assert.Error(t, err)
	})
}

func TestMemberUseCase_CheckSessionTimeout(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	tokenStr, err := token.GenerateJWT("m-1", string(token.RoleUser), "catalog_service")
	assert.NoError(t, err)

	// **情境 1: session 還活著**
	t.Run("session 未過期", func(t *testing.T) {
		mockRedis := new(MockRedisRepo)
		mockRedis.On("GetTTL", mock.Anything, "m-1").Return(120, nil).Once()

		uc := NewMemberUseCase(new(MockMemberRepo), 30*time.Minute, mockRedis)
		timeout, err := uc.CheckSessionTimeout(ctx, tokenStr)

		assert.NoError(t, err)
		assert.False(t, timeout)
	})

	// **情境 2: session 已過期**
	t.Run("session 已過期", func(t *testing.T) {
		mockRedis := new(MockRedisRepo)
		mockRedis.On("GetTTL", mock.Anything, "m-1").Return(0, nil).Once()

		uc := NewMemberUseCase(new(MockMemberRepo), 30*time.Minute, mockRedis)
		timeout, err := uc.CheckSessionTimeout(ctx, tokenStr)

		assert.NoError(t, err)
		assert.True(t, timeout)
	})
}
