package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

// Register 用户名唯一 密码只存bcrypt散列
// 头像可选 上传失败不阻塞注册
func (s *UserService) Register(userName, password, email string, avatar []byte, avatarType string) (*model.User, error) {
	exist, err := db.CheckUserExistOrNot(s.ctx, userName)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to check user")
	}
	if exist {
		return nil, errno.RecordAlreadyExistErr.WithMessage("user name already taken")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to hash password")
	}

	user := &model.User{
		UserId:    int64(uuid.New().ID()),
		UserName:  userName,
		Password:  hashed,
		Email:     email,
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}

	if len(avatar) > 0 {
		avatarUrl, err := oss.UploadAvatar(s.ctx, avatar, utils.FormatInt64(user.UserId), avatarType)
		if err != nil {
			hlog.CtxWarnf(s.ctx, "Failed to upload avatar: %v", err)
		} else {
			user.AvatarUrl = avatarUrl
		}
	}

	if err := db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册同名 唯一索引兜底
			return nil, errno.RecordAlreadyExistErr.WithMessage("user name already taken")
		}
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	return user, nil
}

// Login 用户名不存在与密码不对返回同一个错 不给枚举用户名的口子
func (s *UserService) Login(userName, password string) (*model.User, error) {
	user, err := db.GetUserByName(s.ctx, userName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.AuthorizationFailedErr.WithMessage("wrong username or password")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByName failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationFailedErr.WithMessage("wrong username or password")
	}
	return user, nil
}

func (s *UserService) GetUserInfo(userId int64) (*model.User, error) {
	user, err := db.GetUserInfo(s.ctx, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserInfo failed")
	}
	return user, nil
}

// UpdateAvatar 替换头像 同名对象覆盖写
func (s *UserService) UpdateAvatar(userId int64, avatar []byte, avatarType string) (string, error) {
	avatarUrl, err := oss.UploadAvatar(s.ctx, avatar, utils.FormatInt64(userId), avatarType)
	if err != nil {
		return "", errno.UploadErr.WithMessage(err.Error())
	}
	err = db.UpdateUserAvatar(s.ctx, userId, avatarUrl)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errno.RecordNotFoundErr.WithMessage("user not found")
	}
	if err != nil {
		return "", err
	}
	return avatarUrl, nil
}
