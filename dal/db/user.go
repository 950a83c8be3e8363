package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.WithMessage(err, "Failed to create user")
	}
	return nil
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// 用来检查给定的用户名是否已被占用
func CheckUserExistOrNot(ctx context.Context, userName string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func UpdateUserAvatar(ctx context.Context, userId int64, avatarUrl string) error {
	result := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Update("avatar_url", avatarUrl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
